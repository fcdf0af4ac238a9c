package model

import "time"

// Order is one cleaned row of the weekly order-book export.
type Order struct {
	OrderNo            string    `json:"orderNo"`
	OrderDate          time.Time `json:"orderDate"`
	HasDate            bool      `json:"hasDate"`
	Customer           string    `json:"customer"`
	Status             string    `json:"status"`
	InvoiceStatus      string    `json:"invoiceStatus"`
	PartiallyInvoiced  bool      `json:"partiallyInvoiced"`
	OriginalAmount     float64   `json:"originalAmount"`
	OriginalCurrency   string    `json:"originalCurrency"`
	AmountSEK          float64   `json:"amountSek"`
}

// OrderGroup aggregates orders per customer or per placement month.
type OrderGroup struct {
	Key    string  `json:"key"`
	Orders int     `json:"orders"`
	Total  float64 `json:"total"`
}

// SalesLine is one cleaned row of the monthly sales export, either an article
// or a customer depending on the source sheet.
type SalesLine struct {
	No     string  `json:"no"`   // article number / customer number
	Name   string  `json:"name"` // article name / customer name
	Amount float64 `json:"amount"`
}

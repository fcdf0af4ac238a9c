package commentary

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 4000
	DefaultTimeout   = 90 * time.Second
)

// objectRe grabs the outermost JSON object from a response that may carry
// prose or code fences around it.
var objectRe = regexp.MustCompile(`(?s)\{.*\}`)

// Claude generates commentary through the Anthropic Messages API.
type Claude struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	timeout   time.Duration
}

// NewClaude builds a generator for the given API key. Zero-valued options
// fall back to the package defaults.
func NewClaude(apiKey, model string, maxTokens int, timeout time.Duration) *Claude {
	if model == "" {
		model = DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Claude{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model(model),
		maxTokens: int64(maxTokens),
		timeout:   timeout,
	}
}

func (c *Claude) Generate(ctx context.Context, m Metrics) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(m))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("commentary request: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return parseSections(text.String())
}

// parseSections extracts the JSON object from the model output, repairs it if
// needed and flattens every value to display text.
func parseSections(out string) (map[string]string, error) {
	raw := objectRe.FindString(out)
	if raw == "" {
		return nil, fmt.Errorf("commentary response carried no JSON object")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		repaired, rerr := jsonrepair.RepairJSON(raw)
		if rerr != nil {
			return nil, fmt.Errorf("repair commentary JSON: %w", rerr)
		}
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return nil, fmt.Errorf("decode commentary JSON: %w", err)
		}
	}
	return FlattenSections(parsed), nil
}

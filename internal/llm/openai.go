package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/textsieve/textsieve/internal/model"
)

// OpenAIProvider implements Provider on the OpenAI chat completions API
type OpenAIProvider struct {
	client *openai.Client
	cfg    model.LLMConfig
}

// NewOpenAIProvider creates the provider; the API key is required
func NewOpenAIProvider(cfg model.LLMConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks the API is reachable with the configured key
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Summarize generates a markdown recap of the run counters
func (p *OpenAIProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = BuildPrompt(req.Summary)
	}

	mdl := req.Model
	if mdl == "" {
		mdl = p.cfg.Model
	}
	if mdl == "" {
		mdl = openai.GPT4oMini
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.cfg.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 500
	}

	timeout := time.Duration(p.cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: mdl,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize text-processing run statistics. Use only the numbers given; never invent findings.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return &SummarizeResponse{
		Summary:    strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:      mdl,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

// BuildPrompt renders the run counters into the default recap prompt
func BuildPrompt(sum model.Summary) string {
	var b strings.Builder
	b.WriteString("Write a short markdown recap (3-5 sentences) of this text-processing run.\n")
	b.WriteString("Mention the overall pass rate and anything notable about duplicates or PII.\n\n")
	if sum.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", sum.Source)
	}
	fmt.Fprintf(&b, "Items processed: %d\n", sum.TotalProcessed)
	fmt.Fprintf(&b, "Valid items: %d\n", sum.ValidItems)
	fmt.Fprintf(&b, "Duplicates found: %d\n", sum.DuplicatesFound)
	fmt.Fprintf(&b, "Items with PII: %d\n", sum.ItemsWithPII)
	fmt.Fprintf(&b, "Items written: %d\n", sum.OutputItems)
	fmt.Fprintf(&b, "Items rejected: %d\n", sum.RejectedItems)
	if sum.SkippedNoText > 0 {
		fmt.Fprintf(&b, "Items skipped (no text field): %d\n", sum.SkippedNoText)
	}
	return b.String()
}

package ai

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one turn of a model conversation.
type Message struct {
	Role    string
	Content string
}

// Message roles.
const (
	RoleSystem    = openai.ChatMessageRoleSystem
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
)

// RetryPolicy controls how failed completion calls are retried. The sleep
// before a retry is the capped exponential base scaled by a random factor
// in [JitterMin, JitterMax).
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	JitterMin   float64
	JitterMax   float64
}

// DefaultRetryPolicy retries twice with capped exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		MaxDelay:    10 * time.Second,
		JitterMin:   0.2,
		JitterMax:   0.5,
	}
}

// Backoff returns the sleep before retrying after the given zero-based
// attempt. Jitter keeps concurrent chats from retrying in lockstep.
func (p RetryPolicy) Backoff(attempt int, rng *rand.Rand) time.Duration {
	base := p.BaseDelay << uint(attempt)
	if base > p.MaxDelay || base <= 0 {
		base = p.MaxDelay
	}
	jitter := p.JitterMin + rng.Float64()*(p.JitterMax-p.JitterMin)
	return time.Duration(float64(base) * jitter)
}

// Client wraps the OpenAI chat completion API.
type Client struct {
	api   *openai.Client
	model string
	retry RetryPolicy

	rng   *rand.Rand
	sleep func(time.Duration)
}

// New creates a client from the OPENAI_API_KEY environment variable.
// OPENAI_MODEL and OPENAI_BASE_URL override the defaults.
func New() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	config := openai.DefaultConfig(apiKey)
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		config.BaseURL = base
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: model,
		retry: DefaultRetryPolicy(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep: time.Sleep,
	}, nil
}

// Complete sends the conversation to the model and returns the reply text.
// Transient failures are retried per the client's retry policy.
func (c *Client) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return c.complete(ctx, chatMessages, temperature)
}

// CompleteWithImage sends the conversation plus an image to the model. The
// image travels as a data URL or HTTPS URL in the final user message.
func (c *Client) CompleteWithImage(ctx context.Context, messages []Message, imageURL string, temperature float64) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for i, m := range messages {
		if i == len(messages)-1 && m.Role == RoleUser {
			chatMessages = append(chatMessages, openai.ChatCompletionMessage{
				Role: m.Role,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: m.Content},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			})
			continue
		}
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return c.complete(ctx, chatMessages, temperature)
}

func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float64) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: float32(temperature),
	}

	var lastErr error
	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			c.sleep(c.retry.Backoff(attempt-1, c.rng))
		}

		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("no response choices returned")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("completion failed after %d attempts: %w", c.retry.MaxAttempts, lastErr)
}

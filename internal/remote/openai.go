package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAITemperature = 0.5
	openAIMaxTokens   = 2000
)

// OpenAI calls an OpenAI-compatible chat completions endpoint, such as an
// Azure AI Foundry deployment.
type OpenAI struct {
	client openai.Client
	model  string
	prompt string
}

// NewOpenAI builds a client for endpoint. The endpoint is either an API root
// or a full chat completions URL such as
// https://host/openai/deployments/<name>/chat/completions?api-version=<v>;
// its query string is sent with every request. The credential is sent both as
// a bearer token and as an Azure api-key header.
func NewOpenAI(endpoint, credential, model, prompt string) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(credential),
		option.WithHeader("api-key", credential),
		option.WithHTTPClient(&http.Client{Timeout: 120 * time.Second}),
		option.WithMaxRetries(0),
	}
	opts = append(opts, endpointOptions(endpoint)...)

	return &OpenAI{client: openai.NewClient(opts...), model: model, prompt: prompt}
}

// endpointOptions splits endpoint into the base URL the SDK appends
// "chat/completions" to and the query parameters it would otherwise drop.
func endpointOptions(endpoint string) []option.RequestOption {
	u, err := url.Parse(endpoint)
	if err != nil {
		return []option.RequestOption{option.WithBaseURL(endpoint)}
	}

	query := u.Query()
	u.RawQuery = ""
	u.Fragment = ""
	u.RawPath = ""
	u.Path = strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), "/chat/completions") + "/"

	opts := []option.RequestOption{option.WithBaseURL(u.String())}
	for key, values := range query {
		for _, v := range values {
			opts = append(opts, option.WithQueryAdd(key, v))
		}
	}
	return opts
}

// Analyze sends the document as a single user message and returns the first
// choice's text.
func (o *OpenAI) Analyze(ctx context.Context, doc []byte) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if o.prompt != "" {
		messages = append(messages, openai.SystemMessage(o.prompt))
	}
	messages = append(messages, openai.UserMessage(string(doc)))

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    messages,
		Temperature: openai.Float(openAITemperature),
		MaxTokens:   openai.Int(openAIMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response choices")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}

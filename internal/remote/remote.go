// Package remote talks to the hosted conversation analysis service. Callers
// treat every error as a signal to fall back to the local analyzer.
package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/vidocq/internal/config"
)

// Provider names accepted in config.Remote.Provider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Analyzer returns the remote service's textual analysis of a conversation
// document.
type Analyzer interface {
	Analyze(ctx context.Context, doc []byte) (string, error)
}

// New builds the analyzer for cfg.Provider, rate limited to cfg.RPM.
func New(cfg config.Remote) (Analyzer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("remote analyzer not configured")
	}

	var a Analyzer
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		// Hosted deployments carry their own instructions; only an explicit
		// prompt adds a system message.
		a = NewOpenAI(cfg.Endpoint, cfg.Credential, cfg.Model, cfg.Prompt)
	case ProviderAnthropic:
		prompt := cfg.Prompt
		if prompt == "" {
			prompt = systemPrompt
		}
		a = NewAnthropic(cfg.Endpoint, cfg.Credential, cfg.Model, prompt)
	default:
		return nil, fmt.Errorf("unsupported remote provider: %s (supported: openai, anthropic)", cfg.Provider)
	}

	return NewLimited(a, cfg.RPM), nil
}

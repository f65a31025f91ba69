// Package processor runs one uploaded conversation through the remote
// analyzer, falling back to the local analyzer whenever the remote call
// fails or returns nothing.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/vidocq/internal/analyzer"
	"github.com/MikeSquared-Agency/vidocq/internal/hermes"
	"github.com/MikeSquared-Agency/vidocq/internal/remote"
	"github.com/MikeSquared-Agency/vidocq/internal/slack"
	"github.com/MikeSquared-Agency/vidocq/internal/staging"
)

// Report sources.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Publisher emits analysis events. Satisfied by *hermes.Client.
type Publisher interface {
	PublishAnalysis(evt hermes.AnalysisEvent) error
}

// Alerter notifies moderators. Satisfied by *slack.Poster.
type Alerter interface {
	PostAlert(ctx context.Context, a slack.Alert) (string, error)
}

// Result is what a caller gets back for one analysis.
type Result struct {
	RequestID    string
	Source       string
	Analysis     string
	Level        string // empty for remote analyses
	MessageCount int
	Flagged      int
}

type Processor struct {
	remote  remote.Analyzer
	area    *staging.Area
	events  Publisher
	alerts  Alerter
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Processor)

// WithRemote enables the remote analyzer. Each call is bounded by timeout.
func WithRemote(a remote.Analyzer, timeout time.Duration) Option {
	return func(p *Processor) {
		p.remote = a
		p.timeout = timeout
	}
}

func WithPublisher(pub Publisher) Option {
	return func(p *Processor) { p.events = pub }
}

func WithAlerter(a Alerter) Option {
	return func(p *Processor) { p.alerts = a }
}

func New(area *staging.Area, logger *slog.Logger, opts ...Option) *Processor {
	p := &Processor{area: area, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RemoteEnabled reports whether a remote analyzer is wired in.
func (p *Processor) RemoteEnabled() bool {
	return p.remote != nil
}

// Process analyses a syntactically valid JSON document. Only staging I/O
// failures are returned as errors; analysis itself always yields a report.
func (p *Processor) Process(ctx context.Context, raw []byte) (*Result, error) {
	id := uuid.New()
	if _, err := p.area.SaveInput(id, raw); err != nil {
		return nil, err
	}
	defer p.area.Remove(id)

	res := &Result{RequestID: id.String()}

	if out, err := p.analyzeRemote(ctx, raw); err == nil {
		res.Source = SourceRemote
		res.Analysis = out
	} else {
		if p.remote != nil {
			p.logger.Warn("remote analysis failed, using local analyzer", "request_id", res.RequestID, "error", err)
		}
		report, out := analyzer.Analyze(raw)
		res.Source = SourceLocal
		res.Analysis = out
		if report != nil {
			res.Level = report.Level.String()
			res.MessageCount = report.MessageCount
			res.Flagged = report.Flagged()
			p.alert(ctx, res, report.Level)
		}
	}

	if _, err := p.area.SaveOutput(id, res.Analysis); err != nil {
		return nil, err
	}

	p.publish(res)

	p.logger.Info("analysis completed",
		"request_id", res.RequestID,
		"source", res.Source,
		"level", res.Level,
		"flagged", res.Flagged,
	)
	return res, nil
}

func (p *Processor) analyzeRemote(ctx context.Context, raw []byte) (string, error) {
	if p.remote == nil {
		return "", fmt.Errorf("remote analyzer disabled")
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	out, err := p.remote.Analyze(ctx, raw)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("empty remote analysis")
	}
	return out, nil
}

func (p *Processor) publish(res *Result) {
	if p.events == nil {
		return
	}
	err := p.events.PublishAnalysis(hermes.AnalysisEvent{
		RequestID:       res.RequestID,
		Source:          res.Source,
		Level:           res.Level,
		MessageCount:    res.MessageCount,
		FlaggedMessages: res.Flagged,
	})
	if err != nil {
		p.logger.Error("failed to publish analysis event", "request_id", res.RequestID, "error", err)
	}
}

func (p *Processor) alert(ctx context.Context, res *Result, level analyzer.Level) {
	if p.alerts == nil || (level != analyzer.LevelSevere && level != analyzer.LevelCritical) {
		return
	}
	_, err := p.alerts.PostAlert(ctx, slack.Alert{
		RequestID:    res.RequestID,
		Level:        level.Label(),
		Source:       res.Source,
		MessageCount: res.MessageCount,
		Flagged:      res.Flagged,
	})
	if err != nil {
		p.logger.Error("slack alert failed", "request_id", res.RequestID, "error", err)
	}
}

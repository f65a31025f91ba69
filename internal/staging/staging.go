// Package staging keeps uploaded conversations and rendered reports on disk
// for the duration of a request.
package staging

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	inputPrefix  = "input_"
	outputPrefix = "output_"
)

// Area is a directory of staged artifacts named after request IDs.
type Area struct {
	dir    string
	logger *slog.Logger
}

// New creates dir if needed.
func New(dir string, logger *slog.Logger) (*Area, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Area{dir: dir, logger: logger}, nil
}

func (a *Area) Dir() string {
	return a.dir
}

func (a *Area) InputPath(id uuid.UUID) string {
	return filepath.Join(a.dir, inputPrefix+id.String()+".json")
}

func (a *Area) OutputPath(id uuid.UUID) string {
	return filepath.Join(a.dir, outputPrefix+id.String()+".txt")
}

// SaveInput stages the uploaded document.
func (a *Area) SaveInput(id uuid.UUID, data []byte) (string, error) {
	path := a.InputPath(id)
	if err := writeAtomic(path, data, 0o600); err != nil {
		return "", fmt.Errorf("stage input: %w", err)
	}
	return path, nil
}

// SaveOutput writes the rendered report verbatim.
func (a *Area) SaveOutput(id uuid.UUID, report string) (string, error) {
	path := a.OutputPath(id)
	if err := writeAtomic(path, []byte(report), 0o600); err != nil {
		return "", fmt.Errorf("stage output: %w", err)
	}
	return path, nil
}

// Remove deletes both artifacts of a request. Missing files are ignored.
func (a *Area) Remove(id uuid.UUID) {
	for _, path := range []string{a.InputPath(id), a.OutputPath(id)} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn("failed to remove staged file", "path", path, "error", err)
		}
	}
}

// Sweep deletes every staged artifact left in the directory and returns how
// many were removed.
func (a *Area) Sweep() (int, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return 0, fmt.Errorf("read staging dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !isArtifact(e.Name()) {
			continue
		}
		path := filepath.Join(a.dir, e.Name())
		if err := os.Remove(path); err != nil {
			a.logger.Warn("failed to sweep staged file", "path", path, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Run sweeps immediately and then every interval until ctx is done. A
// non-positive interval sweeps once.
func (a *Area) Run(ctx context.Context, interval time.Duration) {
	a.sweepAndLog()
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.sweepAndLog()
		}
	}
}

func (a *Area) sweepAndLog() {
	n, err := a.Sweep()
	if err != nil {
		a.logger.Error("staging sweep failed", "error", err)
		return
	}
	if n > 0 {
		a.logger.Info("staging swept", "removed", n)
	}
}

func isArtifact(name string) bool {
	return (strings.HasPrefix(name, inputPrefix) && strings.HasSuffix(name, ".json")) ||
		(strings.HasPrefix(name, outputPrefix) && strings.HasSuffix(name, ".txt"))
}

func writeAtomic(path string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp_stage_*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

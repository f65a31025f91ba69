package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/vidocq/internal/config"
)

func localConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{UploadDir: filepath.Join(t.TempDir(), "uploads")}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunAnalyze_Stdout(t *testing.T) {
	in := writeFile(t, "chat.json", `["Salut", "Tu es un idiot"]`)

	var out bytes.Buffer
	if err := runAnalyze(context.Background(), localConfig(t), in, "", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "SIGNES LÉGERS") {
		t.Errorf("expected report on stdout, got:\n%s", out.String())
	}
}

func TestRunAnalyze_OutFile(t *testing.T) {
	in := writeFile(t, "chat.json", `{}`)
	outPath := filepath.Join(t.TempDir(), "rapport.txt")

	var out bytes.Buffer
	if err := runAnalyze(context.Background(), localConfig(t), in, outPath, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "RAPPORT D'ANALYSE DE CONVERSATION") {
		t.Errorf("expected report header in file, got:\n%s", data)
	}
}

func TestRunAnalyze_InvalidJSON(t *testing.T) {
	in := writeFile(t, "chat.json", `{"messages": [`)

	if err := runAnalyze(context.Background(), localConfig(t), in, "", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestRunAnalyze_MissingFile(t *testing.T) {
	if err := runAnalyze(context.Background(), localConfig(t), "/nonexistent/chat.json", "", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "analyze", "lexicon", "version"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("expected %s subcommand, got %v (err %v)", name, c, err)
		}
	}
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tidy/internal/services"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`
[paths]
state_dir = %q
log_dir = %q

[history]
enabled = true
limit = 10

[logging]
format = "console"
level = "warn"
`, filepath.Join(base, "state"), filepath.Join(base, "logs"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOrganizeCommandMovesFiles(t *testing.T) {
	cfgPath := writeTestConfig(t)
	source := t.TempDir()
	for name, content := range map[string]string{
		"report.pdf": "doc",
		"photo.jpg":  "img",
	} {
		if err := os.WriteFile(filepath.Join(source, name), []byte(content), 0o644); err != nil {
			t.Fatalf("seed source: %v", err)
		}
	}

	out, err := runCLI(t, "--config", cfgPath, "organize", source)
	if err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}

	for _, want := range []string{
		filepath.Join(source, "Documents", "report.pdf"),
		filepath.Join(source, "Images", "photo.jpg"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("missing %s: %v", want, err)
		}
	}
	if !strings.Contains(out, "Summary") {
		t.Fatalf("missing summary header:\n%s", out)
	}
	if !strings.Contains(out, "Elapsed:") {
		t.Fatalf("missing elapsed line:\n%s", out)
	}
}

func TestOrganizeCommandPreview(t *testing.T) {
	cfgPath := writeTestConfig(t)
	source := t.TempDir()
	original := filepath.Join(source, "report.pdf")
	if err := os.WriteFile(original, []byte("doc"), 0o644); err != nil {
		t.Fatalf("seed source: %v", err)
	}

	out, err := runCLI(t, "--config", cfgPath, "organize", "--preview", source)
	if err != nil {
		t.Fatalf("organize --preview: %v\n%s", err, out)
	}

	if _, err := os.Stat(original); err != nil {
		t.Fatalf("preview moved the file: %v", err)
	}
	if !strings.Contains(out, "preview: nothing was moved") {
		t.Fatalf("missing preview marker:\n%s", out)
	}
}

func TestOrganizeCommandRejectsUnknownStrategy(t *testing.T) {
	cfgPath := writeTestConfig(t)
	source := t.TempDir()

	_, err := runCLI(t, "--config", cfgPath, "organize", "--duplicates", "merge", source)
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestHistoryCommandListsRuns(t *testing.T) {
	cfgPath := writeTestConfig(t)
	source := t.TempDir()
	if err := os.WriteFile(filepath.Join(source, "report.pdf"), []byte("doc"), 0o644); err != nil {
		t.Fatalf("seed source: %v", err)
	}

	if out, err := runCLI(t, "--config", cfgPath, "organize", source); err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}

	out, err := runCLI(t, "--config", cfgPath, "history")
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	if !strings.Contains(out, source) {
		t.Fatalf("history output missing run source:\n%s", out)
	}
}

func TestHistoryRecordsPreviewRuns(t *testing.T) {
	cfgPath := writeTestConfig(t)
	source := t.TempDir()
	if err := os.WriteFile(filepath.Join(source, "report.pdf"), []byte("doc"), 0o644); err != nil {
		t.Fatalf("seed source: %v", err)
	}

	if out, err := runCLI(t, "--config", cfgPath, "organize", "--preview", source); err != nil {
		t.Fatalf("organize --preview: %v\n%s", err, out)
	}

	out, err := runCLI(t, "--config", cfgPath, "history")
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	if !strings.Contains(out, "yes") {
		t.Fatalf("preview run not flagged in history:\n%s", out)
	}
}

func TestHistoryCommandEmpty(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "--config", cfgPath, "history")
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No runs recorded yet") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCategoriesCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "--config", cfgPath, "categories")
	if err != nil {
		t.Fatalf("categories: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Documents") {
		t.Fatalf("missing default category:\n%s", out)
	}
	if !strings.Contains(out, "(catch-all)") {
		t.Fatalf("missing catch-all marker:\n%s", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if out, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v\n%s", err, out)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(nil); got != 0 {
		t.Fatalf("exitCode(nil) = %d, want 0", got)
	}
	fatal := services.Wrap(services.ErrConfiguration, "organizing", "validate source", "missing", nil)
	if got := exitCode(fatal); got != 2 {
		t.Fatalf("exitCode(configuration error) = %d, want 2", got)
	}
	if got := exitCode(errors.New("boom")); got != 1 {
		t.Fatalf("exitCode(generic error) = %d, want 1", got)
	}
}

func TestConfigShowCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "duplicate_strategy") {
		t.Fatalf("missing organize settings:\n%s", out)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := "[paths]\n" +
		"data_dir = \"" + filepath.Join(base, "data") + "\"\n" +
		"log_dir = \"" + filepath.Join(base, "logs") + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return cliTestEnv{configPath: configPath, baseDir: base}
}

func runCLI(t *testing.T, env cliTestEnv, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func TestRootShowsHelp(t *testing.T) {
	env := setupCLITestEnv(t)
	out, err := runCLI(t, env)
	if err != nil {
		t.Fatalf("root command: %v", err)
	}
	requireContains(t, out, "scriptorium")
	requireContains(t, out, "add")
}

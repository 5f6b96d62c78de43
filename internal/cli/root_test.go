package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	return path
}

func runRoot(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	rootCmd := NewRootCommand()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	code = run(context.Background(), rootCmd, args)
	return code, out.String(), errOut.String()
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	rootCmd := NewRootCommand()

	for _, name := range []string{"open", "plot", "inspect", "add", "validate", "version"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"config", "log-level", "log-format"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag %q", flag)
		}
	}
}

func TestRun_ExitCodes(t *testing.T) {
	full := writeFile(t, "log.full", "run 10\nStep v_ntot\n0 1\nLoop time\n")
	empty := writeFile(t, "log.empty", "run 10\nStep v_ntot\nLoop time\n")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"rows loaded", []string{"open", full}, 0},
		{"empty table", []string{"open", empty}, 1},
		{"missing column", []string{"open", "-y", "Temp", full}, 2},
		{"missing file", []string{"open", "/nonexistent/log.lammps"}, 2},
		{"unknown command", []string{"frobnicate"}, 2},
		{"version", []string{"version"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runRoot(t, tt.args...)
			if code != tt.want {
				t.Errorf("exit code = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestRun_ErrorPrinted(t *testing.T) {
	full := writeFile(t, "log.full", "run 10\nStep v_ntot\n0 1\nLoop time\n")

	_, _, stderr := runRoot(t, "open", "-y", "Temp", full)
	if !strings.Contains(stderr, `Error: `) || !strings.Contains(stderr, `column "Temp" not found`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	logPath := writeFile(t, "log.lammps", "run 10\nStep v_ntot Temp\n0 1 300\n5 2 301\nLoop time\n")
	configPath := writeFile(t, "config.yaml", "columns:\n  y: Temp\n")

	code, stdout, _ := runRoot(t, "--config", configPath, "open", logPath)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "Temp") || !strings.Contains(stdout, "301.00") {
		t.Errorf("config column not used:\n%s", stdout)
	}
}

func TestRun_LogFlags(t *testing.T) {
	logPath := writeFile(t, "log.lammps", "run 10\nStep v_ntot\n0 1\n1 x\nLoop time\n")

	code, _, stderr := runRoot(t, "--log-level", "debug", "--log-format", "json", "open", logPath)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, `"message":"dropped row"`) {
		t.Errorf("expected JSON debug log of the dropped row, got:\n%s", stderr)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	logPath := writeFile(t, "log.lammps", "run 10\nStep v_ntot\n0 1\n")

	code, _, _ := runRoot(t, "--log-level", "loud", "open", logPath)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

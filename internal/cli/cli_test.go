package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes one invocation against db, the way a separate process would.
func runCLI(t *testing.T, db string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--db", db, "--no-color"}, args...)
	code = Run(context.Background(), full, &out, &errOut, "test")
	return code, out.String(), errOut.String()
}

func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, "labels.db")
}

func TestAddListCheckRemove(t *testing.T) {
	db := setup(t)

	if code, out, errOut := runCLI(t, db, "add", "--every", "week", "Take", "out", "bins"); code != 0 {
		t.Fatalf("add exit %d: %s %s", code, out, errOut)
	}
	if code, _, _ := runCLI(t, db, "add", "Take vitamins"); code != 0 {
		t.Fatalf("add exit %d", code)
	}

	code, out, _ := runCLI(t, db, "ls")
	if code != 0 {
		t.Fatalf("ls exit %d", code)
	}
	for _, want := range []string{"=== Daily ===", "=== Every Monday ===", "Take out bins", "Take vitamins"} {
		if !strings.Contains(out, want) {
			t.Errorf("ls output missing %q:\n%s", want, out)
		}
	}

	if code, _, errOut := runCLI(t, db, "check", "1"); code != 0 {
		t.Fatalf("check exit %d: %s", code, errOut)
	}
	_, out, _ = runCLI(t, db, "ls")
	if !strings.Contains(out, "☑ Take out bins") {
		t.Errorf("checked item not shown as checked:\n%s", out)
	}
	_, out, _ = runCLI(t, db, "ls", "--pending")
	if strings.Contains(out, "☑ Take out bins") || strings.Contains(out, "  1. ") {
		t.Errorf("checked item listed with --pending:\n%s", out)
	}
	if !strings.Contains(out, "☐ Take vitamins") {
		t.Errorf("pending item missing with --pending:\n%s", out)
	}

	if code, out, _ := runCLI(t, db, "rm", "Take", "vitamins"); code != 0 || !strings.Contains(out, "removed 1") {
		t.Errorf("rm exit %d out %q", code, out)
	}
	if code, out, _ := runCLI(t, db, "rm", "nothing", "here"); code != 0 || !strings.Contains(out, "removed 0") {
		t.Errorf("rm missing exit %d out %q", code, out)
	}
}

func TestToggleAndUncheck(t *testing.T) {
	db := setup(t)
	runCLI(t, db, "add", "stretch")

	_, out, _ := runCLI(t, db, "toggle", "1")
	if !strings.Contains(out, "checked") {
		t.Errorf("toggle out = %q", out)
	}
	_, out, _ = runCLI(t, db, "uncheck", "1")
	if !strings.Contains(out, "unchecked") {
		t.Errorf("uncheck out = %q", out)
	}
}

func TestUsageErrors(t *testing.T) {
	db := setup(t)
	tests := []struct {
		name string
		args []string
	}{
		{"check without id", []string{"check"}},
		{"check not a number", []string{"check", "abc"}},
		{"check unknown id", []string{"check", "99"}},
		{"bad recurrence", []string{"add", "--every", "yearly", "x"}},
		{"bad theme", []string{"--theme", "pink", "ls"}},
		{"unknown flag", []string{"ls", "--nope"}},
		{"unknown command", []string{"frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, db, tt.args...)
			if code != exitUsage {
				t.Errorf("exit = %d, want %d (stderr %q)", code, exitUsage, errOut)
			}
		})
	}
}

func TestAddBlankIsSilent(t *testing.T) {
	db := setup(t)
	code, out, errOut := runCLI(t, db, "add", "   ")
	if code != 0 || out != "" || errOut != "" {
		t.Errorf("exit=%d out=%q err=%q", code, out, errOut)
	}
}

func TestStartupResetFailsOnCorruptDate(t *testing.T) {
	db := setup(t)
	runCLI(t, db, "add", "meds")
	runCLI(t, db, "check", "1")

	// Hand-edit the stored date the way an outside tool would.
	st := openRaw(t, db)
	if _, err := st.Exec(`UPDATE labels SET last_modified = 'not-a-date' WHERE id = 1`); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	st.Close()

	code, _, errOut := runCLI(t, db, "ls")
	if code != exitError || !strings.Contains(errOut, "malformed date") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestConfigInit(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	var out, errOut bytes.Buffer
	code := Run(context.Background(), []string{"--config", path, "--no-color", "config", "init"}, &out, &errOut, "test")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run(context.Background(), []string{"--version"}, &out, &errOut, "1.2.3"); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(out.String()) != "dailycheck 1.2.3" {
		t.Errorf("version out = %q", out.String())
	}
}

func TestExportImportCommands(t *testing.T) {
	db := setup(t)
	runCLI(t, db, "add", "--every", "month", "pay rent")

	file := filepath.Join(t.TempDir(), "routine.json")
	if code, out, errOut := runCLI(t, db, "export", file); code != 0 || !strings.Contains(out, "exported 1") {
		t.Fatalf("export exit=%d out=%q err=%q", code, out, errOut)
	}

	other := filepath.Join(t.TempDir(), "other.db")
	if code, out, errOut := runCLI(t, other, "import", file); code != 0 || !strings.Contains(out, "imported 1") {
		t.Fatalf("import exit=%d out=%q err=%q", code, out, errOut)
	}
	_, out, _ := runCLI(t, other, "ls")
	if !strings.Contains(out, "pay rent") {
		t.Errorf("imported item missing:\n%s", out)
	}
}

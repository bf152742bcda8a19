package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/skillcheck/internal/logger"
	"github.com/agentx-labs/skillcheck/internal/skill"
)

func migrationRoots(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()
	t.Chdir(base)
	for _, d := range []string{"source", "import"} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return "source", "import"
}

func TestVerifyMissingSiblingEntry(t *testing.T) {
	src, imp := migrationRoots(t)
	writeSkill(t, src, "skills/foo", "helper.py")
	writeSkill(t, imp, "skills/foo")

	stdout, stderr, err := executeRoot(t, "verify-completeness", "--source-root", src, "--import-root", imp)
	if !errors.Is(err, errSilent) {
		t.Fatalf("err = %v, want errSilent", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	want := "Skill completeness check failed:\n- " + filepath.Join("skills", "foo") + ": missing sibling entries from source snapshot: helper.py\n"
	if stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestVerifyComplete(t *testing.T) {
	src, imp := migrationRoots(t)
	writeSkill(t, src, "skills/foo", "a.txt", "b.txt")
	writeSkill(t, imp, "skills/foo", "a.txt", "b.txt")

	stdout, stderr, err := executeRoot(t, "verify-completeness", "--source-root", src, "--import-root", imp)
	if err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr)
	}
	want := "Skill completeness check passed (1 imported skill(s) verified).\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestVerifyMissingSourceSkill(t *testing.T) {
	src, imp := migrationRoots(t)
	writeSkill(t, imp, "skills/bar")

	_, stderr, err := executeRoot(t, "verify-completeness", "--source-root", src, "--import-root", imp)
	if !errors.Is(err, errSilent) {
		t.Fatalf("err = %v, want errSilent", err)
	}
	want := "- " + filepath.Join("skills", "bar") + ": imported SKILL.md exists but source skill directory is missing (" + filepath.Join(src, "skills", "bar") + ")\n"
	if !strings.HasSuffix(stderr, want) {
		t.Errorf("stderr = %q, want suffix %q", stderr, want)
	}
}

func TestVerifyMissingRoot(t *testing.T) {
	src, _ := migrationRoots(t)

	var stdout, stderr bytes.Buffer
	err := runVerify(&stdout, &stderr, skill.NewChecker("SKILL.md", nil), src, "nowhere", false)
	if !errors.Is(err, errSilent) {
		t.Fatalf("err = %v, want errSilent", err)
	}
	if stderr.String() != "ERROR: import root does not exist: nowhere\n" {
		t.Errorf("stderr = %q", stderr.String())
	}

	stderr.Reset()
	err = runVerify(&stdout, &stderr, skill.NewChecker("SKILL.md", nil), "gone/", src, false)
	if !errors.Is(err, errSilent) {
		t.Fatalf("err = %v, want errSilent", err)
	}
	if stderr.String() != "ERROR: source root does not exist: gone\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestVerifyIsIdempotent(t *testing.T) {
	src, imp := migrationRoots(t)
	writeSkill(t, src, "skills/foo", "helper.py")
	writeSkill(t, imp, "skills/foo")
	writeSkill(t, imp, "skills/bar")

	run := func() (string, string, error) {
		var stdout, stderr bytes.Buffer
		err := runVerify(&stdout, &stderr, skill.NewChecker("SKILL.md", skill.DefaultIgnoredNames), src, imp, false)
		return stdout.String(), stderr.String(), err
	}

	out1, err1s, err1 := run()
	out2, err2s, err2 := run()
	if out1 != out2 || err1s != err2s || !errors.Is(err1, errSilent) || !errors.Is(err2, errSilent) {
		t.Errorf("runs differ:\n%q %q %v\n%q %q %v", out1, err1s, err1, out2, err2s, err2)
	}
}

func TestVerifyJSON(t *testing.T) {
	src, imp := migrationRoots(t)
	writeSkill(t, src, "skills/foo", "helper.py", "notes.md")
	writeSkill(t, imp, "skills/foo")

	var stdout, stderr bytes.Buffer
	err := runVerify(&stdout, &stderr, skill.NewChecker("SKILL.md", nil), src, imp, true)
	if !errors.Is(err, errSilent) {
		t.Fatalf("err = %v, want errSilent", err)
	}

	var got jsonReport
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decoding JSON output: %v\n%s", err, stdout.String())
	}
	if got.OK || got.Checked != 1 || len(got.Failures) != 1 {
		t.Fatalf("report = %+v", got)
	}
	f := got.Failures[0]
	if f.Skill != "skills/foo" || f.Kind != skill.FailureMissingEntries {
		t.Errorf("failure = %+v", f)
	}
	if strings.Join(f.Missing, ",") != "helper.py,notes.md" {
		t.Errorf("Missing = %v", f.Missing)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty in JSON mode", stderr.String())
	}
}

func TestVerifyUsesConfigFile(t *testing.T) {
	base := t.TempDir()
	t.Chdir(base)
	writeSkill(t, "snap", "skills/foo", "x.txt")
	writeSkill(t, "imported", "skills/foo", "x.txt")
	cfg := "source_root: snap\nimport_root: imported\n"
	if err := os.WriteFile(".skillcheck.yaml", []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := executeRoot(t, "verify-completeness")
	if err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr)
	}
	if !strings.Contains(stdout, "(1 imported skill(s) verified)") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestVerifyCountHasNoGrouping(t *testing.T) {
	src, imp := migrationRoots(t)
	for i := range 1000 {
		name := fmt.Sprintf("skills/s%04d", i)
		writeSkill(t, src, name)
		writeSkill(t, imp, name)
	}

	var stdout, stderr bytes.Buffer
	if err := runVerify(&stdout, &stderr, skill.NewChecker("SKILL.md", nil), src, imp, false); err != nil {
		t.Fatalf("runVerify: %v (stderr %q)", err, stderr.String())
	}
	want := "Skill completeness check passed (1000 imported skill(s) verified).\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestVerifyLogsThroughCommandLogger(t *testing.T) {
	src, imp := migrationRoots(t)
	writeSkill(t, src, "skills/foo")
	writeSkill(t, imp, "skills/foo")

	var logs bytes.Buffer
	logger.SetLogOutput(&logs)
	t.Cleanup(func() {
		logger.SetLogOutput(io.Discard)
		logger.SetLogFormat("text")
		_ = logger.SetLogLevel("warn")
	})

	_, stderr, err := executeRoot(t, "verify-completeness", "-v", "--log-format", "json",
		"--source-root", src, "--import-root", imp)
	if err != nil {
		t.Fatalf("verify-completeness: %v (stderr %q)", err, stderr)
	}
	for _, want := range []string{`"command":"verify-completeness"`, `"message":"found 1 SKILL.md file(s)"`} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %s:\n%s", want, logs.String())
		}
	}
}

func TestRejectsUnknownLogFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, _, err := executeRoot(t, "config", "show", "--log-format", "xml"); err == nil {
		t.Error("expected error for unknown log format")
	}
}

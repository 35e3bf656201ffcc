package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

type stubPrompter struct {
	answers []string
	asked   []string
}

func (s *stubPrompter) Choose(_ context.Context, message string, options []string) (string, error) {
	s.asked = append(s.asked, message+": "+strings.Join(options, ","))
	if len(s.answers) == 0 {
		return "", errors.New("no answer")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func runCLI(t *testing.T, prompt prompter, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr, prompt); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, stderr.String())
	}
	return stdout.String()
}

func TestRunPrintsTree(t *testing.T) {
	out := runCLI(t, nil,
		"-fixtures", "testdata/fixtures.yaml",
		"-config", "testdata/fields.yaml",
		"-type", "Page", "-id", "1", "-tabbed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"TabSet Root",
		"  Tab Main",
		`    TextField Title "Page title" = Home`,
		`    HeaderField Headingh2 "H 2" h2`,
		`    CheckboxField ShowInMenus "Show In Menus"`,
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPrintsJSON(t *testing.T) {
	out := runCLI(t, nil,
		"-fixtures", "testdata/fixtures.yaml",
		"-type", "Page", "-id", "1",
		"-relations", "-restrict", "Title,Comments",
		"-format", "json")

	var snaps []form.Snapshot
	if err := json.Unmarshal([]byte(out), &snaps); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	var names []string
	for _, snap := range snaps {
		names = append(names, snap.Name)
	}
	if diff := cmp.Diff([]string{"Title", "Comments"}, names); diff != "" {
		t.Fatalf("default layout mismatch (-want +got):\n%s", diff)
	}
	if snaps[1].Relation == nil || snaps[1].Relation.Count != 1 {
		t.Fatalf("expected relation grid with one linked record, got %+v", snaps[1].Relation)
	}
}

func TestRunDumpFormat(t *testing.T) {
	out := runCLI(t, nil,
		"-fixtures", "testdata/fixtures.yaml",
		"-config", "testdata/fields.yaml",
		"-type", "Page", "-format", "dump")
	if !strings.Contains(out, "form.Snapshot") || !strings.Contains(out, "Headingh2") {
		t.Fatalf("unexpected dump output:\n%s", out)
	}
}

func TestRunInteractiveSelection(t *testing.T) {
	prompt := &stubPrompter{answers: []string{"Page", "2"}}
	out := runCLI(t, prompt,
		"-fixtures", "testdata/fixtures.yaml",
		"-config", "testdata/fields.yaml",
		"-interactive")

	want := []string{
		"Object type: Page,Comment",
		"Record: (new record),1,2",
	}
	if diff := cmp.Diff(want, prompt.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, "= About") {
		t.Fatalf("expected record 2 to be scaffolded:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	cases := map[string][]string{
		"no models":      {"-type", "Page"},
		"bad format":     {"-fixtures", "testdata/fixtures.yaml", "-format", "xml"},
		"missing type":   {"-fixtures", "testdata/fixtures.yaml"},
		"unknown record": {"-fixtures", "testdata/fixtures.yaml", "-type", "Page", "-id", "99"},
		"unknown model":  {"-fixtures", "testdata/fixtures.yaml", "-type", "Nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(context.Background(), args, &stdout, &stderr, nil); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" Title, ,Content ")
	if diff := cmp.Diff([]string{"Title", "Content"}, got); diff != "" {
		t.Fatalf("splitList mismatch (-want +got):\n%s", diff)
	}
}

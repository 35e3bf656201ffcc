package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

// UpdateEnv is the environment variable that makes golden assertions
// rewrite their files instead of comparing.
const UpdateEnv = "UPDATE_GOLDENS"

func updating() bool {
	return os.Getenv(UpdateEnv) != ""
}

// AssertGolden compares the JSON snapshot of list with the golden at path.
func AssertGolden(t *testing.T, path string, list *form.FieldList) {
	t.Helper()

	got, err := json.MarshalIndent(form.SnapshotList(list), "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	got = append(got, '\n')

	if updating() {
		writeGolden(t, path, got)
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden (set %s=1 to create it): %v", UpdateEnv, err)
	}
	if diff := CompareJSON(want, got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// CompareJSON diffs two JSON payloads by value; layout and key order are
// ignored. Decode failures are reported as the diff.
func CompareJSON(want, got []byte) string {
	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		return fmt.Sprintf("decode want: %v", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		return fmt.Sprintf("decode got: %v", err)
	}
	return cmp.Diff(wantValue, gotValue)
}

func writeGolden(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

package scaffold

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const oddDescriptors = `
fields:
  - Title
  - Weird: 42
  - [nested, list]
  - {type: FieldGroup}
  - Summary
`

func TestUnknownDescriptorsAreSkipped(t *testing.T) {
	list := mustScaffoldDoc(t, draftPage(), oddDescriptors, Request{})
	if diff := cmp.Diff([]string{"Title", "Summary"}, childNames(list)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStrictDescriptors(t *testing.T) {
	_, err := scaffoldDoc(t, draftPage(), oddDescriptors, Request{}, WithStrictDescriptors(true))
	if !errors.Is(err, ErrUnknownDescriptor) {
		t.Fatalf("expected ErrUnknownDescriptor, got %v", err)
	}
}

func TestIsHeadingToken(t *testing.T) {
	for _, token := range []string{"h1", "H6", "h3"} {
		if !isHeadingToken(token) {
			t.Fatalf("expected %q to be a heading token", token)
		}
	}
	for _, token := range []string{"h7", "h", "Title", "h10"} {
		if isHeadingToken(token) {
			t.Fatalf("did not expect %q to be a heading token", token)
		}
	}
}

package slug

import "testing"

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Details":             "details",
		"Main Content":        "main-content",
		"  Leading space":     "leading-space",
		"Crème brûlée":        "creme-brulee",
		"Terms & Conditions":  "terms-and-conditions",
		"snake_case.name":     "snake-case-name",
		"already-safe":        "already-safe",
		"What?!":              "what",
		"multiple---dashes--": "multiple-dashes",
		"":                    "",
	}

	for input, want := range cases {
		if got := Make(input); got != want {
			t.Fatalf("Make(%q): want %q got %q", input, want, got)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Details", "Terms & Conditions", "Crème brûlée", "h3"}
	for _, input := range inputs {
		once := Make(input)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

package quiz

import (
	"errors"
	"testing"
)

func TestExtractArray(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"bare array", `[1,2]`, `[1,2]`, true},
		{"markdown fence", "```json\n[{\"kind\":\"true_false\"}]\n```", `[{"kind":"true_false"}]`, true},
		{"leading prose", `Here are your questions: [ "a" ] Enjoy!`, `[ "a" ]`, true},
		{"no array", "I cannot generate questions from this.", "", false},
		{"only opening bracket", "here [ it comes", "", false},
		{"brackets reversed", "] oops [", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := extractArray(c.raw)
			if c.ok {
				if err != nil {
					t.Fatalf("extractArray(%q) error: %v", c.raw, err)
				}
				if got != c.want {
					t.Errorf("extractArray(%q) = %q, want %q", c.raw, got, c.want)
				}
				return
			}
			var malformed *ErrMalformedResponse
			if !errors.As(err, &malformed) {
				t.Errorf("extractArray(%q) error = %v, want ErrMalformedResponse", c.raw, err)
			}
		})
	}
}

func TestParseCandidates_BadJSONInsideArray(t *testing.T) {
	_, err := parseCandidates(`sure thing: [{"kind": "mcq", }]`)
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want ErrMalformedResponse", err)
	}
	if malformed.Err == nil {
		t.Error("expected the parse error to be wrapped")
	}
}

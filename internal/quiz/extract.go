package quiz

import (
	"encoding/json"
	"strings"
)

// extractArray locates the JSON array inside a free-form model reply.
// Providers pad array output with prose or markdown fences often enough
// that parsing the raw reply directly fails; slicing from the first '[' to
// the last ']' strips that padding without caring what shape it takes.
func extractArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return "", &ErrMalformedResponse{Reason: "no JSON array in reply"}
	}
	return raw[start : end+1], nil
}

// parseCandidates extracts and decodes the candidate question array from a
// raw model reply.
func parseCandidates(raw string) ([]candidate, error) {
	arr, err := extractArray(raw)
	if err != nil {
		return nil, err
	}
	var out []candidate
	if err := json.Unmarshal([]byte(arr), &out); err != nil {
		return nil, &ErrMalformedResponse{Reason: "array does not parse", Err: err}
	}
	return out, nil
}

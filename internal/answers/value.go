package answers

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is an answer as it flows through generation, grading, and attempt
// records: either free text or a boolean (true/false questions). The zero
// value is the empty text answer.
type Value struct {
	boolean bool
	isBool  bool
	text    string
}

// Text wraps a string answer.
func Text(s string) Value {
	return Value{text: s}
}

// Bool wraps a boolean answer.
func Bool(b bool) Value {
	return Value{boolean: b, isBool: true}
}

// IsBool reports whether the value holds a boolean.
func (v Value) IsBool() bool { return v.isBool }

// Bool returns the boolean payload. Only meaningful when IsBool is true.
func (v Value) Bool() bool { return v.boolean }

// Text returns the string payload. Only meaningful when IsBool is false.
func (v Value) Text() string { return v.text }

// String renders the value for display: the text itself, or "true"/"false".
func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.boolean)
	}
	return v.text
}

// MarshalJSON encodes the value as a JSON string or JSON boolean.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isBool {
		return json.Marshal(v.boolean)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts a JSON string or JSON boolean. Anything else is an
// error: numbers and objects have no meaning as answers.
func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Bool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Text(s)
		return nil
	}
	return fmt.Errorf("answer must be a string or boolean, got %s", data)
}

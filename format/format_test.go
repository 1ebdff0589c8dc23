package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(tony) error = %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("j")); err != nil || !f.IsJSON() {
		t.Errorf("UnmarshalText(j) = %v, %v", f, err)
	}
}

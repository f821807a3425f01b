package treeparse

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"\x1b[01;34msrc\x1b[0m", "src"},
		{"├── \x1b[32mmain.rs\x1b[0m", "├── main.rs"},
		{"\x1b[1;2~after", "after"},
		{"\x1b", ""},          // bare escape at end of line
		{"a\x1bb", "ab"},      // escape without bracket introducer
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripANSI(tt.input); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripANSI_Idempotent(t *testing.T) {
	inputs := []string{
		"\x1b[01;34m├── src\x1b[0m",
		"│   └── \x1b[31mmain.rs\x1b[0m",
		"no escapes at all",
	}
	for _, in := range inputs {
		once := StripANSI(in)
		if twice := StripANSI(once); twice != once {
			t.Errorf("StripANSI not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

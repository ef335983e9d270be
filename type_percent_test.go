package propfin

import "testing"

func TestParsePercent(t *testing.T) {
	testCases := []struct {
		input string
		want  Percent
	}{
		{"12.64%", 12.64},
		{"12.64", 12.64},
		{" 7.5 % ", 7.5},
		{"-3.2%", -3.2},
		{"", 0},
		{"-", 0},
		{"n/a", 0},
	}
	for _, tc := range testCases {
		if got := ParsePercent(tc.input); !got.Equal(tc.want) {
			t.Errorf("ParsePercent(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestPercent_Strings(t *testing.T) {
	if got := Percent(12.636).String(); got != "12.64%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
	if got := Percent(-4.2).SignedString(); got != "-4.20%" {
		t.Errorf("SignedString() = %q", got)
	}
}

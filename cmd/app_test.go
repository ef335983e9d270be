package cmd

import (
	"strings"
	"testing"
)

func TestCommands(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands {
		name := c.Name()
		if name == "" {
			t.Errorf("command %T has an empty name", c)
		}
		if seen[name] {
			t.Errorf("command name %q is registered twice", name)
		}
		seen[name] = true
		if c.Synopsis() == "" {
			t.Errorf("command %q has no synopsis", name)
		}
		if c.Usage() == "" {
			t.Errorf("command %q has no usage", name)
		}
	}
}

func TestFallback(t *testing.T) {
	old := *rentRollURL
	defer func() { *rentRollURL = old }()

	*rentRollURL = ""
	if p := Fallback(); p.RentRoll != nil {
		t.Error("live tier enabled without a rent-roll URL")
	}

	*rentRollURL = "http://rentroll.local"
	p := Fallback()
	if p.RentRoll == nil {
		t.Fatal("live tier not enabled")
	}
	if !strings.HasPrefix(p.RentRoll.BaseURL, "http://rentroll.local") {
		t.Errorf("rent-roll base URL = %q", p.RentRoll.BaseURL)
	}
}

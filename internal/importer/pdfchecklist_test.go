package importer

import (
	"strings"
	"testing"
)

func TestCardLinePattern(t *testing.T) {
	cases := []struct {
		line       string
		wantNumber string
		wantRest   string
	}{
		{"150 Mike Trout, Los Angeles Angels", "150", "Mike Trout, Los Angeles Angels"},
		{"BD-12 Jackson Holliday", "BD-12", "Jackson Holliday"},
		{"T87-3 Julio Rodriguez, Mariners", "T87-3", "Julio Rodriguez, Mariners"},
		{"1a Variation Card", "1a", "Variation Card"},
	}
	for _, c := range cases {
		m := cardLinePattern.FindStringSubmatch(c.line)
		if m == nil {
			t.Errorf("Expected %q to match", c.line)
			continue
		}
		if m[1] != c.wantNumber || m[2] != c.wantRest {
			t.Errorf("Match for %q = (%q, %q), want (%q, %q)", c.line, m[1], m[2], c.wantNumber, c.wantRest)
		}
	}

	noMatch := []string{"GOLD REFRACTOR", "Checklist subject to change", ""}
	for _, line := range noMatch {
		if cardLinePattern.MatchString(line) {
			t.Errorf("Expected %q not to match", line)
		}
	}
}

func TestSplitPlayerTeam(t *testing.T) {
	player, team := splitPlayerTeam("Mike Trout, Los Angeles Angels")
	if player != "Mike Trout" || team != "Los Angeles Angels" {
		t.Errorf("Unexpected split: %q / %q", player, team)
	}

	player, team = splitPlayerTeam("Mike Trout")
	if player != "Mike Trout" || team != "" {
		t.Errorf("Unexpected split without comma: %q / %q", player, team)
	}
}

func TestIsSectionHeader(t *testing.T) {
	headers := []string{"GOLD REFRACTOR", "Autographs", "Gold /50"}
	for _, line := range headers {
		if !isSectionHeader(line) {
			t.Errorf("Expected %q to be a section header", line)
		}
	}

	notHeaders := []string{
		"2023 Topps Chrome",
		strings.Repeat("word ", 20),
		"This checklist is preliminary and the actual contents of the product may differ",
	}
	for _, line := range notHeaders {
		if isSectionHeader(line) {
			t.Errorf("Expected %q not to be a section header", line)
		}
	}
}

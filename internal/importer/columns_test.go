package importer

import "testing"

func TestMapColumns_ExactHeaders(t *testing.T) {
	headers := []string{"Card #", "Player Name", "Team"}

	mapping := MapColumns(headers, 85)

	if got := mapping.Fields[ColCardNumber]; got != "Card #" {
		t.Errorf("Expected card number mapped to %q, got %q", "Card #", got)
	}
	if got := mapping.Fields[ColPlayerName]; got != "Player Name" {
		t.Errorf("Expected player name mapped to %q, got %q", "Player Name", got)
	}
	if got := mapping.Fields[ColTeam]; got != "Team" {
		t.Errorf("Expected team mapped to %q, got %q", "Team", got)
	}
	if len(mapping.Unmapped) != 0 {
		t.Errorf("Expected no unmapped headers, got %v", mapping.Unmapped)
	}
}

func TestMapColumns_Deterministic(t *testing.T) {
	headers := []string{"Card #", "Player Name", "Team", "Parallel", "Auto", "RC", "Notes"}

	first := MapColumns(headers, 85)
	for i := 0; i < 10; i++ {
		again := MapColumns(headers, 85)
		for canonical, label := range first.Fields {
			if again.Fields[canonical] != label {
				t.Fatalf("Mapping not deterministic for %q: %q vs %q", canonical, label, again.Fields[canonical])
			}
		}
	}
}

func TestMapColumns_FuzzyHeader(t *testing.T) {
	// Misspelled header should still map via the fuzzy pass.
	headers := []string{"Card Numbr", "Player"}

	mapping := MapColumns(headers, 85)

	if got := mapping.Fields[ColCardNumber]; got != "Card Numbr" {
		t.Errorf("Expected fuzzy match for card number, got %q", got)
	}
}

func TestMapColumns_UnmappedHeaders(t *testing.T) {
	headers := []string{"Card #", "Warehouse Zone"}

	mapping := MapColumns(headers, 85)

	if len(mapping.Unmapped) != 1 || mapping.Unmapped[0] != "Warehouse Zone" {
		t.Errorf("Expected unmapped [Warehouse Zone], got %v", mapping.Unmapped)
	}
}

func TestMapColumns_HeaderClaimedOnce(t *testing.T) {
	// "Set" should go to parallel, leaving nothing for a second claim of the
	// same header.
	headers := []string{"Card #", "Set"}

	mapping := MapColumns(headers, 85)

	claims := 0
	for _, label := range mapping.Fields {
		if label == "Set" {
			claims++
		}
	}
	if claims != 1 {
		t.Errorf("Expected header claimed exactly once, got %d claims", claims)
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"card number", "card number", 100},
		{"", "", 100},
		{"abc", "xyz", 0},
	}
	for _, c := range cases {
		if got := Similarity(c.a, c.b); got != c.want {
			t.Errorf("Similarity(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}

	if got := Similarity("card numbr", "card number"); got < 85 {
		t.Errorf("Expected a near-match score >= 85, got %d", got)
	}
	if got := Similarity("team", "notes"); got >= 85 {
		t.Errorf("Expected unrelated headers below threshold, got %d", got)
	}
}

package importer

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Canonical column names recognized by the checklist parsers.
const (
	ColCardNumber = "card_number"
	ColPlayerName = "player_name"
	ColTeam       = "team"
	ColParallel   = "parallel"
	ColSerial     = "serial"
	ColAutograph  = "autograph"
	ColRelic      = "relic"
	ColRookie     = "rookie"
	ColCardType   = "card_type"
	ColNotes      = "notes"
)

// columnSynonyms maps each canonical column to the header spellings seen in
// the wild. Order matters: on a fuzzy tie the earlier synonym wins.
var columnSynonyms = map[string][]string{
	ColCardNumber: {"card #", "card number", "card no", "no", "#", "number", "card"},
	ColPlayerName: {"player", "player name", "name", "athlete", "subject"},
	ColTeam:       {"team", "team name", "club"},
	ColParallel:   {"parallel", "set name", "set", "variant", "variation", "insert", "subset"},
	ColSerial:     {"serial", "serial number", "print run", "numbered", "numbered to", "/"},
	ColAutograph:  {"auto", "autograph", "au", "signed"},
	ColRelic:      {"relic", "mem", "memorabilia", "jersey", "patch"},
	ColRookie:     {"rc", "rookie", "rookie card", "first year"},
	ColCardType:   {"card type", "type", "category"},
	ColNotes:      {"notes", "note", "comments", "description"},
}

// canonicalColumnOrder fixes the iteration order so mapping is deterministic
// across runs (map iteration order is not).
var canonicalColumnOrder = []string{
	ColCardNumber, ColPlayerName, ColTeam, ColParallel, ColSerial,
	ColAutograph, ColRelic, ColRookie, ColCardType, ColNotes,
}

// ColumnMapping maps canonical column names to the header actually found in
// the uploaded file. Built once per file, read-only afterward.
type ColumnMapping struct {
	// Fields maps canonical name -> source header text.
	Fields map[string]string
	// Unmapped lists source headers that matched no canonical column.
	Unmapped []string
}

// Has reports whether the canonical column was found in the file.
func (m ColumnMapping) Has(canonical string) bool {
	_, ok := m.Fields[canonical]
	return ok
}

// MapColumns resolves the file's header row against the synonym table.
// Exact matches (case and whitespace insensitive) are claimed first; the
// remaining headers go through a fuzzy pass against every synonym, accepting
// the first pair scoring at or above threshold. A header is claimed by at
// most one canonical column. Missing columns are not an error here; callers
// decide which columns are mandatory.
func MapColumns(headers []string, threshold int) ColumnMapping {
	mapping := ColumnMapping{Fields: make(map[string]string)}

	claimed := make(map[int]bool, len(headers))
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = foldHeader(h)
	}

	// Exact pass.
	for _, canonical := range canonicalColumnOrder {
		for _, syn := range columnSynonyms[canonical] {
			found := false
			for i, h := range folded {
				if claimed[i] || h == "" {
					continue
				}
				if h == foldHeader(syn) {
					mapping.Fields[canonical] = headers[i]
					claimed[i] = true
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}

	// Fuzzy pass for whatever is still unresolved.
	for _, canonical := range canonicalColumnOrder {
		if _, ok := mapping.Fields[canonical]; ok {
			continue
		}
		for _, syn := range columnSynonyms[canonical] {
			found := false
			for i, h := range folded {
				if claimed[i] || h == "" {
					continue
				}
				if Similarity(h, foldHeader(syn)) >= threshold {
					mapping.Fields[canonical] = headers[i]
					claimed[i] = true
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}

	for i, h := range headers {
		if !claimed[i] && strings.TrimSpace(h) != "" {
			mapping.Unmapped = append(mapping.Unmapped, h)
		}
	}
	return mapping
}

// foldHeader lowercases and collapses whitespace so "Card   #" and "card #"
// compare equal.
func foldHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Similarity returns a 0-100 score derived from the Levenshtein distance
// between the two strings: 100 means identical, 0 means nothing in common.
func Similarity(a, b string) int {
	if a == b {
		return 100
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	score := 100 - (dist*100+maxLen/2)/maxLen
	if score < 0 {
		score = 0
	}
	return score
}

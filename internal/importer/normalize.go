package importer

import (
	"regexp"
	"strconv"
	"strings"
)

var serialPattern = regexp.MustCompile(`/\s*(\d+)`)

// ExtractSerial pulls a print run out of free text. "Gold /50" yields 50.
// A bare number is treated as a print run only when it is plausibly one
// (positive and at most 1000); anything else yields no serial.
func ExtractSerial(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if m := serialPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return n, true
		}
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err == nil && n > 0 && n <= 1000 {
		return n, true
	}
	return 0, false
}

// truthyTokens covers the flag spellings checklist files use. Domain tokens
// like "auto" and "rc" count as truthy because providers often repeat the
// column name in the cell instead of writing yes/no.
var truthyTokens = map[string]bool{
	"yes":   true,
	"y":     true,
	"true":  true,
	"1":     true,
	"x":     true,
	"✓":     true,
	"✔":     true,
	"auto":  true,
	"relic": true,
	"rc":    true,
}

// ParseFlag interprets a cell as a boolean. Unrecognized values are false.
func ParseFlag(raw string) bool {
	return truthyTokens[strings.ToLower(strings.TrimSpace(raw))]
}

// nameSuffixes are generational suffixes stripped during normalization,
// longest first so "III" wins over "II".
var nameSuffixes = []string{"jr.", "jr", "sr.", "sr", "iv", "iii", "ii"}

// accentFold maps the accented characters that show up in player names to
// their ASCII bases. Deliberately a small fixed table, not full Unicode
// normalization.
var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ä", "a", "ã", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "ö", "o", "õ", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ñ", "n", "ç", "c",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n", "Ç", "c",
)

// NormalizeName produces the lossy dedup key for a player name: suffixes
// stripped, accents folded, whitespace collapsed, lowercased. "Ronald Acuña
// Jr." and "ronald acuna" normalize to the same key.
func NormalizeName(raw string) string {
	s := strings.ToLower(accentFold.Replace(raw))
	words := strings.Fields(s)
	for len(words) > 0 {
		last := words[len(words)-1]
		stripped := false
		for _, suf := range nameSuffixes {
			if last == suf {
				words = words[:len(words)-1]
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	return strings.Join(words, " ")
}

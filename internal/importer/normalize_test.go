package importer

import "testing"

func TestExtractSerial(t *testing.T) {
	cases := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"Gold /50", 50, true},
		{"/99", 99, true},
		{"Gold Refractor / 25", 25, true},
		{"199", 199, true},
		{"1000", 1000, true},
		{"1500", 0, false},
		{"Base", 0, false},
		{"", 0, false},
		{"/0", 0, false},
	}
	for _, c := range cases {
		got, ok := ExtractSerial(c.raw)
		if got != c.want || ok != c.wantOK {
			t.Errorf("ExtractSerial(%q) = (%d, %v), want (%d, %v)", c.raw, got, ok, c.want, c.wantOK)
		}
	}
}

func TestParseFlag(t *testing.T) {
	truthy := []string{"yes", "Y", "TRUE", "1", "x", "✓", "auto", "RC", " relic "}
	for _, raw := range truthy {
		if !ParseFlag(raw) {
			t.Errorf("ParseFlag(%q) = false, want true", raw)
		}
	}

	falsy := []string{"", "no", "n", "0", "false", "maybe"}
	for _, raw := range falsy {
		if ParseFlag(raw) {
			t.Errorf("ParseFlag(%q) = true, want false", raw)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Mike Trout", "mike trout"},
		{"MIKE   TROUT", "mike trout"},
		{"Mike Trout Jr.", "mike trout"},
		{"Ken Griffey Jr", "ken griffey"},
		{"Ronald Acuña Jr.", "ronald acuna"},
		{"Ronald Acuna", "ronald acuna"},
		{"Cal Ripken Sr.", "cal ripken"},
		{"Robert Smith III", "robert smith"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.raw); got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeName_SameKeyForVariants(t *testing.T) {
	variants := []string{"Mike Trout", "MIKE   TROUT", "Mike Trout Jr."}
	want := NormalizeName(variants[0])
	for _, v := range variants[1:] {
		if got := NormalizeName(v); got != want {
			t.Errorf("Expected %q and %q to share a key, got %q vs %q", variants[0], v, want, got)
		}
	}
}

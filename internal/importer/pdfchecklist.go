package importer

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// cardLinePattern matches checklist lines that lead with a card number:
// "150 Mike Trout", "BD-12 Jackson Holliday", "T87-3 Julio Rodriguez".
var cardLinePattern = regexp.MustCompile(`^([A-Z]{0,5}-?\d+[a-zA-Z]?)\s+(.+)$`)

// ParsePDFChecklist extracts card rows from a PDF checklist. Text is read
// page by page in row order. Lines that lead with a card number become rows;
// digit-free lines between them are treated as section headers naming the
// parallel for the rows that follow. A PDF yielding no card lines is
// rejected whole.
func ParsePDFChecklist(r io.Reader) (*ParsedFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fileErrorf("unreadable upload: %v", err)
	}
	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fileErrorf("not a valid PDF: %v", err)
	}

	parsed := &ParsedFile{
		Columns: ColumnMapping{Fields: map[string]string{
			ColCardNumber: "line-leading number",
			ColPlayerName: "line text",
			ColParallel:   "section header",
		}},
	}

	parallel := ""
	index := 0
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var sb strings.Builder
			for _, text := range row.Content {
				sb.WriteString(text.S)
			}
			line := strings.Join(strings.Fields(sb.String()), " ")
			if line == "" {
				continue
			}

			if m := cardLinePattern.FindStringSubmatch(line); m != nil {
				index++
				player, team := splitPlayerTeam(m[2])
				cells := map[string]string{
					ColCardNumber: m[1],
					ColPlayerName: player,
					ColTeam:       team,
					ColParallel:   parallel,
				}
				parsed.Rows = append(parsed.Rows, buildRow(index, cells))
				continue
			}

			if isSectionHeader(line) {
				parallel = line
			}
		}
	}

	if len(parsed.Rows) == 0 {
		return nil, fileErrorf("no card rows found in PDF")
	}
	return parsed, nil
}

// splitPlayerTeam divides "Mike Trout, Los Angeles Angels" into name and
// team. Without a comma the whole text is the player name.
func splitPlayerTeam(s string) (player, team string) {
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// isSectionHeader accepts short digit-free lines ("Gold Refractor",
// "AUTOGRAPHS") and rejects prose like disclaimers.
func isSectionHeader(line string) bool {
	if len(line) > 60 {
		return false
	}
	if strings.ContainsAny(line, "0123456789") {
		// Serially numbered sections ("Gold /50") are still headers.
		return serialPattern.MatchString(line)
	}
	return len(strings.Fields(line)) <= 6
}

package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fixed column positions for provider workbooks that ship without a header
// row: set name, card number, player, team, notes.
const (
	providerColSetName = 0
	providerColNumber  = 1
	providerColPlayer  = 2
	providerColTeam    = 3
	providerColNotes   = 4
)

// ParseWorkbook decodes an .xlsx upload. The first sheet's first non-empty
// row is probed as a header; when it maps to at least a card number column,
// the file is read as a plain headered table. Otherwise the workbook is
// treated as the provider layout: every sheet holds fixed-position rows and
// the sheet's set-name column carries the parallel.
func ParseWorkbook(r io.Reader, cfg Config) (*ParsedFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fileErrorf("unreadable upload: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fileErrorf("not a valid spreadsheet: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fileErrorf("spreadsheet has no sheets")
	}

	first, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fileErrorf("failed to read sheet %q: %v", sheets[0], err)
	}

	headerIdx, header := findHeaderRow(first)
	if header != nil {
		mapping := MapColumns(header, cfg.ColumnMatchThreshold)
		if mapping.Has(ColCardNumber) {
			return parseHeadered(first[headerIdx+1:], header, mapping), nil
		}
	}

	return parseProviderWorkbook(f, sheets)
}

// ParseCSVChecklist decodes a delimited checklist with a header row.
func ParseCSVChecklist(r io.Reader, cfg Config) (*ParsedFile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fileErrorf("not a valid delimited file: %v", err)
	}

	headerIdx, header := findHeaderRow(records)
	if header == nil {
		return nil, fileErrorf("file is empty")
	}
	mapping := MapColumns(header, cfg.ColumnMatchThreshold)
	if !mapping.Has(ColCardNumber) {
		return nil, fileErrorf("no card number column found")
	}
	return parseHeadered(records[headerIdx+1:], header, mapping), nil
}

// PreviewFile runs the same decoding as a committed import but returns only
// the mapping and a bounded sample. Nothing is persisted.
func PreviewFile(parsed *ParsedFile, cfg Config) *Preview {
	limit := cfg.PreviewRowLimit
	if limit <= 0 || limit > len(parsed.Rows) {
		limit = len(parsed.Rows)
	}
	return &Preview{
		Columns:    parsed.Columns,
		SampleRows: parsed.Rows[:limit],
		TotalRows:  len(parsed.Rows),
	}
}

// findHeaderRow returns the first row with any non-blank cell.
func findHeaderRow(rows [][]string) (int, []string) {
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return i, row
			}
		}
	}
	return -1, nil
}

func parseHeadered(rows [][]string, header []string, mapping ColumnMapping) *ParsedFile {
	// Invert the mapping to column positions once.
	position := make(map[string]int, len(mapping.Fields))
	for canonical, label := range mapping.Fields {
		for i, h := range header {
			if h == label {
				position[canonical] = i
				break
			}
		}
	}

	parsed := &ParsedFile{Columns: mapping}
	index := 0
	for _, raw := range rows {
		if isBlankRow(raw) {
			continue
		}
		index++
		cells := make(map[string]string, len(position))
		for canonical, pos := range position {
			if pos < len(raw) {
				cells[canonical] = raw[pos]
			}
		}
		parsed.Rows = append(parsed.Rows, buildRow(index, cells))
	}
	return parsed
}

func parseProviderWorkbook(f *excelize.File, sheets []string) (*ParsedFile, error) {
	parsed := &ParsedFile{
		Columns: ColumnMapping{Fields: map[string]string{
			ColParallel:   "sheet column A",
			ColCardNumber: "sheet column B",
			ColPlayerName: "sheet column C",
			ColTeam:       "sheet column D",
			ColNotes:      "sheet column E",
		}},
	}

	index := 0
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fileErrorf("failed to read sheet %q: %v", sheet, err)
		}
		for _, raw := range rows {
			if isBlankRow(raw) {
				continue
			}
			index++
			cells := map[string]string{
				ColParallel:   cellAt(raw, providerColSetName),
				ColCardNumber: cellAt(raw, providerColNumber),
				ColPlayerName: cellAt(raw, providerColPlayer),
				ColTeam:       cellAt(raw, providerColTeam),
				ColNotes:      cellAt(raw, providerColNotes),
			}
			parsed.Rows = append(parsed.Rows, buildRow(index, cells))
		}
	}
	if len(parsed.Rows) == 0 {
		return nil, fileErrorf("no data rows found in workbook")
	}
	return parsed, nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

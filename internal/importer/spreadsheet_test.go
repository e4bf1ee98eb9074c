package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSVChecklist(t *testing.T) {
	csvData := strings.Join([]string{
		"Card #,Player,Team,Parallel,Auto,RC",
		"1,Mike Trout,Angels,Base,,RC",
		"2,Ronald Acuña Jr.,Braves,Gold /50,auto,",
		"",
		"3,Shohei Ohtani,Dodgers,,,",
	}, "\n")

	parsed, err := ParseCSVChecklist(strings.NewReader(csvData), DefaultConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(parsed.Rows) != 3 {
		t.Fatalf("Expected 3 rows (blank line skipped), got %d", len(parsed.Rows))
	}

	first := parsed.Rows[0]
	if first.Index != 1 || first.CardNumber != "1" || first.PlayerName != "Mike Trout" {
		t.Errorf("Unexpected first row: %+v", first)
	}
	if !first.Rookie || first.Autograph {
		t.Errorf("Expected rookie without autograph, got %+v", first)
	}
	if first.SerialRun != nil {
		t.Errorf("Expected no serial for Base, got %v", *first.SerialRun)
	}

	second := parsed.Rows[1]
	if second.SerialRun == nil || *second.SerialRun != 50 {
		t.Errorf("Expected serial 50 from the parallel name, got %v", second.SerialRun)
	}
	if !second.Autograph {
		t.Error("Expected autograph flag set")
	}
}

func TestParseCSVChecklist_NoCardNumberColumn(t *testing.T) {
	csvData := "Player,Team\nMike Trout,Angels\n"

	_, err := ParseCSVChecklist(strings.NewReader(csvData), DefaultConfig())
	if err == nil {
		t.Fatal("Expected an error for a file without a card number column")
	}
	if !IsFileError(err) {
		t.Errorf("Expected a file-level error, got %v", err)
	}
}

func TestParseCSVChecklist_Empty(t *testing.T) {
	_, err := ParseCSVChecklist(strings.NewReader(""), DefaultConfig())
	if err == nil || !IsFileError(err) {
		t.Errorf("Expected a file-level error for an empty file, got %v", err)
	}
}

func TestParseWorkbook_Headered(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Card #", "Player", "Team", "Parallel"},
		{"1", "Mike Trout", "Angels", "Base"},
		{"2", "Aaron Judge", "Yankees", "Gold /99"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to build workbook: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}

	parsed, err := ParseWorkbook(bytes.NewReader(buf.Bytes()), DefaultConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(parsed.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(parsed.Rows))
	}
	if parsed.Rows[1].SerialRun == nil || *parsed.Rows[1].SerialRun != 99 {
		t.Errorf("Expected serial 99, got %v", parsed.Rows[1].SerialRun)
	}
}

func TestParseWorkbook_ProviderLayout(t *testing.T) {
	// No header row: fixed columns, one sheet per set.
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Base", "1", "Mike Trout", "Angels", ""},
		{"Base", "2", "Aaron Judge", "Yankees", "SP"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to build workbook: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}

	parsed, err := ParseWorkbook(bytes.NewReader(buf.Bytes()), DefaultConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(parsed.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(parsed.Rows))
	}
	if parsed.Rows[0].Parallel != "Base" || parsed.Rows[0].CardNumber != "1" {
		t.Errorf("Unexpected provider row: %+v", parsed.Rows[0])
	}
	if parsed.Rows[1].Notes != "SP" {
		t.Errorf("Expected notes from column E, got %q", parsed.Rows[1].Notes)
	}
}

func TestParseWorkbook_NotASpreadsheet(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("this is not a zip archive"), DefaultConfig())
	if err == nil || !IsFileError(err) {
		t.Errorf("Expected a file-level error, got %v", err)
	}
}

func TestPreviewFile_LimitsSample(t *testing.T) {
	parsed := &ParsedFile{}
	for i := 1; i <= 25; i++ {
		parsed.Rows = append(parsed.Rows, Row{Index: i})
	}

	preview := PreviewFile(parsed, DefaultConfig())

	if preview.TotalRows != 25 {
		t.Errorf("Expected total 25, got %d", preview.TotalRows)
	}
	if len(preview.SampleRows) != DefaultConfig().PreviewRowLimit {
		t.Errorf("Expected sample capped at %d, got %d", DefaultConfig().PreviewRowLimit, len(preview.SampleRows))
	}
}

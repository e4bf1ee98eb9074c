package importer

import "strings"

// Row is one decoded input row with its derived typed fields. Optional
// columns that were absent from the file (or blank in the cell) are zero
// values; SerialRun is nil when no print run could be read.
type Row struct {
	// Index is the 1-based position of the row among the file's data rows
	// (header and preamble excluded). Used for error reporting.
	Index int

	CardNumber string
	PlayerName string
	Team       string
	Parallel   string
	CardType   string
	Notes      string

	SerialRun *int
	Autograph bool
	Relic     bool
	Rookie    bool
}

// ParsedFile is the outcome of decoding one tabular upload: the resolved
// column mapping and every data row, in file order.
type ParsedFile struct {
	Columns ColumnMapping
	Rows    []Row
}

// Preview is the read-only variant returned before a committed import: the
// detected mapping plus a bounded sample of decoded rows.
type Preview struct {
	Columns    ColumnMapping
	SampleRows []Row
	TotalRows  int
}

func buildRow(index int, cells map[string]string) Row {
	row := Row{
		Index:      index,
		CardNumber: trimmed(cells[ColCardNumber]),
		PlayerName: trimmed(cells[ColPlayerName]),
		Team:       trimmed(cells[ColTeam]),
		Parallel:   trimmed(cells[ColParallel]),
		CardType:   trimmed(cells[ColCardType]),
		Notes:      trimmed(cells[ColNotes]),
		Autograph:  ParseFlag(cells[ColAutograph]),
		Relic:      ParseFlag(cells[ColRelic]),
		Rookie:     ParseFlag(cells[ColRookie]),
	}
	if n, ok := ExtractSerial(cells[ColSerial]); ok {
		row.SerialRun = &n
	} else if n, ok := ExtractSerial(cells[ColParallel]); ok {
		// Print runs are often embedded in the parallel name ("Gold /50").
		row.SerialRun = &n
	}
	return row
}

func trimmed(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

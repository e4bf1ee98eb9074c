package dtos

import "cardvault/internal/importer"

type LoginResponse struct {
	Token string `json:"token"`
}

// ImportSummary is the wire form of an import run's outcome.
type ImportSummary struct {
	TotalRows      int      `json:"total_rows"`
	CardsCreated   int      `json:"cards_created"`
	CardsUpdated   int      `json:"cards_updated"`
	PlayersCreated int      `json:"players_created"`
	PlayersMatched int      `json:"players_matched"`
	SalesCreated   int      `json:"sales_created,omitempty"`
	SalesMatched   int      `json:"sales_matched,omitempty"`
	RowsSkipped    int      `json:"rows_skipped"`
	Errors         []string `json:"errors,omitempty"`
}

func NewImportSummary(r *importer.Result) *ImportSummary {
	return &ImportSummary{
		TotalRows:      r.TotalRows,
		CardsCreated:   r.CardsCreated,
		CardsUpdated:   r.CardsUpdated,
		PlayersCreated: r.PlayersCreated,
		PlayersMatched: r.PlayersMatched,
		SalesCreated:   r.SalesCreated,
		SalesMatched:   r.SalesMatched,
		RowsSkipped:    r.RowsSkipped,
		Errors:         r.Errors,
	}
}

// ImportPreview is the wire form of a preview run: the detected mapping and
// a bounded sample, nothing persisted.
type ImportPreview struct {
	Columns    map[string]string `json:"columns"`
	Unmapped   []string          `json:"unmapped,omitempty"`
	SampleRows []PreviewRow      `json:"sample_rows"`
	TotalRows  int               `json:"total_rows"`
}

type PreviewRow struct {
	CardNumber string `json:"card_number"`
	PlayerName string `json:"player_name,omitempty"`
	Team       string `json:"team,omitempty"`
	Parallel   string `json:"parallel,omitempty"`
	SerialRun  *int   `json:"serial_run,omitempty"`
	Autograph  bool   `json:"autograph,omitempty"`
	Relic      bool   `json:"relic,omitempty"`
	Rookie     bool   `json:"rookie,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func NewImportPreview(p *importer.Preview) *ImportPreview {
	out := &ImportPreview{
		Columns:    p.Columns.Fields,
		Unmapped:   p.Columns.Unmapped,
		TotalRows:  p.TotalRows,
		SampleRows: make([]PreviewRow, 0, len(p.SampleRows)),
	}
	for _, row := range p.SampleRows {
		out.SampleRows = append(out.SampleRows, PreviewRow{
			CardNumber: row.CardNumber,
			PlayerName: row.PlayerName,
			Team:       row.Team,
			Parallel:   row.Parallel,
			SerialRun:  row.SerialRun,
			Autograph:  row.Autograph,
			Relic:      row.Relic,
			Rookie:     row.Rookie,
			Notes:      row.Notes,
		})
	}
	return out
}

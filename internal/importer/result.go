package importer

import "fmt"

// Result accumulates the outcome of one import run. It grows monotonically
// as rows are processed and is returned to the caller once at the end.
// Errors keep row-processing order; every failed row contributes exactly one
// entry and touches no success counter.
type Result struct {
	TotalRows int `json:"total_rows"`

	CardsCreated   int `json:"cards_created"`
	CardsUpdated   int `json:"cards_updated"`
	PlayersCreated int `json:"players_created"`
	PlayersMatched int `json:"players_matched"`

	SalesCreated int `json:"sales_created"`
	SalesMatched int `json:"sales_matched"`

	RowsSkipped int      `json:"rows_skipped"`
	Errors      []string `json:"errors"`
}

// AddRowError records a failure for the 1-based data row and marks it
// skipped.
func (r *Result) AddRowError(rowIndex int, err error) {
	r.RowsSkipped++
	r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %v", rowIndex, err))
}

// Merge folds a per-row outcome into the running totals.
func (r *Result) Merge(o RowOutcome) {
	switch o.Card {
	case CardCreated:
		r.CardsCreated++
	case CardUpdated:
		r.CardsUpdated++
	}
	switch o.Player {
	case PlayerCreated:
		r.PlayersCreated++
	case PlayerMatched:
		r.PlayersMatched++
	}
}

// CardOutcome tags what happened to the row's checklist record.
type CardOutcome int

const (
	CardNone CardOutcome = iota
	CardCreated
	CardUpdated
)

// PlayerOutcome tags how the row's player reference was resolved.
type PlayerOutcome int

const (
	PlayerNone PlayerOutcome = iota
	PlayerCreated
	PlayerMatched
)

// RowOutcome is the tagged result of reconciling one row. A row either
// reconciles (Card is created or updated) or fails (the reconciler returns
// an error instead); the two never mix.
type RowOutcome struct {
	Card   CardOutcome
	Player PlayerOutcome
}

package importer

import (
	"context"
	"errors"
	"strings"
)

// ChecklistRecord mirrors the persisted checklist row the reconciler reads
// and writes. Identity is (ProductLineID, CardNumber, Parallel); everything
// else is overwritable on re-import.
type ChecklistRecord struct {
	ID            string
	ProductLineID string
	CardNumber    string
	Parallel      string
	PlayerID      string
	CardTypeID    string
	SerialRun     *int
	Autograph     bool
	Relic         bool
	Rookie        bool
	Notes         string
}

// ChecklistStore is the persistence boundary the reconciler upserts through.
// FindByIdentity returns (nil, nil) when no record matches the triple.
type ChecklistStore interface {
	FindByIdentity(ctx context.Context, productLineID, cardNumber, parallel string) (*ChecklistRecord, error)
	Create(ctx context.Context, rec *ChecklistRecord) error
	Update(ctx context.Context, rec *ChecklistRecord) error
}

// CardTypeTable is the small in-memory table of known card type names,
// loaded once per import run.
type CardTypeTable struct {
	names  []string
	ids    map[string]string
	baseID string
}

func NewCardTypeTable() *CardTypeTable {
	return &CardTypeTable{ids: make(map[string]string)}
}

// Add registers a known type name. The name "base" becomes the default
// classification.
func (t *CardTypeTable) Add(name, id string) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if _, ok := t.ids[key]; ok {
		return
	}
	t.ids[key] = id
	t.names = append(t.names, key)
	if key == "base" {
		t.baseID = id
	}
}

// Classify maps a free-text type or parallel name to a known card type:
// exact name first, then substring containment in either direction, then
// the "base" default. The second return is false only when the table has no
// default to fall back on.
func (t *CardTypeTable) Classify(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key != "" {
		if id, ok := t.ids[key]; ok {
			return id, true
		}
		for _, name := range t.names {
			if strings.Contains(key, name) || strings.Contains(name, key) {
				return t.ids[name], true
			}
		}
	}
	if t.baseID != "" {
		return t.baseID, true
	}
	return "", false
}

// Reconciler drives one import run against a single product line: it routes
// each row's player through the resolver, classifies the card type, and
// upserts the checklist record.
type Reconciler struct {
	ProductLineID string
	Store         ChecklistStore
	Players       *PlayerResolver
	Types         *CardTypeTable
}

// ReconcileRow processes one row to a terminal outcome: created, updated, or
// an error. On error nothing from this row is written (a player created
// before the failure stays, matching first-occurrence-wins semantics for
// later rows).
func (rc *Reconciler) ReconcileRow(ctx context.Context, row Row) (RowOutcome, error) {
	var outcome RowOutcome

	if row.CardNumber == "" {
		return outcome, errors.New("missing card number")
	}

	playerID, created, err := rc.Players.Resolve(ctx, row.PlayerName, row.Team)
	if err != nil {
		return outcome, err
	}
	if playerID != "" {
		if created {
			outcome.Player = PlayerCreated
		} else {
			outcome.Player = PlayerMatched
		}
	}

	typeSource := row.CardType
	if typeSource == "" {
		typeSource = row.Parallel
	}
	typeID, _ := rc.Types.Classify(typeSource)

	existing, err := rc.Store.FindByIdentity(ctx, rc.ProductLineID, row.CardNumber, row.Parallel)
	if err != nil {
		return RowOutcome{}, err
	}

	if existing == nil {
		rec := &ChecklistRecord{
			ProductLineID: rc.ProductLineID,
			CardNumber:    row.CardNumber,
			Parallel:      row.Parallel,
			PlayerID:      playerID,
			CardTypeID:    typeID,
			SerialRun:     row.SerialRun,
			Autograph:     row.Autograph,
			Relic:         row.Relic,
			Rookie:        row.Rookie,
			Notes:         row.Notes,
		}
		if err := rc.Store.Create(ctx, rec); err != nil {
			return RowOutcome{}, err
		}
		outcome.Card = CardCreated
		return outcome, nil
	}

	existing.PlayerID = playerID
	existing.CardTypeID = typeID
	existing.SerialRun = row.SerialRun
	existing.Autograph = row.Autograph
	existing.Relic = row.Relic
	existing.Rookie = row.Rookie
	existing.Notes = row.Notes
	if err := rc.Store.Update(ctx, existing); err != nil {
		return RowOutcome{}, err
	}
	outcome.Card = CardUpdated
	return outcome, nil
}

// Run reconciles every row in file order, collecting per-row failures into
// the result and continuing. Only a context cancellation stops the batch
// early.
func (rc *Reconciler) Run(ctx context.Context, rows []Row, result *Result) error {
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.TotalRows++
		outcome, err := rc.ReconcileRow(ctx, row)
		if err != nil {
			result.AddRowError(row.Index, err)
			continue
		}
		result.Merge(outcome)
	}
	return nil
}

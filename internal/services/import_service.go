package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cardvault/internal/constants"
	"cardvault/internal/db/repositories"
	"cardvault/internal/importer"
	"cardvault/internal/logging"
	"cardvault/internal/metrics"
	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

// ImportService drives checklist and sales-report imports. All per-run state
// (player cache, card-type table, result) is built inside the call and
// discarded afterward; concurrent imports share nothing but the database.
type ImportService struct {
	db      *gorm.DB
	cfg     importer.Config
	metrics *metrics.MetricsRegistry
}

func NewImportService(db *gorm.DB, cfg importer.Config, reg *metrics.MetricsRegistry) *ImportService {
	return &ImportService{db: db, cfg: cfg, metrics: reg}
}

// ImportChecklist parses the upload and reconciles every row against the
// product line. Row failures are collected in the result; only file-level
// problems return an error.
func (s *ImportService) ImportChecklist(ctx context.Context, file io.Reader, filename, productLineID string) (*importer.Result, error) {
	start := time.Now()

	registry := repositories.NewRegistryRepository(s.db)
	if _, err := registry.GetProductLine(ctx, productLineID); err != nil {
		return nil, err
	}

	parsed, err := parseChecklistFile(file, filename, s.cfg)
	if err != nil {
		return nil, err
	}

	cache, err := s.loadPlayerCache(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.loadCardTypes(ctx)
	if err != nil {
		return nil, err
	}

	result := &importer.Result{}
	chunk := s.cfg.FlushChunkSize
	if chunk <= 0 {
		chunk = len(parsed.Rows)
	}

	for offset := 0; offset < len(parsed.Rows); offset += chunk {
		end := offset + chunk
		if end > len(parsed.Rows) {
			end = len(parsed.Rows)
		}
		rows := parsed.Rows[offset:end]

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			playerRepo := repositories.NewPlayerRepository(tx)
			resolver := importer.NewPlayerResolver(cache, s.cfg.PlayerMatchThreshold,
				func(ctx context.Context, rawName, normalizedKey, team string) (string, error) {
					player := &gormModels.Player{Name: rawName, NormalizedName: normalizedKey}
					if team != "" {
						player.Team = &team
					}
					if err := playerRepo.Create(ctx, player); err != nil {
						return "", err
					}
					return player.ID, nil
				})

			reconciler := &importer.Reconciler{
				ProductLineID: productLineID,
				Store:         &checklistStore{repo: repositories.NewChecklistRepository(tx)},
				Players:       resolver,
				Types:         types,
			}
			return reconciler.Run(ctx, rows, result)
		})
		if err != nil {
			return nil, fmt.Errorf("import aborted: %w", err)
		}
	}

	if s.metrics != nil {
		s.metrics.ImportRowsProcessed.Add(float64(result.TotalRows))
		s.metrics.ImportDuration.WithLabelValues("checklist").Observe(time.Since(start).Seconds())
	}
	logging.Info("Checklist import finished",
		"product_line_id", productLineID,
		"file", filename,
		"total_rows", result.TotalRows,
		"cards_created", result.CardsCreated,
		"cards_updated", result.CardsUpdated,
		"players_created", result.PlayersCreated,
		"rows_skipped", result.RowsSkipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// PreviewChecklist runs the parsing half of an import and returns the
// detected mapping plus a row sample. Nothing is written.
func (s *ImportService) PreviewChecklist(ctx context.Context, file io.Reader, filename string) (*importer.Preview, error) {
	parsed, err := parseChecklistFile(file, filename, s.cfg)
	if err != nil {
		return nil, err
	}
	return importer.PreviewFile(parsed, s.cfg), nil
}

func parseChecklistFile(file io.Reader, filename string, cfg importer.Config) (*importer.ParsedFile, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return importer.ParseWorkbook(file, cfg)
	case ".csv", ".txt":
		return importer.ParseCSVChecklist(file, cfg)
	case ".pdf":
		return importer.ParsePDFChecklist(file)
	default:
		return nil, &importer.FileError{Reason: constants.MsgUnsupportedFileType}
	}
}

func (s *ImportService) loadPlayerCache(ctx context.Context) (*importer.PlayerCache, error) {
	players, err := repositories.NewPlayerRepository(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cache := importer.NewPlayerCache()
	for _, p := range players {
		cache.Add(p.NormalizedName, p.ID)
	}
	return cache, nil
}

// loadCardTypes builds the classification table, seeding the default names
// on an empty registry so "base" always exists.
func (s *ImportService) loadCardTypes(ctx context.Context) (*importer.CardTypeTable, error) {
	registry := repositories.NewRegistryRepository(s.db)
	existing, err := registry.ListCardTypes(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		for _, name := range constants.DefaultCardTypes {
			ct, err := registry.FindOrCreateCardType(ctx, name)
			if err != nil {
				return nil, err
			}
			existing = append(existing, *ct)
		}
	}
	table := importer.NewCardTypeTable()
	for _, ct := range existing {
		table.Add(ct.Name, ct.ID)
	}
	return table, nil
}

// checklistStore adapts ChecklistRepository to the reconciler's store
// interface.
type checklistStore struct {
	repo *repositories.ChecklistRepository
}

func (s *checklistStore) FindByIdentity(ctx context.Context, productLineID, cardNumber, parallel string) (*importer.ChecklistRecord, error) {
	model, err := s.repo.FindByIdentity(ctx, productLineID, cardNumber, parallel)
	if err != nil || model == nil {
		return nil, err
	}
	return toChecklistRecord(model), nil
}

func (s *checklistStore) Create(ctx context.Context, rec *importer.ChecklistRecord) error {
	model := fromChecklistRecord(rec)
	if err := s.repo.Create(ctx, model); err != nil {
		return err
	}
	rec.ID = model.ID
	return nil
}

func (s *checklistStore) Update(ctx context.Context, rec *importer.ChecklistRecord) error {
	return s.repo.Update(ctx, fromChecklistRecord(rec))
}

func toChecklistRecord(m *gormModels.Checklist) *importer.ChecklistRecord {
	rec := &importer.ChecklistRecord{
		ID:            m.ID,
		ProductLineID: m.ProductLineID,
		CardNumber:    m.CardNumber,
		Parallel:      m.Parallel,
		SerialRun:     m.SerialRun,
		Autograph:     m.Autograph,
		Relic:         m.Relic,
		Rookie:        m.Rookie,
		Notes:         m.Notes,
	}
	if m.PlayerID != nil {
		rec.PlayerID = *m.PlayerID
	}
	if m.CardTypeID != nil {
		rec.CardTypeID = *m.CardTypeID
	}
	return rec
}

func fromChecklistRecord(rec *importer.ChecklistRecord) *gormModels.Checklist {
	model := &gormModels.Checklist{
		ID:            rec.ID,
		ProductLineID: rec.ProductLineID,
		CardNumber:    rec.CardNumber,
		Parallel:      rec.Parallel,
		SerialRun:     rec.SerialRun,
		Autograph:     rec.Autograph,
		Relic:         rec.Relic,
		Rookie:        rec.Rookie,
		Notes:         rec.Notes,
	}
	if rec.PlayerID != "" {
		model.PlayerID = &rec.PlayerID
	}
	if rec.CardTypeID != "" {
		model.CardTypeID = &rec.CardTypeID
	}
	return model
}

package importer

// Config carries the tunables for an import run. The similarity thresholds
// are best-effort cutoffs, not calibrated constants; callers may override
// them per run.
type Config struct {
	// ColumnMatchThreshold is the minimum similarity score (0-100) for a
	// header to be accepted as a fuzzy match for a canonical column.
	ColumnMatchThreshold int

	// PlayerMatchThreshold is the minimum similarity score (0-100) for two
	// normalized player names to be treated as the same player.
	PlayerMatchThreshold int

	// FlushChunkSize bounds how many reconciled rows are held before the
	// persistence layer is asked to flush. Zero means flush once at the end.
	FlushChunkSize int

	// PreviewRowLimit bounds the number of sample rows returned in preview
	// mode.
	PreviewRowLimit int
}

func DefaultConfig() Config {
	return Config{
		ColumnMatchThreshold: 85,
		PlayerMatchThreshold: 90,
		FlushChunkSize:       500,
		PreviewRowLimit:      10,
	}
}

package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixCollectionStats CachePrefix = "COLLECTION_STATS_"
	CachePrefixProductLines    CachePrefix = "PRODUCT_LINES"
	CachePrefixCardTypes       CachePrefix = "CARD_TYPES"
)

// DefaultCardTypes seeds the card-type table on first use so the
// classifier always has a "base" fallback.
var DefaultCardTypes = []string{"base", "insert", "parallel", "autograph", "relic"}

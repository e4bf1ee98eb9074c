package importer

import "context"

// PlayerCache maps normalized player names to player identifiers. One cache
// is built per import run from the persistent registry and mutated in place
// as rows create new players; it is never shared across runs, so no locking.
type PlayerCache struct {
	byKey map[string]string
	keys  []string
}

func NewPlayerCache() *PlayerCache {
	return &PlayerCache{byKey: make(map[string]string)}
}

// Add registers a normalized key. First registration wins; a duplicate key
// is ignored so earlier rows keep their identifier.
func (c *PlayerCache) Add(normalizedKey, playerID string) {
	if _, ok := c.byKey[normalizedKey]; ok {
		return
	}
	c.byKey[normalizedKey] = playerID
	c.keys = append(c.keys, normalizedKey)
}

func (c *PlayerCache) Get(normalizedKey string) (string, bool) {
	id, ok := c.byKey[normalizedKey]
	return id, ok
}

func (c *PlayerCache) Len() int {
	return len(c.byKey)
}

// BestMatch scans every cached key for the highest similarity to the given
// key. Linear in cache size, which is fine for the batch sizes imports see
// (hundreds to low thousands of players).
func (c *PlayerCache) BestMatch(normalizedKey string) (playerID string, score int) {
	best := -1
	for _, k := range c.keys {
		if s := Similarity(normalizedKey, k); s > best {
			best = s
			playerID = c.byKey[k]
		}
	}
	return playerID, best
}

// PlayerCreateFunc persists a brand-new player and returns its identifier.
// The resolver calls it at most once per distinct unresolved name.
type PlayerCreateFunc func(ctx context.Context, rawName, normalizedKey, team string) (string, error)

// PlayerResolver finds or creates the player a row refers to. Resolution
// order: exact normalized-key hit, fuzzy match at or above the threshold,
// then creation. A name resolved once keeps the same identifier for the rest
// of the run.
type PlayerResolver struct {
	cache     *PlayerCache
	create    PlayerCreateFunc
	threshold int
}

func NewPlayerResolver(cache *PlayerCache, threshold int, create PlayerCreateFunc) *PlayerResolver {
	return &PlayerResolver{cache: cache, create: create, threshold: threshold}
}

// Resolve returns the player identifier for the raw name. An empty name
// yields an empty identifier and created=false, meaning the row carries no
// player association.
func (r *PlayerResolver) Resolve(ctx context.Context, rawName, team string) (playerID string, created bool, err error) {
	key := NormalizeName(rawName)
	if key == "" {
		return "", false, nil
	}

	if id, ok := r.cache.Get(key); ok {
		return id, false, nil
	}

	if r.cache.Len() > 0 {
		if id, score := r.cache.BestMatch(key); score >= r.threshold {
			// Close enough to an existing player; alias this spelling to it
			// so later rows hit the exact path.
			r.cache.Add(key, id)
			return id, false, nil
		}
	}

	id, err := r.create(ctx, rawName, key, team)
	if err != nil {
		return "", false, err
	}
	r.cache.Add(key, id)
	return id, true, nil
}

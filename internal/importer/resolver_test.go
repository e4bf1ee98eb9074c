package importer

import (
	"context"
	"fmt"
	"testing"
)

func newCountingCreate(calls *int) PlayerCreateFunc {
	return func(ctx context.Context, rawName, normalizedKey, team string) (string, error) {
		*calls++
		return fmt.Sprintf("player-%d", *calls), nil
	}
}

func TestPlayerResolver_ExactMatch(t *testing.T) {
	cache := NewPlayerCache()
	cache.Add("mike trout", "p1")

	calls := 0
	resolver := NewPlayerResolver(cache, 90, newCountingCreate(&calls))

	id, created, err := resolver.Resolve(context.Background(), "MIKE   TROUT", "Angels")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id != "p1" {
		t.Errorf("Expected p1, got %q", id)
	}
	if created {
		t.Error("Expected created=false for an exact match")
	}
	if calls != 0 {
		t.Errorf("Expected no create call, got %d", calls)
	}
}

func TestPlayerResolver_FuzzyMatch(t *testing.T) {
	cache := NewPlayerCache()
	cache.Add("ronald acuna", "p1")

	calls := 0
	resolver := NewPlayerResolver(cache, 90, newCountingCreate(&calls))

	// Misspelled name should land on the existing player without creating.
	id, created, err := resolver.Resolve(context.Background(), "Ronald Acunna", "Braves")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id != "p1" {
		t.Errorf("Expected fuzzy match to p1, got %q", id)
	}
	if created {
		t.Error("Expected created=false for a fuzzy match")
	}
	if calls != 0 {
		t.Errorf("Expected no create call, got %d", calls)
	}

	// The misspelling is aliased; a second resolve hits the exact path.
	if _, ok := cache.Get("ronald acunna"); !ok {
		t.Error("Expected the misspelled key to be aliased into the cache")
	}
}

func TestPlayerResolver_CreatesBelowThreshold(t *testing.T) {
	cache := NewPlayerCache()
	cache.Add("ronald acuna", "p1")

	calls := 0
	resolver := NewPlayerResolver(cache, 90, newCountingCreate(&calls))

	id, created, err := resolver.Resolve(context.Background(), "Mike Trout", "Angels")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !created {
		t.Error("Expected created=true for an unknown name")
	}
	if calls != 1 {
		t.Errorf("Expected exactly one create call, got %d", calls)
	}

	// Same name again resolves from the cache.
	id2, created2, err := resolver.Resolve(context.Background(), "Mike Trout Jr.", "Angels")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id2 != id || created2 {
		t.Errorf("Expected cached resolution to %q, got %q created=%v", id, id2, created2)
	}
	if calls != 1 {
		t.Errorf("Expected create to stay at 1 call, got %d", calls)
	}
}

func TestPlayerResolver_EmptyName(t *testing.T) {
	calls := 0
	resolver := NewPlayerResolver(NewPlayerCache(), 90, newCountingCreate(&calls))

	id, created, err := resolver.Resolve(context.Background(), "   ", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id != "" || created {
		t.Errorf("Expected empty resolution, got id=%q created=%v", id, created)
	}
	if calls != 0 {
		t.Errorf("Expected no create call, got %d", calls)
	}
}

func TestPlayerCache_FirstRegistrationWins(t *testing.T) {
	cache := NewPlayerCache()
	cache.Add("mike trout", "p1")
	cache.Add("mike trout", "p2")

	if id, _ := cache.Get("mike trout"); id != "p1" {
		t.Errorf("Expected first registration to win, got %q", id)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected cache size 1, got %d", cache.Len())
	}
}

package favorite

import (
	"Recipe-Catalog/domain"
	"context"
	"errors"
	"sync"
)

var errBackendDown = errors.New("quota exceeded")

// flakyStore wraps a MemoryStore and fails reads or writes on demand.
type flakyStore struct {
	*MemoryStore

	mu        sync.Mutex
	failRead  bool
	failWrite bool
	writes    int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: NewMemoryStore()}
}

func (s *flakyStore) Read(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	fail := s.failRead
	s.mu.Unlock()
	if fail {
		return "", false, errBackendDown
	}
	return s.MemoryStore.Read(ctx, key)
}

func (s *flakyStore) Write(ctx context.Context, key, value string) error {
	s.mu.Lock()
	fail := s.failWrite
	s.writes++
	s.mu.Unlock()
	if fail {
		return errBackendDown
	}
	return s.MemoryStore.Write(ctx, key, value)
}

func (s *flakyStore) setFailWrite(fail bool) {
	s.mu.Lock()
	s.failWrite = fail
	s.mu.Unlock()
}

func (s *flakyStore) setFailRead(fail bool) {
	s.mu.Lock()
	s.failRead = fail
	s.mu.Unlock()
}

func (s *flakyStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func testRecipe(id, title string) domain.Recipe {
	return domain.Recipe{
		ID:           id,
		Title:        title,
		Category:     domain.CategoryDesserts,
		Instructions: "Bake for 20 minutes.",
		Ingredients:  []domain.RecipeIngredient{{Name: "Flour", Quantity: "200g"}},
	}
}

func ids(favorites []domain.Favorite) []string {
	out := make([]string, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, f.ID)
	}
	return out
}

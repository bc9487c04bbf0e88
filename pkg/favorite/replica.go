package favorite

import (
	"Recipe-Catalog/domain"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"sync"
	"time"
)

// Replica is one view's in-memory favorites set.
//
// writeMu serializes mutations together with their persistence, so the stored
// value always reflects this view's latest completed mutation. mu guards the
// set itself and is the only lock taken when another view's change arrives.
type Replica struct {
	id         string
	replicator *Replicator
	now        func() time.Time

	writeMu   sync.Mutex
	mu        sync.RWMutex
	favorites []domain.Favorite

	unsubscribe func()
}

func NewReplica(replicator *Replicator) *Replica {
	r := &Replica{
		id:         uuid.NewString(),
		replicator: replicator,
		now:        time.Now,
		favorites:  []domain.Favorite{},
	}
	r.unsubscribe = replicator.Bus().Subscribe(r.onChange)
	return r
}

// ID identifies the view on the change bus.
func (r *Replica) ID() string {
	return r.id
}

// Load restores the persisted set, drops invalid entries and re-persists the
// cleaned set when anything was dropped.
func (r *Replica) Load(ctx context.Context) ([]domain.Favorite, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	loaded, skipped, err := r.replicator.Load(ctx, r.id)
	if err != nil {
		return nil, err
	}

	valid := Validate(loaded)
	r.set(valid)

	if skipped > 0 || len(valid) != len(loaded) {
		if err := r.replicator.Save(ctx, r.id, valid); err != nil {
			log.Warnf("re-persist validated favorites: %v", err)
		}
	}
	return r.Favorites(), nil
}

// Toggle adds recipe to the favorites or removes it when it is already there.
// It returns whether the recipe is a favorite afterwards. When neither backend
// accepts the write the in-memory set is still updated and
// ErrFavoritesNotPersisted is returned.
func (r *Replica) Toggle(ctx context.Context, recipe domain.Recipe) (bool, error) {
	if recipe.ID == "" {
		return false, domain.ErrMissingIdentifier
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	current := r.Favorites()
	updated := make([]domain.Favorite, 0, len(current)+1)
	removed := false
	for _, favorite := range current {
		if favorite.ID == recipe.ID {
			removed = true
			continue
		}
		updated = append(updated, favorite)
	}
	if !removed {
		updated = append(updated, domain.NewFavorite(recipe, r.now().UTC()))
	}

	r.set(updated)
	return !removed, r.replicator.Save(ctx, r.id, updated)
}

// ReactToDeletion drops the favorite for a recipe the caller learned was
// deleted on the server. It reports whether a favorite was removed.
func (r *Replica) ReactToDeletion(ctx context.Context, recipeID string) (bool, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	current := r.Favorites()
	updated := make([]domain.Favorite, 0, len(current))
	for _, favorite := range current {
		if favorite.ID != recipeID {
			updated = append(updated, favorite)
		}
	}
	if len(updated) == len(current) {
		return false, nil
	}

	r.set(updated)
	return true, r.replicator.Save(ctx, r.id, updated)
}

// Favorites returns a copy of the current set.
func (r *Replica) Favorites() []domain.Favorite {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Favorite, len(r.favorites))
	copy(out, r.favorites)
	return out
}

func (r *Replica) IsFavorite(recipeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, favorite := range r.favorites {
		if favorite.ID == recipeID {
			return true
		}
	}
	return false
}

// Close detaches the replica from the change bus.
func (r *Replica) Close() {
	r.unsubscribe()
}

func (r *Replica) set(favorites []domain.Favorite) {
	r.mu.Lock()
	r.favorites = favorites
	r.mu.Unlock()
}

// onChange replaces the whole set with another view's write. Concurrent edits
// are not merged; the last write wins.
func (r *Replica) onChange(event ChangeEvent) {
	if event.Origin == r.id || event.Key != PrimaryKey {
		return
	}

	favorites, _, err := decodeFavorites(event.Value)
	if err != nil {
		log.Errorf("parse favorites from storage change: %v", err)
		return
	}
	r.set(favorites)
}

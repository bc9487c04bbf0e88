package favorite

import (
	"Recipe-Catalog/domain"
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
)

// Replicator persists favorites to a primary and a backup backend. Writes go
// to both; reads prefer the primary and repair it from the backup.
type Replicator struct {
	primary Backend
	backup  Backend
	bus     *Bus
}

func NewReplicator(primary, backup Backend, bus *Bus) *Replicator {
	if bus == nil {
		bus = NewBus()
	}
	return &Replicator{
		primary: primary,
		backup:  backup,
		bus:     bus,
	}
}

func (r *Replicator) Bus() *Bus {
	return r.bus
}

// Save writes the full set to both backends. A primary failure is logged and
// swallowed when the backup write succeeds. ErrFavoritesNotPersisted is
// returned only when neither backend accepted the write.
func (r *Replicator) Save(ctx context.Context, origin string, favorites []domain.Favorite) error {
	value, err := encodeFavorites(favorites)
	if err != nil {
		return err
	}

	primaryErr := r.primary.Write(ctx, PrimaryKey, value)
	if primaryErr != nil {
		log.Warnf("save favorites to primary storage: %v", primaryErr)
	}

	backupErr := r.backup.Write(ctx, BackupKey, value)
	if backupErr != nil {
		log.Warnf("save favorites to backup storage: %v", backupErr)
	}

	if primaryErr != nil && backupErr != nil {
		log.Errorf("favorites not persisted, only the in-memory copy remains")
		return fmt.Errorf("%w: %w", domain.ErrFavoritesNotPersisted, errors.Join(primaryErr, backupErr))
	}

	r.bus.Publish(ChangeEvent{Key: PrimaryKey, Value: value, Origin: origin})
	return nil
}

// Load returns the persisted set together with the number of entries that
// could not be decoded. When the primary has no usable value the backup is
// read and, if present, copied forward into the primary. No value anywhere is
// an empty set, not an error.
func (r *Replicator) Load(ctx context.Context, origin string) ([]domain.Favorite, int, error) {
	if value, ok := r.read(ctx, r.primary, PrimaryKey); ok {
		favorites, skipped, err := decodeFavorites(value)
		if err == nil {
			return favorites, skipped, nil
		}
		log.Warnf("primary favorites are unreadable, trying backup: %v", err)
	}

	value, ok := r.read(ctx, r.backup, BackupKey)
	if !ok {
		return []domain.Favorite{}, 0, nil
	}

	favorites, skipped, err := decodeFavorites(value)
	if err != nil {
		log.Warnf("backup favorites are unreadable, starting empty: %v", err)
		return []domain.Favorite{}, 0, nil
	}

	if err := r.primary.Write(ctx, PrimaryKey, value); err != nil {
		log.Warnf("restore primary favorites from backup: %v", err)
	} else {
		log.Infof("restored primary favorites from backup (%d entries)", len(favorites))
		r.bus.Publish(ChangeEvent{Key: PrimaryKey, Value: value, Origin: origin})
	}
	return favorites, skipped, nil
}

func (r *Replicator) read(ctx context.Context, backend Backend, key string) (string, bool) {
	value, found, err := backend.Read(ctx, key)
	if err != nil {
		log.Warnf("read %s: %v", key, err)
		return "", false
	}
	if !found || value == "" {
		return "", false
	}
	return value, true
}

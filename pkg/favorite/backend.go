// Package favorite keeps a client-local replica of the user's favorite
// recipes. The replica is persisted to a durable primary backend and a
// session-scoped backup backend, and every view sharing a Bus converges on the
// most recently written set.
package favorite

import "context"

const (
	// PrimaryKey holds the favorites set in the durable backend.
	PrimaryKey = "favorites"
	// BackupKey holds the same encoding in the session backend.
	BackupKey = "favorites_backup"
)

// Backend is a key/value persistence mechanism. Read reports found=false with
// a nil error when the key has never been written.
type Backend interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
}

package session

import "context"

// Storage keys for the persisted session pair. Both are always written
// and cleared together; no other keys belong to the session.
const (
	TokenKey = "consultancy_token"
	UserKey  = "consultancy_user"
)

// Backend is the persistent key-value storage behind a Store, scoped
// per user (file) or per profile (redis).
//
// Get reports absence with ok=false rather than an error. Implementations
// must treat unreadable or corrupt storage as absence: the session layer
// degrades to "not authenticated", it never surfaces storage damage.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

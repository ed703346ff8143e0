// Package metadata is the local key/value store behind the console's
// persistent state (the session token).
package metadata

import "context"

// Repository is a string key/value store. Get on a missing key returns
// ("", nil).
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

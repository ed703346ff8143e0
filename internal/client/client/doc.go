// Package client is the transport layer of the admin console.
//
// Client is the REST API contract and HTTPClient its net/http implementation.
// Authenticated calls take the bearer token from a TokenSource and fail with
// common.ErrAuthRequired before touching the network when it is empty.
// Non-2xx responses become *APIError; errors.Is(err, common.ErrUnauthorized)
// matches 401/403 and errors.Is(err, common.ErrNotFound) matches 404.
//
// InitDatabase and RunMigrations bootstrap the local SQLite state file.
package client

// Package storage is the durable key-value area of the client: the place
// where the session token, the user record, the theme preference, the set
// of seen notification ids and per-user profile photos survive restarts.
//
// Two backends implement Store:
//   - SQLiteStore: a single local database file (default).
//   - RedisStore: a shared Redis instance, for several terminals that
//     should observe the same session.
//
// Get returns (nil, nil) for an absent key. Writes are last-write-wins;
// concurrent processes are not coordinated beyond what the backend offers.
package storage

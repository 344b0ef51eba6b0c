// Package cli provides the interactive careercli terminal client.
//
// It wires configuration, the durable key-value area, the API client,
// the session store and the page services into a REPL. Every command
// that opens a page is checked against the route table first; an
// unauthenticated user is sent to /login and a user with the wrong role
// is sent home.
//
// Background work: the notification aggregator polls its sources on an
// interval. The theme follows the terminal color scheme reported through
// "theme system" until the user toggles it. A session reset (logout or a
// rejected credential) clears the chat and the polled notification data.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package api is the HTTP client of the EthioCareer REST API.
//
// # Overview
//
// Client wraps net/http with the behavior every call shares:
//  1. The bearer credential of the current session is attached as an
//     Authorization header, and every request gets a fresh X-Request-ID.
//  2. Outbound calls go through a token-bucket rate limiter shared by the
//     notification poller and user commands.
//  3. Non-2xx responses become *Error values carrying the server message;
//     Error unwraps to the sentinels of package common, so callers match
//     with errors.Is. Transport failures wrap common.ErrUnavailable.
//  4. Any 401, and any attempt to send a JWT whose exp has passed, invokes
//     the unauthorized handler (the session store's global sign-out).
//
// AIChat is a separate, unauthenticated client for the text-generation
// endpoint used as the chat fallback.
package api

package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound request for server-side tracing.
const RequestIDHeaderName = "X-Request-ID"

// StorageKeyPrefix namespaces every durable storage key.
const StorageKeyPrefix = "jp_"

// WipeByteArray overwrites the contents of b with zeros. Used for
// passwords read from the terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

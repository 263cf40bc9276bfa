package cpace

import "errors"

// Setup errors.
var (
	// ErrIdentifierTooLong means an identifier exceeds the capacity of its one-byte length prefix.
	ErrIdentifierTooLong = errors.New("identifier longer than 255 bytes")

	// ErrRandomSource means the secure random source failed. It wraps the underlying read error.
	ErrRandomSource = errors.New("secure random source unavailable")
)

// Errors resulting from invalid peer data.
var (
	// ErrInvalidMessageLength means a received packet is not exactly its fixed size.
	ErrInvalidMessageLength = errors.New("invalid message length")

	// ErrInvalidPublicKey means a received public element is not a canonical non-identity
	// group element encoding.
	ErrInvalidPublicKey = errors.New("invalid peer public element")
)

// Other errors.
var ErrStateConsumed = errors.New("state already consumed by a previous Finish")

package hawk

import "github.com/google/uuid"

// Lookup resolves a Hawk id to its Credentials record. Implementations
// must be side-effect-free and referentially transparent within a
// reasonable window — the receiver may invoke it more than once per
// request in tests, exactly once in production.
type Lookup interface {
	Find(id string) (Credentials, error)
}

// LookupFunc adapts a function to the Lookup interface, mirroring the
// Python source's plain callable credentials_map.
type LookupFunc func(id string) (Credentials, error)

// Find implements Lookup.
func (f LookupFunc) Find(id string) (Credentials, error) { return f(id) }

// SeenNonce is the replay-defense collaborator: it reports whether
// (id, nonce, ts) has already been processed. Concurrent calls with
// identical arguments must return "first caller sees false, subsequent
// callers see true" — the library relies on the caller's store to
// enforce that atomicity; it does not own the store's lifecycle.
type SeenNonce interface {
	Seen(id, nonce string, ts int64) bool
}

// SeenNonceFunc adapts a function to the SeenNonce interface.
type SeenNonceFunc func(id, nonce string, ts int64) bool

// Seen implements SeenNonce.
func (f SeenNonceFunc) Seen(id, nonce string, ts int64) bool { return f(id, nonce, ts) }

// NewNonce mints a fresh nonce for a Resource that was not given an
// explicit one. It uses a UUIDv4 rather than the teacher's
// hand-rolled, unsafe-pointer-cast alphabet generator, since a UUID's
// randomness source is already audited and the value never needs a
// fixed length for wire compatibility.
func NewNonce() string {
	return uuid.NewString()
}

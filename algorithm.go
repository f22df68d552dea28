package hawk

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm is one of the MAC primitives Hawk supports. Algorithm
// agility beyond these two is explicitly out of scope.
type Algorithm int

const (
	// SHA256 selects HMAC-SHA256.
	SHA256 Algorithm = iota
	// SHA512 selects HMAC-SHA512.
	SHA512
)

// String returns the wire name used in credentials records ("sha256"
// or "sha512").
func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

// New returns the hash.Hash constructor for the algorithm.
func (a Algorithm) New() func() hash.Hash {
	switch a {
	case SHA512:
		return sha512.New
	default:
		return sha256.New
	}
}

// ParseAlgorithm maps a wire name to an Algorithm. An unrecognized
// name is reported via ok=false so the caller can raise
// InvalidCredentials.
func ParseAlgorithm(name string) (a Algorithm, ok bool) {
	switch name {
	case "sha256":
		return SHA256, true
	case "sha512":
		return SHA512, true
	default:
		return 0, false
	}
}

// Credentials is the immutable shared-secret record a sender and
// receiver must agree on out of band. All three fields are required;
// ID must not contain the bewit/wire delimiter backslash.
type Credentials struct {
	ID        string
	Key       []byte
	Algorithm Algorithm
}

// validate checks the shape invariants from the data model: all three
// fields present and a supported algorithm. The backslash restriction
// on the id is not checked here; IssueBewitFromResource rejects such an
// id when issuing a bewit.
func (c Credentials) validate() error {
	if c.ID == "" {
		return NewError(InvalidCredentials, "missing id")
	}
	if len(c.Key) == 0 {
		return NewError(InvalidCredentials, "missing key")
	}
	if c.Algorithm != SHA256 && c.Algorithm != SHA512 {
		return NewError(InvalidCredentials, "unsupported algorithm")
	}
	return nil
}

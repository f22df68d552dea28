package hawk

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the terminal Hawk failure outcomes. Every
// Kind maps to exactly one of the conditions described by the Hawk
// protocol: a malformed credentials record, a header that fails to
// parse, a MAC or payload hash that does not verify, a replayed
// nonce, an expired timestamp, or an invalid bewit.
type Kind int

const (
	// InvalidCredentials means a Credentials record is missing a
	// required field or otherwise malformed.
	InvalidCredentials Kind = iota
	// CredentialsLookupError means the caller-supplied Lookup could
	// not find credentials for the id in the header.
	CredentialsLookupError
	// MissingAuthorization means the receiver was invoked with no
	// Authorization header at all.
	MissingAuthorization
	// BadHeaderValue means a header failed to parse: bad charset,
	// oversized, duplicate key, or unknown key.
	BadHeaderValue
	// MacMismatch means the locally computed MAC does not match the
	// MAC carried by the header or bewit.
	MacMismatch
	// MisComputedContentHash means the locally computed payload hash
	// does not match the hash carried by the header.
	MisComputedContentHash
	// TokenExpired means the timestamp fell outside the permitted
	// skew window, or a bewit's expiration has passed.
	TokenExpired
	// AlreadyProcessed means the nonce predicate reported this
	// (id, nonce, ts) triple as already seen.
	AlreadyProcessed
	// MissingContent means content was omitted where a payload hash
	// is required: a sender given OmitContent() with always-hash-content
	// on, or a request header without a hash parameter on a receiver
	// that does not accept untrusted content.
	MissingContent
	// InvalidBewit means a bewit failed to decode or did not have
	// the expected four backslash-separated fields.
	InvalidBewit
)

func (k Kind) String() string {
	switch k {
	case InvalidCredentials:
		return "InvalidCredentials"
	case CredentialsLookupError:
		return "CredentialsLookupError"
	case MissingAuthorization:
		return "MissingAuthorization"
	case BadHeaderValue:
		return "BadHeaderValue"
	case MacMismatch:
		return "MacMismatch"
	case MisComputedContentHash:
		return "MisComputedContentHash"
	case TokenExpired:
		return "TokenExpired"
	case AlreadyProcessed:
		return "AlreadyProcessed"
	case MissingContent:
		return "MissingContent"
	case InvalidBewit:
		return "InvalidBewit"
	default:
		return "Unknown"
	}
}

// Error is the single tagged-sum type every failure this package
// raises is reported as. It never carries the shared secret key or a
// computed MAC; callers are responsible for mapping it to a public
// response rather than exposing Error() to a remote party verbatim.
type Error struct {
	Kind Kind
	Msg  string

	// LocaltimeInSeconds and WWWAuthenticate are populated only for
	// Kind == TokenExpired, mirroring the timestamp-expiry challenge
	// described by the Hawk protocol.
	LocaltimeInSeconds int64
	WWWAuthenticate    string

	cause error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes an internal cause (for example, the error returned by
// a Lookup callback) for callers that explicitly opt in via
// errors.Unwrap/errors.As. The cause is never included in Error().
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is a *Error with the same Kind, so that
// callers can write errors.Is(err, hawk.NewError(hawk.MacMismatch, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError constructs an *Error of the given Kind.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// wrapError constructs an *Error of the given Kind, attaching cause as
// an unexported, opt-in-only wrapped error via github.com/pkg/errors so
// a stack trace survives for local debugging without ever surfacing in
// Error()'s message.
func wrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, cause: errors.WithStack(cause)}
}

// expiredError builds a TokenExpired *Error carrying the fields a
// receiver or sender needs to let the caller compute a clock offset.
func expiredError(msg string, localtime int64, wwwAuthenticate string) *Error {
	return &Error{
		Kind:               TokenExpired,
		Msg:                msg,
		LocaltimeInSeconds: localtime,
		WWWAuthenticate:    wwwAuthenticate,
	}
}

// Convenience sentinels for errors.Is comparisons against a Kind
// without needing to build a full *Error value.
var (
	ErrInvalidCredentials     = NewError(InvalidCredentials, "")
	ErrCredentialsLookupError = NewError(CredentialsLookupError, "")
	ErrMissingAuthorization   = NewError(MissingAuthorization, "")
	ErrBadHeaderValue         = NewError(BadHeaderValue, "")
	ErrMacMismatch            = NewError(MacMismatch, "")
	ErrMisComputedContentHash = NewError(MisComputedContentHash, "")
	ErrTokenExpired           = NewError(TokenExpired, "")
	ErrAlreadyProcessed       = NewError(AlreadyProcessed, "")
	ErrMissingContent         = NewError(MissingContent, "")
	ErrInvalidBewit           = NewError(InvalidBewit, "")
)

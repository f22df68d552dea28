package hawk

import (
	"go.uber.org/zap"
)

// ReceiverState names a point in the Receiver state machine:
// INIT -> PARSED -> CREDENTIALS_LOOKED_UP -> VERIFIED -> RESPONDED.
type ReceiverState int

const (
	ReceiverInit ReceiverState = iota
	ReceiverParsed
	ReceiverCredentialsLookedUp
	ReceiverVerified
	ReceiverResponded
)

// DefaultTimestampSkew is the tolerated clock difference between
// sender and receiver.
const DefaultTimestampSkew = 60 // seconds

// ReceiverOption customizes a Receiver beyond its required constructor
// arguments.
type ReceiverOption func(*Receiver)

// WithTimestampSkew overrides the default 60s skew tolerance.
func WithTimestampSkew(seconds int64) ReceiverOption {
	return func(r *Receiver) { r.skew = seconds }
}

// WithLocaltimeOffset adjusts "now" by the given number of seconds
// before comparing against the received timestamp, letting a receiver
// compensate for a known clock drift.
func WithLocaltimeOffset(seconds int64) ReceiverOption {
	return func(r *Receiver) { r.offset = seconds }
}

// WithAcceptUntrustedContent allows a request whose header carries no
// hash parameter to be accepted without payload verification.
func WithAcceptUntrustedContent(accept bool) ReceiverOption {
	return func(r *Receiver) { r.acceptUntrustedContent = accept }
}

// WithReceiverLogger attaches a zap logger for optional canonical
// string tracing.
func WithReceiverLogger(l *zap.Logger) ReceiverOption {
	return func(r *Receiver) { r.log = newDebugLogger(l) }
}

// Receiver drives the server half of the Hawk protocol: parsing and
// validating an incoming Authorization header, and rendering the
// Server-Authorization response.
type Receiver struct {
	state ReceiverState

	lookup    Lookup
	seenNonce SeenNonce

	skew                   int64
	offset                 int64
	acceptUntrustedContent bool
	log                    debugLogger

	params   authParams
	creds    Credentials
	resource Resource
}

// NewReceiver parses authHeader, looks up credentials, and runs the
// full ordered verification (timestamp -> MAC -> payload hash ->
// nonce) before returning. A non-nil error means the receiver never
// reached VERIFIED; the specific Kind tells the caller which check
// failed first.
func NewReceiver(
	lookup Lookup,
	seenNonce SeenNonce,
	authHeader, rawURL, method string,
	content Content,
	opts ...ReceiverOption,
) (*Receiver, error) {
	r := &Receiver{
		lookup:    lookup,
		seenNonce: seenNonce,
		skew:      DefaultTimestampSkew,
		log:       newDebugLogger(nil),
	}
	for _, opt := range opts {
		opt(r)
	}

	if authHeader == "" {
		return nil, NewError(MissingAuthorization, "no Authorization header")
	}

	params, err := parseAuthHeader(authHeader)
	if err != nil {
		return nil, err
	}
	r.params = params
	r.state = ReceiverParsed

	creds, err := r.lookup.Find(params.id)
	if err != nil {
		return nil, wrapError(CredentialsLookupError, "credentials lookup failed", err)
	}
	if err := creds.validate(); err != nil {
		return nil, err
	}
	r.creds = creds
	r.state = ReceiverCredentialsLookedUp

	ts, err := parseTimestamp(params.ts)
	if err != nil {
		return nil, NewError(BadHeaderValue, "invalid ts parameter")
	}

	resource, err := NewResource(method, rawURL, creds,
		WithTimestamp(ts), WithNonce(params.nonce), WithExt(params.ext), WithApp(params.app), WithDlg(params.dlg))
	if err != nil {
		return nil, err
	}

	// 1. timestamp skew check.
	now := nowFunc().Unix() + r.offset
	if diff := now - ts; diff > r.skew || diff < -r.skew {
		tsm := computeMAC(creds, normalizeTimestamp(now))
		return nil, expiredError(
			"timestamp outside permitted skew",
			now,
			renderChallenge(now, tsm, "Stale timestamp"),
		)
	}

	// 2. MAC verification.
	if params.hash != "" {
		resource.ContentHash = PresentHash(params.hash)
	}
	canonical := normalizeHeader(resource)
	r.log.canonical("header", canonical)
	if !verifyMAC(creds, canonical, params.mac) {
		return nil, NewError(MacMismatch, "request MAC did not verify")
	}

	// 3. payload hash verification.
	headerHash := OmittedHash()
	if params.hash != "" {
		headerHash = PresentHash(params.hash)
	}
	if err := verifyContentHash(creds.Algorithm, headerHash, content, r.acceptUntrustedContent); err != nil {
		return nil, err
	}

	// 4. nonce check, deliberately last so an otherwise-invalid
	// request never burns a nonce-store entry.
	if r.seenNonce.Seen(params.id, params.nonce, ts) {
		return nil, NewError(AlreadyProcessed, "nonce already processed")
	}

	resource.ContentHash = headerHash
	r.resource = resource
	r.state = ReceiverVerified
	return r, nil
}

// Respond renders a Server-Authorization header for the given response
// body, reusing the verified request's ts and nonce.
func (r *Receiver) Respond(content Content, ext string) (string, error) {
	resp := r.resource
	resp.Ext = ext

	hash, err := resolveContentHash(r.creds.Algorithm, content, false)
	if err != nil {
		return "", err
	}
	resp.ContentHash = hash

	canonical := normalizeResponse(resp)
	r.log.canonical("response", canonical)
	mac := computeMAC(r.creds, canonical)

	r.state = ReceiverResponded
	return renderResponseHeader(mac, hash, ext), nil
}

// Credentials returns the credentials resolved for this request.
func (r *Receiver) Credentials() Credentials {
	return r.creds
}

// Resource exposes the verified Resource.
func (r *Receiver) Resource() Resource {
	return r.resource
}

// State reports the receiver's current state-machine position.
func (r *Receiver) State() ReceiverState {
	return r.state
}

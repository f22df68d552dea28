package hawk

import "go.uber.org/zap"

// SenderState names a point in the Sender state machine:
// INIT -> ISSUED -> AWAITING_RESPONSE -> ACCEPTED | REJECTED.
type SenderState int

const (
	SenderInit SenderState = iota
	SenderIssued
	SenderAwaitingResponse
	SenderAccepted
	SenderRejected
)

// SenderOption customizes a Sender beyond its required constructor
// arguments.
type SenderOption func(*Sender)

// WithSenderContent supplies the request payload the sender binds
// into the MAC. Omit this option (or pass OmitContent()) to skip
// payload hashing, subject to WithAlwaysHashContent.
func WithSenderContent(c Content) SenderOption {
	return func(s *Sender) { s.content = c }
}

// WithAlwaysHashContent controls whether omitting content is an error
// (the default, true) or silently skips the hash parameter (false).
func WithAlwaysHashContent(always bool) SenderOption {
	return func(s *Sender) { s.alwaysHashContent = always }
}

// WithSenderResourceOptions forwards options to the underlying
// NewResource call (timestamp, nonce, ext, app, dlg).
func WithSenderResourceOptions(opts ...ResourceOption) SenderOption {
	return func(s *Sender) { s.resourceOpts = append(s.resourceOpts, opts...) }
}

// WithSenderLogger attaches a zap logger for optional canonical-string
// tracing.
func WithSenderLogger(l *zap.Logger) SenderOption {
	return func(s *Sender) { s.log = newDebugLogger(l) }
}

// Sender drives the client half of the Hawk protocol: issuing a
// request's Authorization header and later verifying the server's
// Server-Authorization response.
type Sender struct {
	state SenderState

	creds  Credentials
	method string
	rawURL string

	content           Content
	alwaysHashContent bool
	resourceOpts      []ResourceOption
	log               debugLogger

	resource Resource
	header   string

	serverTS int64 // set after a TokenExpired tsm is verified
}

// NewSender builds a Sender and immediately issues its request header
// (INIT -> ISSUED), mirroring the teacher's eager
// Create+Validate+Finalize pipeline in Client.NewRequest.
func NewSender(creds Credentials, rawURL, method string, opts ...SenderOption) (*Sender, error) {
	s := &Sender{
		creds:             creds,
		method:            method,
		rawURL:            rawURL,
		content:           OmitContent(),
		alwaysHashContent: true,
		log:               newDebugLogger(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.send(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sender) send() error {
	resource, err := NewResource(s.method, s.rawURL, s.creds, s.resourceOpts...)
	if err != nil {
		return err
	}

	hash, err := resolveContentHash(s.creds.Algorithm, s.content, s.alwaysHashContent)
	if err != nil {
		return err
	}
	resource.ContentHash = hash

	canonical := normalizeHeader(resource)
	s.log.canonical("header", canonical)
	mac := computeMAC(s.creds, canonical)

	s.resource = resource
	s.header = renderRequestHeader(s.creds.ID, resource, mac)
	s.state = SenderIssued
	return nil
}

// RequestHeader returns the Authorization header value to send with
// the request. It is only valid once the Sender has been constructed
// successfully.
func (s *Sender) RequestHeader() string {
	return s.header
}

// Resource exposes the Resource the sender built, for callers that
// need the resolved scheme/host/port/nonce/timestamp.
func (s *Sender) Resource() Resource {
	return s.resource
}

// AcceptResponse verifies a Server-Authorization header received from
// the server (AWAITING_RESPONSE -> ACCEPTED | REJECTED). It recomputes
// the response MAC using the original request's method/path/host/port/
// ts/nonce, but the server-provided mac/ext/hash.
func (s *Sender) AcceptResponse(header string, body []byte, contentType string) error {
	s.state = SenderAwaitingResponse

	params, err := parseAuthHeader(header)
	if err != nil {
		s.state = SenderRejected
		return err
	}

	if params.tsm != "" {
		if err := s.acceptExpiryChallenge(params); err != nil {
			s.state = SenderRejected
			return err
		}
	}

	resp := s.resource
	resp.Ext = params.ext
	if params.hash != "" {
		resp.ContentHash = PresentHash(params.hash)
	} else {
		resp.ContentHash = OmittedHash()
	}

	canonical := normalizeResponse(resp)
	s.log.canonical("response", canonical)
	if !verifyMAC(s.creds, canonical, params.mac) {
		s.state = SenderRejected
		return NewError(MacMismatch, "response MAC did not verify")
	}

	if params.hash != "" {
		content := WithContent(contentType, body)
		if err := verifyContentHash(s.creds.Algorithm, PresentHash(params.hash), content, false); err != nil {
			s.state = SenderRejected
			return err
		}
	}

	s.state = SenderAccepted
	return nil
}

// acceptExpiryChallenge verifies a WWW-Authenticate-style tsm carried
// on a 401 response: the server's ts HMAC'd under the shared
// credentials. On success the server's ts is exposed via ServerTime so
// the caller can compute a local clock offset. An expired response
// with an invalid tsm is a normal MacMismatch, not a distinct outcome.
func (s *Sender) acceptExpiryChallenge(params authParams) error {
	ts, err := parseTimestamp(params.ts)
	if err != nil {
		return NewError(MacMismatch, "invalid server timestamp")
	}
	canonical := normalizeTimestamp(ts)
	if !verifyMAC(s.creds, canonical, params.tsm) {
		return NewError(MacMismatch, "tsm did not verify")
	}
	s.serverTS = ts
	return nil
}

// ServerTime returns the server's timestamp from the most recently
// accepted expiry challenge, or zero if none was seen.
func (s *Sender) ServerTime() int64 {
	return s.serverTS
}

// State reports the sender's current state-machine position.
func (s *Sender) State() SenderState {
	return s.state
}

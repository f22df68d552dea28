package hawk

import (
	"net/url"
	"strings"
)

// Resource bundles everything the Normalizer and MAC engine need to
// compute or verify a request, response, or bewit MAC. It is a value
// type: the Sender and Receiver set ContentHash (and, for a response,
// Ext) on their own copies after NewResource returns.
type Resource struct {
	Method       string
	Scheme       string
	Host         string
	Port         string
	PathAndQuery string

	Timestamp int64
	Nonce     string
	Ext       string
	App       string
	Dlg       string

	ContentHash ContentHash
	Credentials Credentials

	nonceSet bool
}

// ResourceOption customizes NewResource beyond its required
// arguments.
type ResourceOption func(*Resource)

// WithTimestamp sets an explicit Unix-seconds timestamp instead of the
// current time.
func WithTimestamp(ts int64) ResourceOption {
	return func(r *Resource) { r.Timestamp = ts }
}

// WithNonce sets an explicit nonce instead of one freshly generated.
// Passing "" explicitly suppresses nonce generation entirely — the
// bewit case requires an empty nonce rather than a minted one.
func WithNonce(nonce string) ResourceOption {
	return func(r *Resource) {
		r.Nonce = nonce
		r.nonceSet = true
	}
}

// WithExt attaches opaque application data to the resource.
func WithExt(ext string) ResourceOption {
	return func(r *Resource) { r.Ext = ext }
}

// WithApp attaches a delegated application id.
func WithApp(app string) ResourceOption {
	return func(r *Resource) { r.App = app }
}

// WithDlg attaches a delegation id.
func WithDlg(dlg string) ResourceOption {
	return func(r *Resource) { r.Dlg = dlg }
}

// NewResource validates creds and rawURL, and assembles the
// method/scheme/host/port/path+query parts per RFC 3986, defaulting
// the port to the scheme default (80 for http, 443 for https) when the
// URL does not carry an explicit one.
func NewResource(method, rawURL string, creds Credentials, opts ...ResourceOption) (Resource, error) {
	if err := creds.validate(); err != nil {
		return Resource{}, err
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return Resource{}, NewError(BadHeaderValue, "method must not be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Resource{}, NewError(BadHeaderValue, "invalid URL: "+err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Resource{}, NewError(BadHeaderValue, "unsupported scheme: "+u.Scheme)
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = defaultPort(u.Scheme)
	}

	pathAndQuery := u.EscapedPath()
	if pathAndQuery == "" {
		pathAndQuery = "/"
	}
	if u.RawQuery != "" {
		pathAndQuery += "?" + u.RawQuery
	}

	r := Resource{
		Method:       strings.ToUpper(method),
		Scheme:       u.Scheme,
		Host:         host,
		Port:         port,
		PathAndQuery: pathAndQuery,
		Credentials:  creds,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.Timestamp == 0 {
		r.Timestamp = nowFunc().Unix()
	}
	if !r.nonceSet {
		r.Nonce = NewNonce()
	}
	return r, nil
}

func defaultPort(scheme string) string {
	if scheme == "https" {
		return "443"
	}
	return "80"
}

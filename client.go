package hawk

import (
	"bytes"
	"io"
	"net/http"
)

// Client is a thin convenience wrapper that builds *http.Request
// values carrying a Hawk Authorization header, the way the teacher's
// Client/NewRequest pairing did, generalized to the full Sender state
// machine instead of a single Hawk struct.
type Client struct {
	Credentials Credentials
	Options     []SenderOption
}

// NewClient returns a Client bound to the given credentials.
func NewClient(creds Credentials, opts ...SenderOption) *Client {
	return &Client{Credentials: creds, Options: opts}
}

// NewRequest builds an *http.Request for method/url carrying a body
// (optional) and contentType, with a Hawk Authorization header
// computed over the body.
func (c *Client) NewRequest(method, url string, body io.Reader, contentType, ext string) (*http.Request, error) {
	var buf []byte
	if body != nil {
		var err error
		buf, err = io.ReadAll(body)
		if err != nil {
			return nil, err
		}
	}

	opts := append([]SenderOption{}, c.Options...)
	opts = append(opts,
		WithSenderContent(WithContent(contentType, buf)),
		WithSenderResourceOptions(WithExt(ext)),
	)
	sender, err := NewSender(c.Credentials, url, method, opts...)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", sender.RequestHeader())
	return req, nil
}

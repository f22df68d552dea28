// Package hawk implements Hawk-style HTTP request authentication: a
// symmetric-key MAC protocol that authenticates requests and
// responses, optionally binds them to a payload, and resists replay
// through nonces and timestamps. It also supports bewits, URL-embedded
// capability tokens for single-URL delegated GET access.
//
// A client signs a request with a Sender and attaches the resulting
// header:
//
//	creds := hawk.Credentials{ID: "dh37fgj492je", Key: []byte("secret"), Algorithm: hawk.SHA256}
//	sender, err := hawk.NewSender(creds, "https://example.com/resource", "POST",
//	    hawk.WithSenderContent(hawk.WithContent("text/plain", []byte("hello"))))
//	req.Header.Set("Authorization", sender.RequestHeader())
//
// A server validates the header with a Receiver:
//
//	recv, err := hawk.NewReceiver(lookup, seenNonce, req.Header.Get("Authorization"),
//	    req.URL.String(), req.Method, hawk.WithContent(contentType, body))
//	serverAuth, err := recv.Respond(hawk.WithContent("application/json", respBody), "")
//
// See IssueBewit/StripBewit/ParseBewit/ValidateBewit for the
// URL-embedded capability token flow.
package hawk

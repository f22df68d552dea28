package hawk

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Bewit is a single-URL capability token: a GET to the URL it was
// issued for is authenticated until Expiration.
type Bewit struct {
	ID         string
	Expiration int64
	MAC        string
	Ext        string
}

// IssueBewit computes a Bewit for a GET to rawURL, valid until
// expiration (Unix seconds).
func IssueBewit(creds Credentials, rawURL string, expiration int64, ext string) (string, error) {
	resource, err := NewResource("GET", rawURL, creds,
		WithTimestamp(expiration), WithNonce(""), WithExt(ext))
	if err != nil {
		return "", err
	}
	return IssueBewitFromResource(resource)
}

// IssueBewitFromResource computes a Bewit from an already-built
// Resource, checking the issuance preconditions from spec.md §4.8:
// method must be GET and nonce must be empty. Both are preconditions,
// not security errors, so violating them returns a plain error rather
// than a *Error.
func IssueBewitFromResource(resource Resource) (string, error) {
	if resource.Method != "GET" {
		return "", errPreconditionMethod
	}
	if resource.Nonce != "" {
		return "", errPreconditionNonce
	}
	if err := resource.Credentials.validate(); err != nil {
		return "", err
	}
	if strings.Contains(resource.Credentials.ID, `\`) {
		return "", NewError(BadHeaderValue, `credentials id must not contain \`)
	}
	if strings.Contains(resource.Ext, `\`) {
		return "", NewError(BadHeaderValue, `ext must not contain \`)
	}

	canonical := normalizeBewit(resource)
	mac := computeMAC(resource.Credentials, canonical)

	raw := strings.Join([]string{resource.Credentials.ID, strconv.FormatInt(resource.Timestamp, 10), mac, resource.Ext}, `\`)
	return base64.URLEncoding.EncodeToString([]byte(raw)), nil
}

var (
	errPreconditionMethod = errors.New("bewit issuance requires method GET")
	errPreconditionNonce  = errors.New("bewit issuance requires an empty nonce")
)

// StripBewit extracts the bewit query parameter from rawURL and
// returns it alongside the URL with that parameter (and its
// surrounding '&'/'?') removed, leaving the exact URL that was
// authenticated. A URL without a bewit parameter is InvalidBewit.
func StripBewit(rawURL string) (rawBewit string, strippedURL string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", NewError(InvalidBewit, "invalid URL")
	}
	var kept []string
	for _, part := range strings.Split(u.RawQuery, "&") {
		if v, ok := strings.CutPrefix(part, "bewit="); ok {
			if rawBewit == "" {
				rawBewit, _ = url.QueryUnescape(v)
			}
			continue
		}
		kept = append(kept, part)
	}
	if rawBewit == "" {
		return "", "", NewError(InvalidBewit, "URL has no bewit parameter")
	}
	u.RawQuery = strings.Join(kept, "&")
	return rawBewit, u.String(), nil
}

// ParseBewit decodes a base64url bewit into its four fields.
func ParseBewit(rawBewit string) (Bewit, error) {
	decoded, err := base64.URLEncoding.DecodeString(rawBewit)
	if err != nil {
		return Bewit{}, NewError(InvalidBewit, "bewit is not valid base64url")
	}
	parts := strings.Split(string(decoded), `\`)
	if len(parts) != 4 {
		return Bewit{}, NewError(InvalidBewit, "bewit does not have four fields")
	}
	if strings.Contains(parts[3], `\`) {
		return Bewit{}, NewError(InvalidBewit, `ext must not contain \`)
	}
	expiration, err := parseTimestamp(parts[1])
	if err != nil {
		return Bewit{}, NewError(InvalidBewit, "invalid expiration")
	}
	return Bewit{ID: parts[0], Expiration: expiration, MAC: parts[2], Ext: parts[3]}, nil
}

// ValidateBewit looks up credentials for bewit.ID, reconstructs the
// bewit pre-MAC for strippedURL, and verifies the MAC and expiration.
func ValidateBewit(lookup Lookup, bewit Bewit, strippedURL string) error {
	creds, err := lookup.Find(bewit.ID)
	if err != nil {
		return wrapError(CredentialsLookupError, "credentials lookup failed", err)
	}
	if err := creds.validate(); err != nil {
		return err
	}

	if nowFunc().Unix() > bewit.Expiration {
		return NewError(TokenExpired, "bewit has expired")
	}

	resource, err := NewResource("GET", strippedURL, creds,
		WithTimestamp(bewit.Expiration), WithNonce(""), WithExt(bewit.Ext))
	if err != nil {
		return err
	}

	canonical := normalizeBewit(resource)
	if !verifyMAC(creds, canonical, bewit.MAC) {
		return NewError(MacMismatch, "bewit MAC did not verify")
	}
	return nil
}

package hawk

import (
	"strconv"
	"strings"
)

// MaxHeaderSize is the hard limit on a complete Authorization header,
// per spec.md §4.3/§6.
const MaxHeaderSize = 4096

// parseTimestamp parses the decimal-seconds ts parameter carried in a
// header or challenge.
func parseTimestamp(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

const hawkScheme = "Hawk"

// authParams holds the ordered, de-duplicated parameters parsed out of
// a Hawk Authorization/Server-Authorization/WWW-Authenticate header.
type authParams struct {
	id, ts, nonce, ext, mac, hash, app, dlg, tsm, errorMsg string
	has                                                    map[string]bool
}

var knownHeaderKeys = map[string]bool{
	"id": true, "ts": true, "nonce": true, "ext": true, "mac": true,
	"hash": true, "app": true, "dlg": true, "tsm": true, "error": true,
}

// isPermittedValueByte reports whether b may appear inside a Hawk
// parameter value: printable ASCII 0x20..0x7E excluding '"' and '\'.
func isPermittedValueByte(b byte) bool {
	if b < 0x20 || b > 0x7E {
		return false
	}
	if b == '"' || b == '\\' {
		return false
	}
	return true
}

// validateValueCharset checks every byte of s against the permitted
// class, raising BadHeaderValue on the first violation.
func validateValueCharset(s string) error {
	for i := 0; i < len(s); i++ {
		if !isPermittedValueByte(s[i]) {
			return NewError(BadHeaderValue, "value contains a disallowed byte")
		}
	}
	return nil
}

// parseAuthHeader hand-parses a Hawk Authorization-style header. It
// enforces the size limit before doing any further work so a
// pathological input cannot cause unbounded parsing cost, rejects
// duplicate or unknown keys, and enforces the value charset on every
// parameter.
func parseAuthHeader(header string) (authParams, error) {
	if len(header) > MaxHeaderSize {
		return authParams{}, NewError(BadHeaderValue, "header exceeds maximum size")
	}

	scheme, rest, ok := cutScheme(header)
	if !ok {
		return authParams{}, NewError(MissingAuthorization, "not a Hawk authorization header")
	}
	if scheme != hawkScheme {
		return authParams{}, NewError(MissingAuthorization, "unsupported authorization scheme: "+scheme)
	}

	p := authParams{has: make(map[string]bool)}
	for _, field := range splitParams(rest) {
		key, value, err := parseParam(field)
		if err != nil {
			return authParams{}, err
		}
		if !knownHeaderKeys[key] {
			return authParams{}, NewError(BadHeaderValue, "unknown parameter: "+key)
		}
		if p.has[key] {
			return authParams{}, NewError(BadHeaderValue, "duplicate parameter: "+key)
		}
		p.has[key] = true
		if err := validateValueCharset(value); err != nil {
			return authParams{}, err
		}
		switch key {
		case "id":
			p.id = value
		case "ts":
			p.ts = value
		case "nonce":
			p.nonce = value
		case "ext":
			p.ext = value
		case "mac":
			p.mac = value
		case "hash":
			p.hash = value
		case "app":
			p.app = value
		case "dlg":
			p.dlg = value
		case "tsm":
			p.tsm = value
		case "error":
			p.errorMsg = value
		}
	}
	return p, nil
}

// cutScheme splits "Hawk id=...," into ("Hawk", `id=...,`, true). A
// header with no scheme token is reported as ok=false.
func cutScheme(header string) (scheme, rest string, ok bool) {
	header = strings.TrimSpace(header)
	i := strings.IndexByte(header, ' ')
	if i < 0 {
		return "", "", false
	}
	return header[:i], strings.TrimSpace(header[i+1:]), true
}

// splitParams splits the comma-separated parameter list, tolerating
// optional whitespace after each comma.
func splitParams(rest string) []string {
	var fields []string
	for _, f := range strings.Split(rest, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// parseParam parses a single key="value" field.
func parseParam(field string) (key, value string, err error) {
	eq := strings.IndexByte(field, '=')
	if eq < 0 {
		return "", "", NewError(BadHeaderValue, "malformed parameter: "+field)
	}
	key = strings.TrimSpace(field[:eq])
	rawValue := strings.TrimSpace(field[eq+1:])
	if len(rawValue) < 2 || rawValue[0] != '"' || rawValue[len(rawValue)-1] != '"' {
		return "", "", NewError(BadHeaderValue, "malformed value for parameter: "+key)
	}
	return key, rawValue[1 : len(rawValue)-1], nil
}

// renderRequestHeader renders the Authorization header a sender emits,
// in the fixed parameter order from spec.md §6.
func renderRequestHeader(id string, r Resource, mac string) string {
	var b strings.Builder
	b.WriteString(hawkScheme)
	b.WriteString(` id="`)
	b.WriteString(id)
	b.WriteString(`", ts="`)
	b.WriteString(strconv.FormatInt(r.Timestamp, 10))
	b.WriteString(`", nonce="`)
	b.WriteString(r.Nonce)
	b.WriteByte('"')
	if r.Ext != "" {
		b.WriteString(`, ext="`)
		b.WriteString(r.Ext)
		b.WriteByte('"')
	}
	b.WriteString(`, mac="`)
	b.WriteString(mac)
	b.WriteByte('"')
	if !r.ContentHash.IsOmitted() {
		b.WriteString(`, hash="`)
		b.WriteString(r.ContentHash.Value())
		b.WriteByte('"')
	}
	if r.App != "" {
		b.WriteString(`, app="`)
		b.WriteString(r.App)
		b.WriteByte('"')
	}
	if r.Dlg != "" {
		b.WriteString(`, dlg="`)
		b.WriteString(r.Dlg)
		b.WriteByte('"')
	}
	return b.String()
}

// renderResponseHeader renders the Server-Authorization header: no
// id/ts/nonce, since those are inherited from the request.
func renderResponseHeader(mac string, hash ContentHash, ext string) string {
	var b strings.Builder
	b.WriteString(hawkScheme)
	b.WriteString(` mac="`)
	b.WriteString(mac)
	b.WriteByte('"')
	if !hash.IsOmitted() {
		b.WriteString(`, hash="`)
		b.WriteString(hash.Value())
		b.WriteByte('"')
	}
	if ext != "" {
		b.WriteString(`, ext="`)
		b.WriteString(ext)
		b.WriteByte('"')
	}
	return b.String()
}

// renderChallenge renders the WWW-Authenticate header issued when a
// request's timestamp has expired.
func renderChallenge(ts int64, tsm, message string) string {
	var b strings.Builder
	b.WriteString(hawkScheme)
	b.WriteString(` ts="`)
	b.WriteString(strconv.FormatInt(ts, 10))
	b.WriteString(`", tsm="`)
	b.WriteString(tsm)
	b.WriteString(`", error="`)
	b.WriteString(message)
	b.WriteByte('"')
	return b.String()
}

package hawk

import (
	"strconv"
	"strings"
)

// The five canonical prefixes give domain separation: the same
// credentials key must never produce an equivalent MAC across
// contexts.
const (
	prefixHeader   = "hawk.1.header"
	prefixResponse = "hawk.1.response"
	prefixPayload  = "hawk.1.payload"
	prefixTS       = "hawk.1.ts"
	prefixBewit    = "hawk.1.bewit"
)

// writeLines joins lines with a single LF and appends a trailing LF,
// matching the teacher's fmt.Sprintf-built templates but without
// reformatting the whole string on every call.
func writeLines(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// normalizeHeader builds the request/header pre-MAC string (used by
// both sender and receiver) per spec.md §4.1.
func normalizeHeader(r Resource) string {
	return writeLines(
		prefixHeader,
		strconv.FormatInt(r.Timestamp, 10),
		r.Nonce,
		strings.ToUpper(r.Method),
		r.PathAndQuery,
		strings.ToLower(r.Host),
		r.Port,
		contentHashLine(r.ContentHash),
		r.Ext,
		r.App,
		r.Dlg,
	)
}

// normalizeResponse builds the response pre-MAC string. Method, path,
// host and port mirror the original request; timestamp and nonce are
// copied from the request rather than freshly minted.
func normalizeResponse(r Resource) string {
	return writeLines(
		prefixResponse,
		strconv.FormatInt(r.Timestamp, 10),
		r.Nonce,
		strings.ToUpper(r.Method),
		r.PathAndQuery,
		strings.ToLower(r.Host),
		r.Port,
		contentHashLine(r.ContentHash),
		r.Ext,
		r.App,
		r.Dlg,
	)
}

// normalizeTimestamp builds the ts pre-MAC string used for the
// expiry-challenge tsm.
func normalizeTimestamp(ts int64) string {
	return writeLines(prefixTS, strconv.FormatInt(ts, 10))
}

// normalizeBewit builds the bewit pre-MAC string: method is always
// GET, nonce and content hash are always empty.
func normalizeBewit(r Resource) string {
	return writeLines(
		prefixBewit,
		strconv.FormatInt(r.Timestamp, 10),
		"",
		"GET",
		r.PathAndQuery,
		strings.ToLower(r.Host),
		r.Port,
		"",
		r.Ext,
	)
}

func contentHashLine(h ContentHash) string {
	if h.IsOmitted() {
		return ""
	}
	return h.Value()
}

package hawk

// ContentHash distinguishes "no hash parameter was computed" from
// "the hash of the empty string" — the EmptyValue migration called out
// in spec.md §9. A zero-value ContentHash is Omitted.
type ContentHash struct {
	present bool
	value   string // base64, meaningful only when present
}

// OmittedHash returns a ContentHash that renders no hash parameter.
func OmittedHash() ContentHash {
	return ContentHash{}
}

// PresentHash returns a ContentHash carrying a base64 digest, which
// may be the digest of the empty string.
func PresentHash(value string) ContentHash {
	return ContentHash{present: true, value: value}
}

// IsOmitted reports whether no hash was computed.
func (c ContentHash) IsOmitted() bool {
	return !c.present
}

// Value returns the base64 digest. It is only meaningful when
// IsOmitted reports false.
func (c ContentHash) Value() string {
	return c.value
}

// Content is the sentinel-aware wrapper the sender and receiver use
// for a payload's content/content-type pair, modeling the three
// downstream behaviors spec.md §4.4 requires: emit no hash, hash an
// empty body, or hash the given bytes.
type Content struct {
	omitted     bool
	bytes       []byte
	contentType string
}

// OmitContent is the sentinel meaning "no content was supplied"; it is
// only valid when paired with an omitted content-type, and vice versa.
func OmitContent() Content {
	return Content{omitted: true}
}

// WithContent wraps literal payload bytes and a content-type. An empty
// byte slice and/or empty content-type are "present but empty", which
// is distinct from OmitContent().
func WithContent(contentType string, body []byte) Content {
	return Content{contentType: contentType, bytes: body}
}

func (c Content) isOmitted() bool {
	return c.omitted
}

package hawk

import "testing" // charset closure + grammar tests

func TestParseAuthHeaderBasic(t *testing.T) {
	header := `Hawk id="dh37fgj492je", ts="1353832234", nonce="j4h3g2", ext="some-app-ext-data", mac="6R4rV5iE+NPoym+WwjeHzjAGXUtLNIxmo1vpMofpLAE="`
	p, err := parseAuthHeader(header)
	if err != nil {
		t.Fatalf("parseAuthHeader: %v", err)
	}
	if p.id != "dh37fgj492je" || p.ts != "1353832234" || p.nonce != "j4h3g2" || p.ext != "some-app-ext-data" {
		t.Errorf("parseAuthHeader produced unexpected fields: %+v", p)
	}
}

func TestParseAuthHeaderDuplicateKey(t *testing.T) {
	header := `Hawk id="a", id="b", ts="1", nonce="n", mac="m"`
	_, err := parseAuthHeader(header)
	assertKind(t, err, BadHeaderValue)
}

func TestParseAuthHeaderUnknownKey(t *testing.T) {
	header := `Hawk id="a", ts="1", nonce="n", mac="m", bogus="x"`
	_, err := parseAuthHeader(header)
	assertKind(t, err, BadHeaderValue)
}

func TestParseAuthHeaderNonHawkScheme(t *testing.T) {
	_, err := parseAuthHeader(`Basic dXNlcjpwYXNz`)
	assertKind(t, err, MissingAuthorization)
}

func TestParseAuthHeaderOversized(t *testing.T) {
	big := make([]byte, MaxHeaderSize+1)
	for i := range big {
		big[i] = 'a'
	}
	_, err := parseAuthHeader("Hawk id=\"" + string(big) + "\"")
	assertKind(t, err, BadHeaderValue)
}

// Charset closure (spec.md §8 item 6): every byte in the disallowed
// set must be rejected.
func TestValidateValueCharsetRejectsDisallowedBytes(t *testing.T) {
	disallowed := []byte{0x00, 0x09, 0x0A, 0x0D, 0x1F, 0x22, 0x5C, 0x7F, 0xFF}
	for _, b := range disallowed {
		s := string([]byte{'o', 'k', b})
		if err := validateValueCharset(s); err == nil {
			t.Errorf("validateValueCharset accepted disallowed byte 0x%02X", b)
		}
	}
}

func TestValidateValueCharsetAcceptsPermittedRange(t *testing.T) {
	for b := byte(0x20); b <= 0x7E; b++ {
		if b == '"' || b == '\\' {
			continue
		}
		if err := validateValueCharset(string([]byte{b})); err != nil {
			t.Errorf("validateValueCharset rejected permitted byte 0x%02X", b)
		}
	}
}

func TestRenderRequestHeaderOmitsEmptyOptionalFields(t *testing.T) {
	r := Resource{Timestamp: 1, Nonce: "n"}
	got := renderRequestHeader("id", r, "mac")
	want := `Hawk id="id", ts="1", nonce="n", mac="mac"`
	if got != want {
		t.Errorf("renderRequestHeader:\n got:  %s\n want: %s", got, want)
	}
}

func TestRenderRequestHeaderWithAllFields(t *testing.T) {
	r := Resource{
		Timestamp:   1,
		Nonce:       "n",
		Ext:         "e",
		App:         "a",
		Dlg:         "d",
		ContentHash: PresentHash("h"),
	}
	got := renderRequestHeader("id", r, "mac")
	want := `Hawk id="id", ts="1", nonce="n", ext="e", mac="mac", hash="h", app="a", dlg="d"`
	if got != want {
		t.Errorf("renderRequestHeader:\n got:  %s\n want: %s", got, want)
	}
}

func TestRenderResponseHeader(t *testing.T) {
	got := renderResponseHeader("mac", PresentHash("h"), "e")
	want := `Hawk mac="mac", hash="h", ext="e"`
	if got != want {
		t.Errorf("renderResponseHeader:\n got:  %s\n want: %s", got, want)
	}
}

func TestRenderChallenge(t *testing.T) {
	got := renderChallenge(100, "tsm-value", "Stale timestamp")
	want := `Hawk ts="100", tsm="tsm-value", error="Stale timestamp"`
	if got != want {
		t.Errorf("renderChallenge:\n got:  %s\n want: %s", got, want)
	}
}

package hawk

import (
	"strings"
	"testing"
)

func TestNormalizeContentTypeStripsParametersAndCase(t *testing.T) {
	cases := map[string]string{
		"text/plain":                 "text/plain",
		"  TEXT/Plain  ":             "text/plain",
		"text/plain; charset=utf-8":  "text/plain",
		"text/plain;charset=utf-8":   "text/plain",
		"APPLICATION/JSON; q=0.9":    "application/json",
	}
	for in, want := range cases {
		if got := normalizeContentType(in); got != want {
			t.Errorf("normalizeContentType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHashPayloadStreamMatchesInMemoryHash(t *testing.T) {
	body := []byte("Thank you for flying Hawk")
	want := hashPayloadBytes(SHA256, "text/plain", body)

	for _, blockSize := range []int{1, 3, 7, 1024, 4096} {
		got, err := hashPayloadStream(SHA256, "text/plain", strings.NewReader(string(body)), blockSize)
		if err != nil {
			t.Fatalf("hashPayloadStream(blockSize=%d): %v", blockSize, err)
		}
		if got != want {
			t.Errorf("hashPayloadStream(blockSize=%d) = %q, want %q", blockSize, got, want)
		}
	}
}

func TestResolveContentHashOmittedRequiresOptIn(t *testing.T) {
	_, err := resolveContentHash(SHA256, OmitContent(), true)
	assertKind(t, err, MissingContent)

	h, err := resolveContentHash(SHA256, OmitContent(), false)
	if err != nil {
		t.Fatalf("resolveContentHash with alwaysHashContent=false: %v", err)
	}
	if !h.IsOmitted() {
		t.Error("expected an omitted ContentHash")
	}
}

func TestResolveContentHashPresentEmptyIsNotOmitted(t *testing.T) {
	h, err := resolveContentHash(SHA256, WithContent("", nil), true)
	if err != nil {
		t.Fatalf("resolveContentHash: %v", err)
	}
	if h.IsOmitted() {
		t.Error("present-but-empty content must not collapse to omitted")
	}
	if h.Value() != hashPayloadBytes(SHA256, "", nil) {
		t.Error("present-but-empty content hash must equal hash of empty body/type")
	}
}

func TestVerifyContentHashOmittedHeaderRequiresOptIn(t *testing.T) {
	err := verifyContentHash(SHA256, OmittedHash(), WithContent("text/plain", []byte("x")), false)
	assertKind(t, err, MissingContent)

	err = verifyContentHash(SHA256, OmittedHash(), WithContent("text/plain", []byte("x")), true)
	if err != nil {
		t.Errorf("acceptUntrustedContent=true should accept an omitted header hash: %v", err)
	}
}

func TestVerifyContentHashDetectsTamperedBody(t *testing.T) {
	headerHash := PresentHash(hashPayloadBytes(SHA256, "text/plain", []byte("original")))
	err := verifyContentHash(SHA256, headerHash, WithContent("text/plain", []byte("tampered")), false)
	assertKind(t, err, MisComputedContentHash)
}

func TestVerifyContentHashSentinelCollapsesToEmpty(t *testing.T) {
	headerHash := PresentHash(hashPayloadBytes(SHA256, "", nil))
	err := verifyContentHash(SHA256, headerHash, OmitContent(), false)
	if err != nil {
		t.Errorf("OmitContent on the receiver side must hash as empty body/type: %v", err)
	}
}

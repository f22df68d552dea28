package hawk

import (
	"strings"
	"testing"
)

func TestClientNewRequestCarriesAuthorizationHeader(t *testing.T) {
	creds := Credentials{ID: "dh37fgj492je", Key: []byte("secret-key-material"), Algorithm: SHA256}
	client := NewClient(creds)

	req, err := client.NewRequest("POST", "https://example.com/resource", strings.NewReader("hello"), "text/plain", "ext-data")
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if req.Header.Get("Authorization") == "" {
		t.Error("request carries no Authorization header")
	}
	if req.Header.Get("Content-Type") != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", req.Header.Get("Content-Type"))
	}

	body := make([]byte, 5)
	n, _ := req.Body.Read(body)
	if string(body[:n]) != "hello" {
		t.Errorf("request body = %q, want hello", body[:n])
	}
}

func TestClientNewRequestHeaderVerifiesAgainstReceiver(t *testing.T) {
	creds := Credentials{ID: "dh37fgj492je", Key: []byte("secret-key-material"), Algorithm: SHA256}
	client := NewClient(creds)

	req, err := client.NewRequest("POST", "https://example.com/resource", strings.NewReader("hello"), "text/plain", "")
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	lookup := LookupFunc(func(id string) (Credentials, error) { return creds, nil })
	seen := SeenNonceFunc(func(id, nonce string, ts int64) bool { return false })
	_, err = NewReceiver(lookup, seen, req.Header.Get("Authorization"), "https://example.com/resource", "POST",
		WithContent("text/plain", []byte("hello")))
	if err != nil {
		t.Errorf("receiver rejected a header built by Client.NewRequest: %v", err)
	}
}

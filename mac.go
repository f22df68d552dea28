package hawk

import (
	"crypto/hmac"
	"encoding/base64"
)

// computeMAC HMACs the canonical string under the credentials'
// algorithm and key, returning standard base64 with padding.
func computeMAC(creds Credentials, canonical string) string {
	m := hmac.New(creds.Algorithm.New(), creds.Key)
	m.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(m.Sum(nil))
}

// verifyMAC recomputes the MAC over canonical and compares it to mac
// using a constant-time comparison. Decoding both operands to raw
// bytes before comparing avoids any timing signal from base64's
// character-class checks leaking information about a partially
// correct MAC.
func verifyMAC(creds Credentials, canonical string, mac string) bool {
	want, err := base64.StdEncoding.DecodeString(mac)
	if err != nil {
		return false
	}
	m := hmac.New(creds.Algorithm.New(), creds.Key)
	m.Write([]byte(canonical))
	got := m.Sum(nil)
	return hmac.Equal(got, want)
}

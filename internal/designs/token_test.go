package designs

import (
	"bytes"
	"errors"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}
	token := EncodeToken(12, secret)

	userID, parsed, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 12 {
		t.Fatalf("user id = %d, want 12", userID)
	}
	if !bytes.Equal(parsed, secret) {
		t.Fatalf("secret = %x, want %x", parsed, secret)
	}
}

func TestParseTokenRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"12",
		".c2VjcmV0",
		"12.",
		"abc.c2VjcmV0",
		"0.c2VjcmV0",
		"12.not+valid+base64url!",
	}
	for _, token := range cases {
		if _, _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("ParseToken(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

package designs

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Upload tokens are "<user id>.<base64url secret, unpadded>".

func EncodeToken(userID uint, secret []byte) string {
	return strconv.FormatUint(uint64(userID), 10) + "." + base64.RawURLEncoding.EncodeToString(secret)
}

func ParseToken(token string) (uint, []byte, error) {
	left, right, ok := strings.Cut(token, ".")
	if !ok {
		return 0, nil, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(left, 10, 32)
	if err != nil || userID == 0 {
		return 0, nil, ErrInvalidToken
	}
	secret, err := base64.RawURLEncoding.DecodeString(right)
	if err != nil || len(secret) == 0 {
		return 0, nil, ErrInvalidToken
	}
	return uint(userID), secret, nil
}

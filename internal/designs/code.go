package designs

import (
	"regexp"
	"strings"
)

// Design codes are the game-facing rendering of a design ID: twelve base-30
// digits in dash-separated groups of four. The alphabet omits letters that
// are easy to misread on a TV screen.
const designCodeAlphabet = "0123456789BCDFGHJKLMNPQRSTVWXY"

// maxDesignID is the largest id twelve base-30 digits can hold (30^12 - 1).
const maxDesignID int64 = 531_440_999_999_999_999

var designCodeRE = regexp.MustCompile(`^[0-9BCDFGHJKLMNPQRSTVWXY]{4}-[0-9BCDFGHJKLMNPQRSTVWXY]{4}-[0-9BCDFGHJKLMNPQRSTVWXY]{4}$`)

// FormatDesignCode renders a design ID as the code players see in game,
// zero-padded to the full three groups.
func FormatDesignCode(id int64) string {
	var digits [12]byte
	v := id
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = designCodeAlphabet[v%30]
		v /= 30
	}
	return string(digits[0:4]) + "-" + string(digits[4:8]) + "-" + string(digits[8:12])
}

// ParseDesignCode is the inverse of FormatDesignCode. It returns
// ErrInvalidDesignCode for anything not matching the code format.
func ParseDesignCode(code string) (int64, error) {
	if !designCodeRE.MatchString(code) {
		return 0, ErrInvalidDesignCode
	}
	var n int64
	for _, c := range strings.ReplaceAll(code, "-", "") {
		n = n*30 + int64(strings.IndexRune(designCodeAlphabet, c))
	}
	return n, nil
}

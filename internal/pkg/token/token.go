package token

import (
	"crypto/rand"
	"math/big"
)

// Share tokens are the only guest credential: unguessable but deliberately
// short enough to survive being read aloud at a party.
const (
	Length  = 12
	charset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

func NewShareToken() (string, error) {
	buf := make([]byte, Length)
	max := big.NewInt(int64(len(charset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = charset[n.Int64()]
	}
	return string(buf), nil
}

// Valid reports whether s has the exact shape NewShareToken produces.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

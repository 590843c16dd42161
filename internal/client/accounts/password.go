package accounts

import (
	"encoding/hex"

	"github.com/cityzen/tripbuddy/internal/cryptox"
)

const pepperSize = 16

var newPepper = func() ([]byte, error) {
	return cryptox.RandomBytes(pepperSize)
}

// fingerprint is deterministic for a given pepper: equal passwords give
// equal fingerprints.
func fingerprint(password string, pepper []byte) string {
	return hex.EncodeToString(cryptox.DeriveKey([]byte(password), pepper))
}

func sameFingerprint(a, b string) bool {
	return cryptox.Equal([]byte(a), []byte(b))
}

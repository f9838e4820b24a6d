// Package id generates compact globally-unique identifiers.
package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a random identifier encoded as 26 lowercase base32 characters.
//
// The underlying value is a UUIDv4, so identifiers remain convertible to the
// canonical UUID form while staying URL- and filename-safe.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(value[:])), nil
}

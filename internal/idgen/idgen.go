// Package idgen mints short run identifiers, backed by nanoid, so every
// metadata artifact can be traced to the run that produced it.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the character set for the random portion of a run ID. Lower
// case only, so IDs stay shell- and filename-friendly.
var Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of random characters after the prefix.
var Length = 8

// RunID returns a new identifier like "run-k3x09qzm".
func RunID() (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return "run-" + id, nil
}

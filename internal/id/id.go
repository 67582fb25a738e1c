// Package id generates prefixed unique identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// alphabet excludes look-alike characters (0/O, 1/l/I) so IDs survive being
// read aloud or copied off a printed list.
const (
	alphabet = "23456789abcdefghijkmnpqrstuvwxyz"
	idLength = 14
)

// Generate creates a prefixed unique ID, e.g. "scan-k7m2p9qw4rtx5n".
// IDs only need to be unique within one kitchen's scan history, so a
// 14-character NanoID over a 32-character alphabet is plenty.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.Generate(alphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use this only when failure should crash the program.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

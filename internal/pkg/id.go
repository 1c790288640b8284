package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a new random game identifier.
func GenerateGameID() string {
	return uuid.NewString()
}

// IsValidGameID - reports whether id looks like an identifier from GenerateGameID.
func IsValidGameID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

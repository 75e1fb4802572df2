package util

import (
	"github.com/google/uuid"
)

// RandomPlayerID generates a random player id suitable for testing
func RandomPlayerID() string {
	return "player-" + uuid.New().String()
}

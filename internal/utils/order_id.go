package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOrderID draws a random id in the shop's human-readable 6-digit
// range. Uniqueness against the existing collection is the caller's
// responsibility; the repository retries on collision.
func GenerateOrderID() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateComplaintToken returns a random permutation of the characters of
// the 13-character PNR key. The token is cosmetic proof that a verified
// reservation backs the complaint; a retry produces a different token.
func GenerateComplaintToken(pnrKey string) (string, error) {
	chars := []byte(pnrKey)

	// Fisher-Yates shuffle with crypto/rand
	for i := len(chars) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		j := n.Int64()
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

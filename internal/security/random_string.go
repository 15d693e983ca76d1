package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if alphabet == "" {
		return "", errEmptyAlphabet
	}

	alphabetSize := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)
	for index := range result {
		position, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		result[index] = alphabet[position.Int64()]
	}
	return string(result), nil
}

package keygen

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
)

const (
	Prefix   = "ROCK"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	groupLen = 4
)

var (
	keyPattern = regexp.MustCompile(`^ROCK-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

	ErrExhausted = errors.New("keygen: no free key after max attempts")
)

// Generate returns a key of the form ROCK-XXXX-XXXX. The source is math/rand,
// keys are demo licences and carry no security weight.
func Generate() string {
	var b strings.Builder
	b.Grow(len(Prefix) + 2 + 2*groupLen)
	b.WriteString(Prefix)
	for g := 0; g < 2; g++ {
		b.WriteByte('-')
		for i := 0; i < groupLen; i++ {
			b.WriteByte(alphabet[rand.IntN(len(alphabet))])
		}
	}
	return b.String()
}

// GenerateUnique re-rolls until exists reports the key as free.
func GenerateUnique(exists func(string) bool, attempts int) (string, error) {
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		key := Generate()
		if exists == nil || !exists(key) {
			return key, nil
		}
	}
	return "", ErrExhausted
}

func ValidateFormat(key string) bool {
	return keyPattern.MatchString(key)
}

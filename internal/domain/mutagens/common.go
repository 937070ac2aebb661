// Package mutagens generates the random replacement strings spliced into a seed.
package mutagens

import (
	"fmt"
	"math/rand/v2"
	"strings"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// Generate draws count strings of the given length from the charset alphabet.
// Every character is drawn independently and uniformly, with replacement.
//
// count and length must be at least 1 and the alphabet must not be empty;
// anything else is a caller bug and panics.
func Generate(rng *rand.Rand, charset m.Charset, count, length int) []string {
	if count < 1 || length < 1 {
		panic(fmt.Sprintf("mutagens: invalid pool shape count=%d length=%d", count, length))
	}

	if charset.Alphabet == "" {
		panic(fmt.Sprintf("mutagens: empty alphabet for %s", charset.Category))
	}

	candidates := make([]string, 0, count)
	for range count {
		candidates = append(candidates, randomString(rng, charset.Alphabet, length))
	}

	return candidates
}

func randomString(rng *rand.Rand, alphabet string, length int) string {
	var sb strings.Builder

	sb.Grow(length)

	for range length {
		sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
	}

	return sb.String()
}

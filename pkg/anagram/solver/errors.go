package solver

import (
	"errors"
	"fmt"
)

// Input validation errors, wrapped with context via fmt.Errorf("%w: ...")
// so callers can errors.Is against a stable sentinel while still
// seeing which word or count triggered it.
var (
	ErrEmptyInput          = errors.New("anagramtree: empty word list")
	ErrTooManyWords        = errors.New("anagramtree: too many words")
	ErrNonASCIIOrEmptyWord = errors.New("anagramtree: non-ASCII or empty word")
	ErrDuplicateWord       = errors.New("anagramtree: duplicate word")
)

const maxWords = 32

func validate(words []string) error {
	if len(words) == 0 {
		return ErrEmptyInput
	}
	if len(words) > maxWords {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyWords, len(words), maxWords)
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if len(w) == 0 {
			return fmt.Errorf("%w: %q", ErrNonASCIIOrEmptyWord, w)
		}
		lower := make([]byte, len(w))
		for i := 0; i < len(w); i++ {
			b := w[i]
			switch {
			case b >= 'a' && b <= 'z':
				lower[i] = b
			case b >= 'A' && b <= 'Z':
				lower[i] = b - 'A' + 'a'
			default:
				return fmt.Errorf("%w: %q", ErrNonASCIIOrEmptyWord, w)
			}
		}
		key := string(lower)
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		seen[key] = true
	}
	return nil
}

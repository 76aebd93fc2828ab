// Package refid generates customer-facing reference identifiers for form
// submissions, such as BK-482913 or TR-00417265.
package refid

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Mode controls when a Source mints a fresh identifier.
const (
	ModePerRequest = "request"
	ModePerProcess = "process"
)

// Generate returns an identifier of the form PREFIX-DDDDDD with the given
// number of zero-padded random digits.
func Generate(prefix string, digits int) string {
	if digits <= 0 {
		digits = 6
	}
	max := int64(1)
	for i := 0; i < digits; i++ {
		max *= 10
	}
	return fmt.Sprintf("%s-%0*d", prefix, digits, rand.Int64N(max))
}

// Source hands out reference identifiers for one form type. In per-request
// mode every call mints a new id. In per-process mode the first call fixes
// the id for the lifetime of the process, which batch-style flows use to
// correlate all submissions of one run.
type Source struct {
	prefix string
	digits int
	mode   string

	once  sync.Once
	fixed string
}

func NewSource(prefix string, digits int, mode string) *Source {
	if mode != ModePerProcess {
		mode = ModePerRequest
	}
	return &Source{prefix: prefix, digits: digits, mode: mode}
}

// Next returns the next reference identifier from this source.
func (s *Source) Next() string {
	if s.mode == ModePerProcess {
		s.once.Do(func() {
			s.fixed = Generate(s.prefix, s.digits)
		})
		return s.fixed
	}
	return Generate(s.prefix, s.digits)
}

package refid

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-\d{6}$`)
	for i := 0; i < 100; i++ {
		id := Generate("BK", 6)
		assert.True(t, pattern.MatchString(id), "unexpected id %q", id)
	}
}

func TestGenerate_EightDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^TR-\d{8}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, Generate("TR", 8))
	}
}

func TestGenerate_DefaultsToSixDigits(t *testing.T) {
	assert.Regexp(t, `^TXN-\d{6}$`, Generate("TXN", 0))
}

func TestSource_PerRequestMintsFreshIDs(t *testing.T) {
	src := NewSource("SRV", 6, ModePerRequest)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[src.Next()] = true
	}
	// Collisions over 50 draws from a million-value space are vanishingly
	// unlikely; a single repeated id for every call is the real failure mode.
	assert.Greater(t, len(seen), 1)
}

func TestSource_PerProcessReturnsStableID(t *testing.T) {
	src := NewSource("AMC", 6, ModePerProcess)

	first := src.Next()
	require.Regexp(t, `^AMC-\d{6}$`, first)

	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = src.Next()
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, first, id)
	}
}

func TestNewSource_UnknownModeFallsBackToPerRequest(t *testing.T) {
	src := NewSource("FDBK", 6, "weekly")
	a, b := src.Next(), src.Next()
	assert.Regexp(t, `^FDBK-\d{6}$`, a)
	assert.Regexp(t, `^FDBK-\d{6}$`, b)
}

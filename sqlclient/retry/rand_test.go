//go:build unit

package retry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSource_Uint64N(t *testing.T) {
	t.Parallel()

	for range 200 {
		assert.Less(t, DefaultSource.Uint64N(10), uint64(10))
	}
}

func TestDefaultSource_Uint64N_UnitBound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), DefaultSource.Uint64N(1))
}

func TestFallbackUint64N(t *testing.T) {
	t.Parallel()

	for range 200 {
		assert.Less(t, fallbackUint64N(10), uint64(10))
	}
}

//go:build unit

package sqlclient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentOutOfRangeError_Error(t *testing.T) {
	t.Parallel()

	err := NewArgumentOutOfRangeError("max", "max must be between %v and %v", 0, 120)

	assert.Equal(t, `argument "max" out of range: max must be between 0 and 120`, err.Error())
}

func TestArgumentOutOfRangeError_NilReceiver(t *testing.T) {
	t.Parallel()

	var err *ArgumentOutOfRangeError

	assert.Equal(t, "argument out of range", err.Error())
}

func TestArgumentOutOfRangeError_MatchesWithErrorsAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("building retry interval: %w", NewArgumentOutOfRangeError("gap", "gap must be non-negative"))

	var outOfRange *ArgumentOutOfRangeError

	require.True(t, errors.As(wrapped, &outOfRange))
	assert.Equal(t, "gap", outOfRange.Param)
}

package rand_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numtext/numtext/convert"
	"github.com/numtext/numtext/rand"
)

func TestJitterRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		v, err := rand.Jitter(rand.Reader, 100, rand.DefaultJitterPercent, rand.DefaultMinDelta)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, int32(90))
		assert.LessOrEqual(t, v, int32(110))
	}
}

// TestJitterCoversBounds checks both interval ends are reachable: the offset
// distribution is inclusive of -delta and +delta.
func TestJitterCoversBounds(t *testing.T) {
	seen := map[int32]bool{}
	for i := 0; i < 300; i++ {
		v, err := rand.Jitter(rand.Reader, 0, 0, 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int32(-1))
		require.LessOrEqual(t, v, int32(1))
		seen[v] = true
	}
	assert.Len(t, seen, 3, "offsets -1, 0, +1 should all occur, saw %v", seen)
}

func TestJitterMinDeltaFloor(t *testing.T) {
	// |3| * 0.1 rounds to 0, so minDelta takes over.
	for i := 0; i < 100; i++ {
		v, err := rand.Jitter(rand.Reader, 3, 0.1, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, int32(1))
		assert.LessOrEqual(t, v, int32(5))
	}
}

func TestJitterPercentOutOfRange(t *testing.T) {
	for _, percent := range []float64{-0.1, 1.0001, 2, -1} {
		_, err := rand.Jitter(rand.Reader, 100, percent, 1)
		require.Error(t, err, "percent %v", percent)

		var oor *convert.OutOfRangeError
		require.ErrorAs(t, err, &oor, "percent %v", percent)
		assert.Equal(t, "percent", oor.Param)
	}
}

func TestJitterExtremes(t *testing.T) {
	// The magnitude of the minimum int32 overflows same-width negation;
	// these must not panic or error.
	for _, value := range []int32{-2147483648, 2147483647, 0} {
		_, err := rand.Jitter(rand.Reader, value, 1.0, 1)
		require.NoError(t, err, "value %v", value)
	}
}

func TestJitterExhaustedSource(t *testing.T) {
	_, err := rand.Jitter(bytes.NewReader(nil), 100, 0.1, 1)
	require.Error(t, err)
}

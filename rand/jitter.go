package rand

import (
	"io"
	"math"

	"github.com/numtext/numtext/convert"
)

// Default Jitter parameters.
const (
	DefaultJitterPercent = 0.1
	DefaultMinDelta      = 1
)

// Jitter perturbs value by a uniformly distributed offset within
// [-delta, +delta] inclusive, where delta is the greater of minDelta and
// |value| * percent rounded to the nearest integer. The offset is read from
// reader, which must supply uniform entropy; pass Reader outside of tests.
//
// percent must lie within [0.0, 1.0]; any other value returns an
// *convert.OutOfRangeError.
func Jitter(reader io.Reader, value int32, percent float64, minDelta int32) (int32, error) {
	if percent < 0 || percent > 1 {
		return 0, &convert.OutOfRangeError{
			Param: "percent",
			Value: percent,
			Min:   0.0,
			Max:   1.0,
		}
	}

	// Widen before taking the magnitude so the minimum value survives.
	magnitude := int64(value)
	if magnitude < 0 {
		magnitude = -magnitude
	}

	delta := int64(math.Round(float64(magnitude) * percent))
	if delta < int64(minDelta) {
		delta = int64(minDelta)
	}
	if delta < 0 {
		delta = 0
	}

	// [0, 2*delta+1) shifted down by delta covers [-delta, +delta] with
	// every offset equally likely.
	offset, err := Int63n(reader, 2*delta+1)
	if err != nil {
		return 0, err
	}

	return value + int32(offset-delta), nil
}

// Package rand supplies uniform integer sampling over an injectable entropy
// source, and randomized jitter built on top of it.
package rand

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

func init() {
	Reader = rand.Reader
}

// Reader provides a pseudo-random reader that can reset during testing.
var Reader io.Reader

// Int63n returns an int64 uniformly distributed within [0, max), read from
// the provided random source. Sampling is rejection based, so the
// distribution carries no modulo bias.
func Int63n(reader io.Reader, max int64) (int64, error) {
	bi, err := rand.Int(reader, big.NewInt(max))
	if err != nil {
		return 0, fmt.Errorf("failed to read random value, %w", err)
	}

	return bi.Int64(), nil
}

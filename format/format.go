// Package format renders int32 values as thousands-separated decimal text.
// Output is always invariant: Arabic digits, comma group separators, ASCII
// minus sign, regardless of process locale.
package format

const (
	separator = ','
	groupSize = 3

	// bufferLen holds the worst case, "-2,147,483,648" (14 bytes), with
	// margin.
	bufferLen = 16
)

// Int32 returns the decimal digits of value with a comma inserted every
// three digits counting from the least-significant digit, preceded by a
// minus sign when negative. Zero renders as "0".
//
// The rendering fills a fixed stack buffer back to front; the returned
// string is the only allocation. This implementation is optimized to not use
// fmt or strconv.
func Int32(value int32) string {
	var buf [bufferLen]byte

	// Widen through int64 before negating so the minimum value survives.
	magnitude := uint32(value)
	if value < 0 {
		magnitude = uint32(-int64(value))
	}

	i := len(buf)
	group := 0
	for {
		if group == groupSize {
			i--
			buf[i] = separator
			group = 0
		}
		i--
		buf[i] = byte('0' + magnitude%10)
		magnitude /= 10
		group++
		if magnitude == 0 {
			break
		}
	}
	if value < 0 {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

// Int32Ptr is the optional form of Int32. A nil value yields nil, or a
// pointer to "-" when dashIfNil is set. A non-nil value delegates to Int32.
func Int32Ptr(value *int32, dashIfNil bool) *string {
	if value == nil {
		if dashIfNil {
			dash := "-"
			return &dash
		}
		return nil
	}
	rendered := Int32(*value)
	return &rendered
}

// Package conv holds allocation-free number formatting for the render path.
// No fmt/strconv dependency.
package conv

// AppendInt appends the base-10 representation of n to dst.
func AppendInt(dst []byte, n int) []byte {
	var tmp [20]byte
	i := len(tmp)
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	// Write digits backwards.
	for {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	if neg {
		i--
		tmp[i] = '-'
	}
	return append(dst, tmp[i:]...)
}

// Digits splits a two-digit value into tens and units.
func Digits(n int) (tens, units int) {
	return n / 10, n % 10
}

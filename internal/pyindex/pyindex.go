// package pyindex normalizes source-language indices.
// Every indexed or sliced container in the runtime goes through these helpers,
// so negative indices mean the same thing everywhere.
package pyindex

// Normalize maps a negative index i onto n+i.
func Normalize(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// Index normalizes i and reports whether it addresses one of n elements.
func Index(i, n int) (int, bool) {
	j := Normalize(i, n)
	return j, j >= 0 && j < n
}

// Bounds normalizes the half open range [beg, end) over n elements.
// ok is false if either bound falls outside [0, n] after normalization.
// A range with end < beg is returned as the empty range at beg.
func Bounds(beg, end, n int) (int, int, bool) {
	beg = Normalize(beg, n)
	end = Normalize(end, n)
	if beg < 0 || beg > n || end < 0 || end > n {
		return beg, end, false
	}
	if end < beg {
		end = beg
	}
	return beg, end, true
}

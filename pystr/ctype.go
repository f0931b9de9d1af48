package pystr

// Byte classes of the C locale.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isAlpha(c byte) bool {
	return isUpper(c) || isLower(c)
}

// isSpace matches ' ', \t, \n, \v, \f and \r.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isPrint(c byte) bool {
	return c >= ' ' && c < 0x7f
}

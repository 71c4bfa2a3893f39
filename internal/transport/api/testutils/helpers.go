package testutils

import "strings"

// OverBytesUnderRunes строка длиннее maxBytes в байтах, но не длиннее maxBytes в рунах.
// Проверяет, что ограничение max_bytes считает именно байты.
func OverBytesUnderRunes(maxBytes int) string {
	const symbol = "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, maxBytes/len(symbol)+1)
}

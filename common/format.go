package common

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ReadableNumber adds thousand separators: 21000 -> "21,000".
func ReadableNumber(n uint64) string {
	return printer.Sprintf("%d", n)
}

// ShortAddress abbreviates a hex string to its first and last 8 characters.
func ShortAddress(addr string) string {
	if len(addr) <= 16 {
		return addr
	}
	return fmt.Sprintf("%s...%s", addr[:8], addr[len(addr)-8:])
}

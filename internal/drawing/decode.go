package drawing

import "unicode/utf8"

// decodeText decodes raw drawing bytes as UTF-8, falling back to Latin-1
// when the bytes are not valid UTF-8. Latin-1 maps every byte to the
// code point of the same value, so the fallback can never fail; older
// CAD exports commonly carry Latin-1 layer and text strings.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

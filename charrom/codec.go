package charrom

import (
	"strings"
	"unicode/utf8"
)

const (
	// UserCharacterBase is the private-use rune which stands for the
	// first user-defined character.  The eight slots occupy
	// UserCharacterBase to UserCharacterBase+7.
	UserCharacterBase rune = 0xEFF80

	// Replacement is the code written for runes the ROM cannot show.
	Replacement byte = '?'
)

// encoding is the inverse of decoding, built on first use.
var encoding map[rune]byte

func init() {
	encoding = make(map[rune]byte, len(decoding))
	for code, r := range decoding {
		if r == 0 {
			continue
		}
		// The lowest code wins when a rune appears twice.
		if _, ok := encoding[r]; !ok {
			encoding[r] = byte(code)
		}
	}

	// Codes 0-7 pass through unchanged, so text can embed user
	// characters with "\x00".."\x07".
	for code := 0; code < 8; code++ {
		encoding[rune(code)] = byte(code)
	}
}

// UserCharacter returns the rune which encodes to the given
// user-defined character slot.
func UserCharacter(slot int) rune {
	return UserCharacterBase + rune(slot&0x07)
}

// EncodeRune returns the code of the given rune, and whether the ROM
// has it.
func EncodeRune(r rune) (byte, bool) {
	c, ok := encoding[r]
	return c, ok
}

// Encode converts text into character codes.  Runes the ROM cannot
// show are replaced with '?'.
func Encode(s string) []byte {
	out := make([]byte, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		c, ok := encoding[r]
		if !ok {
			c = Replacement
		}
		out = append(out, c)
	}
	return out
}

// Decode converts character codes back into text.
func Decode(codes []byte) string {
	var sb strings.Builder
	for _, c := range codes {
		r := decoding[c]
		if r == 0 {
			r = utf8.RuneError
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

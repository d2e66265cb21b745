// Package input turns raw terminal bytes into weft key-press messages and
// feeds them to the runtime queue. It is a producer-side adapter: it never
// touches the model tree, only Enqueue.
package input

import (
	"unicode/utf8"

	"gitlab.com/tinyland/lab/weft/pkg/message"
)

// escape-sequence suffixes for the common navigation keys (CSI and SS3
// variants both appear in the wild).
var escSequences = map[string]string{
	"[A": "up",
	"[B": "down",
	"[C": "right",
	"[D": "left",
	"[H": "home",
	"[F": "end",
	"OA": "up",
	"OB": "down",
	"OC": "right",
	"OD": "left",
	"[3~": "delete",
	"[5~": "pgup",
	"[6~": "pgdown",
}

// DecodeKey decodes the first key press in buf and returns it along with
// the number of bytes consumed. A zero consumed count means buf does not
// yet hold a complete key (the caller should read more bytes).
func DecodeKey(buf []byte) (message.KeyPress, int) {
	if len(buf) == 0 {
		return message.KeyPress{}, 0
	}

	b := buf[0]
	switch {
	case b == 0x1b:
		return decodeEscape(buf)
	case b == '\r' || b == '\n':
		return message.KeyPress{Key: "enter"}, 1
	case b == '\t':
		return message.KeyPress{Key: "tab"}, 1
	case b == 0x7f || b == 0x08:
		return message.KeyPress{Key: "backspace"}, 1
	case b == ' ':
		return message.KeyPress{Key: "space", Value: " "}, 1
	case b < 0x20:
		// Ctrl+letter folds into the 0x01..0x1a range.
		letter := string(rune('a' + b - 1))
		return message.KeyPress{Key: "ctrl+" + letter, Ctrl: true}, 1
	default:
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			// Incomplete multibyte sequence; wait for the rest.
			if !utf8.FullRune(buf) {
				return message.KeyPress{}, 0
			}
			return message.KeyPress{}, 1
		}
		kp := message.KeyPress{Key: string(r), Value: string(r)}
		if isUpper(r) {
			kp.Shift = true
		}
		return kp, size
	}
}

// decodeEscape handles inputs starting with ESC: a known escape sequence,
// an alt-modified key, or a bare escape press.
func decodeEscape(buf []byte) (message.KeyPress, int) {
	if len(buf) == 1 {
		return message.KeyPress{Key: "esc"}, 1
	}

	rest := buf[1:]
	for seq, name := range escSequences {
		if len(rest) >= len(seq) && string(rest[:len(seq)]) == seq {
			return message.KeyPress{Key: name}, 1 + len(seq)
		}
	}

	// A read can split an escape sequence: ESC+"[" now, "A" on the next
	// read. A strict prefix of a known sequence is incomplete, not Alt+key.
	for seq := range escSequences {
		if len(rest) < len(seq) && seq[:len(rest)] == string(rest) {
			return message.KeyPress{}, 0
		}
	}

	// ESC followed by a printable rune is Alt+key.
	r, size := utf8.DecodeRune(rest)
	if r != utf8.RuneError && r >= 0x20 {
		return message.KeyPress{Key: string(r), Value: string(r), Alt: true}, 1 + size
	}

	return message.KeyPress{Key: "esc"}, 1
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

package docqa

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// repairMojibake undoes UTF-8 text that was decoded as Windows-1252. Runs of
// runes that map back to single Windows-1252 bytes are re-encoded; any
// multi-byte UTF-8 sequence found in those bytes replaces its runes. Bytes
// that do not form such a sequence keep their original rune, so genuine
// Latin-1 text ("café") is left alone. It returns the repaired text and the
// number of sequences repaired.
func repairMojibake(s string) (string, int) {
	var (
		b        strings.Builder
		run      []rune
		repaired int
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		raw := make([]byte, len(run))
		for i, r := range run {
			raw[i], _ = charmap.Windows1252.EncodeRune(r)
		}
		for i := 0; i < len(raw); {
			r, size := utf8.DecodeRune(raw[i:])
			if r != utf8.RuneError && size > 1 {
				b.WriteRune(r)
				repaired++
				i += size
				continue
			}
			b.WriteRune(run[i])
			i++
		}
		run = run[:0]
	}

	for _, r := range s {
		if r >= 0x80 {
			if _, ok := charmap.Windows1252.EncodeRune(r); ok {
				run = append(run, r)
				continue
			}
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String(), repaired
}

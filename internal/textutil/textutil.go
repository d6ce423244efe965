// Package textutil measures and aligns strings the way a terminal renders
// them, accounting for ANSI escape sequences and wide glyphs.
package textutil

import (
	"errors"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Width returns the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Reverse wraps s in reverse-video SGR codes. Whether colored output is
// wanted at all is the caller's decision; this always emits the codes.
func Reverse(s string) string {
	return termenv.ANSI.String(s).Reverse().String()
}

// CutEnd truncates s at a rune boundary so that its rendered width does not
// exceed max. It counts plain text only; strings carrying ANSI escapes would
// be cut mid-sequence, so strip them first.
func CutEnd(s string, max int) string {
	w := 0
	for i, r := range s {
		w += runewidth.RuneWidth(r)
		if w > max {
			return s[:i]
		}
	}
	return s
}

// RepeatToWidth cycles the runes of s until appending the next rune would
// exceed max columns. An s of zero width yields the empty string.
func RepeatToWidth(s string, max int) string {
	if Width(s) == 0 {
		return ""
	}
	var b strings.Builder
	w := 0
	for {
		for _, r := range s {
			rw := runewidth.RuneWidth(r)
			if w+rw > max {
				return b.String()
			}
			w += rw
			b.WriteRune(r)
		}
	}
}

// Aligner pads or truncates strings to an exact terminal width. Padding
// repeats filler and patches any remaining columns with the adjust rune, so
// a multi-column filler still lands on the exact width.
type Aligner struct {
	filler string
	adjust rune
}

var (
	// Space pads with regular spaces.
	Space = Aligner{" ", ' '}
	// Zero pads with ASCII zeroes, for fixed-width numbers.
	Zero = Aligner{"0", '0'}
)

// NewAligner builds an Aligner, rejecting adjust runes that do not render
// exactly one column wide.
func NewAligner(filler string, adjust rune) (Aligner, error) {
	if runewidth.RuneWidth(adjust) != 1 {
		return Aligner{}, errors.New("textutil: adjust rune must be one column wide")
	}
	return Aligner{filler, adjust}, nil
}

// pad builds a filler string of exactly the given width.
func (a Aligner) pad(width int) string {
	fill := RepeatToWidth(a.filler, width)
	for d := width - Width(fill); d > 0; d-- {
		fill += string(a.adjust)
	}
	return fill
}

// Right aligns s to the right of width columns, truncating on overflow.
func (a Aligner) Right(s string, width int) string {
	switch w := Width(s); {
	case w < width:
		return a.pad(width-w) + s
	case w > width:
		return CutEnd(s, width)
	}
	return s
}

// Left aligns s to the left of width columns, truncating on overflow.
func (a Aligner) Left(s string, width int) string {
	switch w := Width(s); {
	case w < width:
		return s + a.pad(width-w)
	case w > width:
		return CutEnd(s, width)
	}
	return s
}

// Center centers s in width columns, putting the extra column on the right
// when the padding is odd. Overflow truncates.
func (a Aligner) Center(s string, width int) string {
	w := Width(s)
	if w > width {
		return CutEnd(s, width)
	}
	left := (width - w) / 2
	right := left + (width-w)%2
	return a.pad(left) + s + a.pad(right)
}

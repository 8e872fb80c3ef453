package types

import (
	"regexp"
	"strings"
)

const maxNoteLabelLength = 64

var (
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	newlineReplacer = strings.NewReplacer("\r", "", "\n", "")
)

// Label is the text used for the item's link. Notes have no title, so their
// label is the first characters of the note with markup removed.
func (d ItemData) Label() string {
	if d.Title != "" {
		return d.Title
	}
	if d.Note == "" {
		return ""
	}

	s := tagPattern.ReplaceAllString(d.Note, "")
	s = newlineReplacer.Replace(s)

	// Counted in runes, not UTF-16 units: labels with characters outside the
	// BMP keep more of the note than a JavaScript substring would.
	r := []rune(s)
	if len(r) > maxNoteLabelLength {
		r = r[:maxNoteLabelLength]
	}
	return string(r)
}

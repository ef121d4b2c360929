// Package message parses free-form bot replies into the pieces the
// front-ends render: inline option lists and comparison blocks.
package message

import (
	"regexp"
	"strings"
)

// optionsPattern matches the inline marker the chat service appends to
// questions, e.g. "(options: Smartphone, Laptop, Tablet)".
var optionsPattern = regexp.MustCompile(`\(options: (.*?)\)`)

const optionSeparator = ", "

// ExtractOptions returns the options listed in the first "(options: ...)"
// marker of text, in the order given. Later markers are ignored.
// It returns an empty slice when text carries no marker.
func ExtractOptions(text string) []string {
	m := optionsPattern.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}
	return strings.Split(m[1], optionSeparator)
}

package message

import "strings"

// comparisonMarkers are the title phrases that open a comparison block.
// The service writes a typographic apostrophe; the ASCII form is accepted
// as well so a normalised reply still segments.
var comparisonMarkers = []string{
	"Here’s a detailed comparison",
	"Here's a detailed comparison",
}

const bulletPrefix = "- "

// ComparisonBlock is a titled, bulleted region inside a bot message.
type ComparisonBlock struct {
	PreText   string   `json:"pre_text"`
	Title     string   `json:"title"`
	BlankLine string   `json:"blank_line"`
	Items     []string `json:"items"`
	PostText  string   `json:"post_text"`
}

// Segmentation is the result of SegmentComparison: either the original text
// unchanged, or the text split around a comparison block.
type Segmentation struct {
	text  string
	block *ComparisonBlock
}

// Plain returns the unsegmented text. It is only meaningful when Block
// reports false.
func (s Segmentation) Plain() string { return s.text }

// Block returns the comparison block, if one was found.
func (s Segmentation) Block() (ComparisonBlock, bool) {
	if s.block == nil {
		return ComparisonBlock{}, false
	}
	return *s.block, true
}

// IsComparison reports whether the text contained a comparison block.
func (s Segmentation) IsComparison() bool { return s.block != nil }

// SegmentComparison splits text around the first comparison block.
//
// The line holding the marker phrase is the title and the next line is the
// separator, kept verbatim. Items are the run of "- " lines right after the
// separator, with the prefix and surrounding whitespace removed. Everything
// from the first non-item line on is post-text.
func SegmentComparison(text string) Segmentation {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if hasComparisonMarker(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return Segmentation{text: text}
	}

	block := &ComparisonBlock{
		PreText: strings.Join(lines[:start], "\n"),
		Title:   lines[start],
		Items:   []string{},
	}
	if start+1 >= len(lines) {
		return Segmentation{text: text, block: block}
	}
	block.BlankLine = lines[start+1]

	i := start + 2
	for ; i < len(lines) && strings.HasPrefix(lines[i], bulletPrefix); i++ {
		block.Items = append(block.Items, strings.TrimSpace(strings.TrimPrefix(lines[i], bulletPrefix)))
	}
	if i < len(lines) {
		block.PostText = strings.Join(lines[i:], "\n")
	}

	return Segmentation{text: text, block: block}
}

func hasComparisonMarker(line string) bool {
	for _, marker := range comparisonMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

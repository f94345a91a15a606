package tables

import (
	"strings"

	"github.com/tsawler/labelgrid/labeldoc"
	"github.com/tsawler/labelgrid/model"
	"github.com/tsawler/labelgrid/style"
)

// HeaderFontSignature is the font the source report template uses for column
// headers. It is a structural constant of the template, not a tunable.
const HeaderFontSignature = "bold 12px verdana"

// Classify partitions labels into header fragments and data fragments,
// discarding labels whose text trims to nothing. Header fragments keep
// document order and their raw text (header tokenization needs the embedded
// non-breaking spaces); data fragments get their decoded coordinate and
// normalized text. A data fragment with a missing or unparsable coordinate
// fails the whole run.
func Classify(labels []labeldoc.Label) (header, data []model.Fragment, err error) {
	for _, l := range labels {
		if strings.TrimSpace(strings.ReplaceAll(l.Text, " ", " ")) == "" {
			continue
		}

		props := style.ParseDeclarations(l.Style)
		if style.Font(props) == HeaderFontSignature {
			header = append(header, model.Fragment{Text: l.Text, HeaderStyle: true})
			continue
		}

		at, err := style.Coordinate(props)
		if err != nil {
			return nil, nil, err
		}
		data = append(data, model.Fragment{At: at, Text: cleanText(l.Text)})
	}
	return header, data, nil
}

// cleanText normalizes a data fragment's text: non-breaking spaces become
// ordinary spaces, then the ends are trimmed.
func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", " "))
}

package tables

import (
	"errors"
	"regexp"
	"strings"

	"github.com/tsawler/labelgrid/model"
)

// TimeColumn is the synthetic name for the leftmost column, whose values the
// source template never labels.
const TimeColumn = "TIME"

// DefaultHeaderLines is how many visual lines the source template wraps its
// column headers across.
const DefaultHeaderLines = 2

// ErrHeaderNotFound reports a document with no header-styled fragments at
// all. Without them no column names can be derived, so the table cannot be
// built.
var ErrHeaderNotFound = errors.New("tables: no header fragments found")

var pipeRuns = regexp.MustCompile(`\|+`)

// ReconstructHeader merges wrapped header fragments into final column names.
//
// Each header fragment encodes one visual line of the header; a fragment's
// text holds one token per column, stacked words separated by runs of
// non-breaking spaces. Fragments shorter than the longest token list are
// partial remnants of lines already captured at full length and are
// discarded; of the full-length lists, only the first `lines` are kept
// (the template renders redundant duplicates after that). The survivors are
// zipped positionally, joining the stacked words of each column with a
// single space, and the synthetic TIME column is prepended.
//
// Fewer than `lines` full-length lists is not an error: reconstruction
// degrades to whatever is available, down to a single-line header.
func ReconstructHeader(header []model.Fragment, lines int) (model.Header, error) {
	if lines < 1 {
		lines = DefaultHeaderLines
	}

	tokenLists := make([][]string, 0, len(header))
	maxLen := 0
	for _, f := range header {
		tokens := headerTokens(f.Text)
		if len(tokens) > maxLen {
			maxLen = len(tokens)
		}
		tokenLists = append(tokenLists, tokens)
	}
	if maxLen == 0 {
		return nil, ErrHeaderNotFound
	}

	kept := make([][]string, 0, lines)
	for _, tokens := range tokenLists {
		if len(tokens) < maxLen {
			continue
		}
		kept = append(kept, tokens)
		if len(kept) == lines {
			break
		}
	}

	columns := make(model.Header, 0, maxLen+1)
	columns = append(columns, TimeColumn)
	for i := 0; i < maxLen; i++ {
		stacked := make([]string, 0, len(kept))
		for _, tokens := range kept {
			stacked = append(stacked, tokens[i])
		}
		columns = append(columns, strings.Join(stacked, " "))
	}
	return columns, nil
}

// headerTokens splits one header line into per-column tokens: non-breaking
// spaces mark the column boundaries, possibly several in a row. An empty or
// whitespace-only line yields no tokens.
func headerTokens(text string) []string {
	s := strings.TrimSpace(strings.ReplaceAll(text, " ", "|"))
	s = strings.Trim(s, "|")
	if s == "" {
		return nil
	}
	return pipeRuns.Split(s, -1)
}

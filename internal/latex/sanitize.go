package latex

import (
	"regexp"
)

// Section-heading matchers for the duplicated front matter pandoc carries
// over from the source document. RE2 has no lookahead, so each section is
// removed by locating its heading and slicing up to the next sectioning
// command found separately.
var (
	// An abstract usually arrives as \subsection{Abstract}: the document
	// title is the only level-1 heading, so "## Abstract" converts one
	// level down. All three sectioning levels are matched.
	abstractHeadRe = regexp.MustCompile(`(?i)\\(?:sub){0,2}section\*?\{abstract\}`)
	keywordHeadRe  = regexp.MustCompile(`(?i)\\(?:sub){0,2}section\*?\{(?:keyword|index term)[^}]*\}`)
	boundaryRe     = regexp.MustCompile(`\\section\b|\\subsection\b|\\subsubsection\b|\\paragraph\b|\\end\{document\}`)
)

// StripAbstractAndKeywords removes the body's own abstract and keyword
// sections, each up to the next sectioning command or end of text. The
// renderer re-inserts the user-edited abstract and keywords, so leaving
// these in place would duplicate them. This is a textual best-effort strip:
// irregular heading syntax in the source can make it over- or under-match.
// Applying it to an already-stripped document is a no-op.
func StripAbstractAndKeywords(tex string) string {
	tex = stripSections(tex, abstractHeadRe)
	tex = stripSections(tex, keywordHeadRe)
	return tex
}

func stripSections(tex string, head *regexp.Regexp) string {
	for {
		loc := head.FindStringIndex(tex)
		if loc == nil {
			return tex
		}

		end := len(tex)
		if b := boundaryRe.FindStringIndex(tex[loc[1]:]); b != nil {
			end = loc[1] + b[0]
		}

		tex = tex[:loc[0]] + tex[end:]
	}
}

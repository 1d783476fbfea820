package converter

import (
	"strings"
)

// FallbackLatex is the degraded Markdown-to-LaTeX translator used when
// pandoc is unavailable. It maps heading lines to sectioning commands and
// passes every other line through untouched. It does not handle emphasis,
// lists, tables, links, or images.
func FallbackLatex(markdown string) string {
	lines := strings.Split(markdown, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			out[i] = `\section{` + line[2:] + `}`
		case strings.HasPrefix(line, "## "):
			out[i] = `\subsection{` + line[3:] + `}`
		case strings.HasPrefix(line, "### "):
			out[i] = `\subsubsection{` + line[4:] + `}`
		default:
			out[i] = line
		}
	}
	return strings.Join(out, "\n")
}

// Package extractor guesses paper metadata from converted Markdown. All of
// it is heuristic by design: the output is a proposal the user reviews and
// corrects, so empty or wrong fields are expected outcomes, never errors.
package extractor

import (
	"regexp"
	"strings"

	"github.com/Alexgr8080/papercoverterieee/internal/models"
)

const (
	// authorScanLines bounds the author heuristic to the top of the document.
	authorScanLines = 4
	// authorScanWindow is how far into the document author lines are looked for.
	authorScanWindow = 20
)

var (
	abstractHeadingRe = regexp.MustCompile(`(?i)^#{1,6}\s*abstract\s*$`)
	keywordsLineRe    = regexp.MustCompile(`(?i)^(keywords|index terms)\s*[:—-]\s*(.+)$`)
	// The "and" branch must come first: alternation is leftmost-first, and
	// at a comma the ", and" separator has to win over the bare comma.
	keywordSplitRe = regexp.MustCompile(`,?\s+and\s+|[;,]\s*`)

	// Institutional markers that make a line near the top of the document
	// look like an author or affiliation line. Misses authors without such
	// markers and picks up unrelated lines that contain them; human review
	// is the backstop.
	authorMarkerRe = regexp.MustCompile(`(?i)@|University|Institute|College|Department|Dept\.|School|Research|Lab`)
)

// GuessMetadata scans converted Markdown for a title, an abstract block, a
// keyword list, and raw author/affiliation text.
func GuessMetadata(markdown string) models.MetadataGuess {
	lines := strings.Split(markdown, "\n")

	var guess models.MetadataGuess
	guess.Title = guessTitle(lines)
	guess.Abstract, guess.Keywords = guessAbstractAndKeywords(lines)
	guess.AuthorsRaw = guessAuthorsRaw(lines)
	return guess
}

// guessTitle returns the text of the first level-1 heading.
func guessTitle(lines []string) string {
	for _, line := range lines {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}

// guessAbstractAndKeywords walks the document once. The abstract is the run
// of non-heading lines after a whole-line "abstract" heading, up to the
// next heading. The keyword list comes from the first line labeled
// "Keywords" or "Index Terms"; later candidates are ignored.
func guessAbstractAndKeywords(lines []string) (string, []string) {
	var (
		inAbstract  bool
		abstractBuf []string
		keywords    []string
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if abstractHeadingRe.MatchString(trimmed) {
			inAbstract = true
			continue
		}
		if inAbstract && strings.HasPrefix(line, "#") {
			inAbstract = false
		}
		if inAbstract {
			abstractBuf = append(abstractBuf, trimmed)
		}

		if keywords == nil {
			if m := keywordsLineRe.FindStringSubmatch(trimmed); m != nil {
				keywords = splitKeywords(m[2])
			}
		}
	}

	return strings.TrimSpace(strings.Join(abstractBuf, " ")), keywords
}

// splitKeywords breaks a keyword list on semicolons, commas, or "and",
// trimming whitespace and stray periods from each term.
func splitKeywords(rest string) []string {
	var keywords []string
	for _, k := range keywordSplitRe.Split(rest, -1) {
		k = strings.Trim(k, " .")
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// guessAuthorsRaw collects lines near the top of the document that carry an
// institutional marker or an email address, skipping headings and the
// abstract/keywords lines. At most the first four hits are kept.
func guessAuthorsRaw(lines []string) string {
	window := lines
	if len(window) > authorScanWindow {
		window = window[:authorScanWindow]
	}

	var hits []string
	for _, line := range window {
		if strings.HasPrefix(line, "#") || abstractHeadingRe.MatchString(line) || keywordsLineRe.MatchString(line) {
			continue
		}
		if authorMarkerRe.MatchString(line) {
			hits = append(hits, strings.TrimSpace(line))
		}
		if len(hits) == authorScanLines {
			break
		}
	}

	return strings.Join(hits, "\n")
}

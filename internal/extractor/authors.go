package extractor

import (
	"regexp"
	"strings"

	"github.com/Alexgr8080/papercoverterieee/internal/models"
)

var (
	authorChunkSplitRe = regexp.MustCompile(`\n\s*\n|;\s*`)
	emailRe            = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// ParseAuthors splits raw author text into editable author rows. Chunks are
// separated by blank lines or semicolons. The name is a best-effort guess
// (text before the first comma); the full chunk is kept as the affiliation
// so nothing the heuristic saw is lost. Always returns at least one row,
// empty if necessary, so rendering templates stay well-formed.
func ParseAuthors(raw string) []models.AuthorRecord {
	var authors []models.AuthorRecord

	for _, chunk := range authorChunkSplitRe.Split(strings.TrimSpace(raw), -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		name := chunk
		if i := strings.Index(chunk, ","); i >= 0 {
			name = chunk[:i]
		}

		authors = append(authors, models.AuthorRecord{
			Name:        strings.TrimSpace(name),
			Affiliation: chunk,
			Email:       emailRe.FindString(chunk),
		})
	}

	if len(authors) == 0 {
		authors = []models.AuthorRecord{{}}
	}
	return authors
}

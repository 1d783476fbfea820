package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexgr8080/papercoverterieee/internal/models"
)

func TestParseAuthors(t *testing.T) {
	t.Run("single chunk with name affiliation and email", func(t *testing.T) {
		authors := ParseAuthors("Jane Doe, MIT, jane@mit.edu")

		require.Len(t, authors, 1)
		assert.Equal(t, "Jane Doe", authors[0].Name)
		assert.Equal(t, "Jane Doe, MIT, jane@mit.edu", authors[0].Affiliation)
		assert.Equal(t, "jane@mit.edu", authors[0].Email)
		assert.Empty(t, authors[0].Organization)
		assert.Empty(t, authors[0].CityCountry)
	})

	t.Run("semicolons split chunks", func(t *testing.T) {
		authors := ParseAuthors("Jane Doe, MIT; John Smith, Stanford University")

		require.Len(t, authors, 2)
		assert.Equal(t, "Jane Doe", authors[0].Name)
		assert.Equal(t, "John Smith", authors[1].Name)
		assert.Equal(t, "John Smith, Stanford University", authors[1].Affiliation)
	})

	t.Run("blank lines split chunks", func(t *testing.T) {
		authors := ParseAuthors("Jane Doe, MIT\n\nJohn Smith, Stanford")

		require.Len(t, authors, 2)
		assert.Equal(t, "Jane Doe", authors[0].Name)
		assert.Equal(t, "John Smith", authors[1].Name)
	})

	t.Run("chunk without comma uses whole text as name", func(t *testing.T) {
		authors := ParseAuthors("Jane Doe")

		require.Len(t, authors, 1)
		assert.Equal(t, "Jane Doe", authors[0].Name)
		assert.Equal(t, "Jane Doe", authors[0].Affiliation)
		assert.Empty(t, authors[0].Email)
	})

	t.Run("empty input yields one editable empty row", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\n\n", ";"} {
			authors := ParseAuthors(raw)

			require.Len(t, authors, 1, "input %q", raw)
			assert.Equal(t, models.AuthorRecord{}, authors[0], "input %q", raw)
		}
	})
}

package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexgr8080/papercoverterieee/internal/models"
)

func fullContext() models.RenderContext {
	return models.RenderContext{
		Title: "Adaptive Widgets",
		Authors: []models.AuthorRecord{
			{
				Name:         "Jane Doe",
				Affiliation:  "Dept. of Computing",
				Organization: "Example University",
				CityCountry:  "Boston, USA",
				Email:        "jane@example.edu",
			},
			{
				Name:        "John Smith",
				Affiliation: "Research Lab",
			},
		},
		Abstract:    "We study widgets.",
		Keywords:    []string{"widgets", "adaptivity"},
		Body:        `\section{Introduction}\nWidgets matter.`,
		BibFileBase: "refs",
	}
}

func TestRender(t *testing.T) {
	out, err := Render(fullContext())
	require.NoError(t, err)

	assert.Contains(t, out, `\title{Adaptive Widgets}`)
	assert.Contains(t, out, `\IEEEauthorblockN{Jane Doe}`)
	assert.Contains(t, out, `\IEEEauthorblockN{John Smith}`)
	assert.Contains(t, out, `\and`)
	assert.Contains(t, out, "We study widgets.")
	assert.Contains(t, out, "widgets, adaptivity")
	assert.Contains(t, out, `\section{Introduction}`)
	assert.Contains(t, out, `\bibliography{refs}`)
	assert.Contains(t, out, `\end{document}`)
}

func TestRenderEmptyFieldsAreNotErrors(t *testing.T) {
	out, err := Render(models.RenderContext{
		Authors:     []models.AuthorRecord{{}},
		BibFileBase: "refs",
	})
	require.NoError(t, err)

	assert.Contains(t, out, `\title{}`)
	assert.Contains(t, out, `\begin{abstract}`)
	// A single empty author still produces a well-formed author block
	// without a separator.
	assert.Equal(t, 1, strings.Count(out, `\IEEEauthorblockN`))
	assert.NotContains(t, out, `\and`)
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Render(fullContext())
	require.NoError(t, err)
	second, err := Render(fullContext())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAbstractAndKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "abstract section removed up to next section",
			input: "\\section{Abstract}\nOld abstract text.\n\\section{Introduction}\nBody.",
			want:  "\\section{Introduction}\nBody.",
		},
		{
			name:  "starred heading and any case",
			input: "\\section*{ABSTRACT}\ntext\n\\subsection{Next}\nmore",
			want:  "\\subsection{Next}\nmore",
		},
		{
			name:  "keywords section removed",
			input: "\\section{Introduction}\nBody.\n\\section{Keywords}\nold, terms\n\\section{Methods}\nM.",
			want:  "\\section{Introduction}\nBody.\n\\section{Methods}\nM.",
		},
		{
			name:  "index terms heading removed",
			input: "\\section{Index Terms}\nnetworking\n\\paragraph{Note}\nkeep",
			want:  "\\paragraph{Note}\nkeep",
		},
		{
			name:  "section at end of document removed to EOF",
			input: "\\section{Methods}\nM.\n\\section{Abstract}\ntrailing text",
			want:  "\\section{Methods}\nM.\n",
		},
		{
			name:  "stops at end document marker",
			input: "\\section{Abstract}\ntext\n\\end{document}",
			want:  "\\end{document}",
		},
		{
			name:  "subsection-level abstract removed",
			input: "\\section{Title}\nT.\n\\subsection{Abstract}\nold abstract\n\\subsection{Intro}\nBody.",
			want:  "\\section{Title}\nT.\n\\subsection{Intro}\nBody.",
		},
		{
			name:  "no matching sections is a no-op",
			input: "\\section{Introduction}\nBody.",
			want:  "\\section{Introduction}\nBody.",
		},
		{
			name:  "unrelated section titles survive",
			input: "\\section{Abstract Algebra}\nkeep this\n\\section{More}\nand this",
			want:  "\\section{Abstract Algebra}\nkeep this\n\\section{More}\nand this",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripAbstractAndKeywords(tt.input))
		})
	}
}

func TestStripIsIdempotent(t *testing.T) {
	input := "\\section{Abstract}\nold\n\\section{Keywords}\nterms\n\\section{Intro}\nBody."

	once := StripAbstractAndKeywords(input)
	twice := StripAbstractAndKeywords(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, "\\section{Intro}\nBody.", once)
}

func TestStripRemovesRepeatedSections(t *testing.T) {
	input := "\\section{Abstract}\none\n\\section{Abstract}\ntwo\n\\section{Intro}\nBody."

	assert.Equal(t, "\\section{Intro}\nBody.", StripAbstractAndKeywords(input))
}

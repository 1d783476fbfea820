package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "plain utf-8 unchanged",
			input: []byte("# Title\nBody"),
			want:  "# Title\nBody",
		},
		{
			name:  "utf-8 BOM stripped",
			input: []byte{0xEF, 0xBB, 0xBF, '#', ' ', 'T'},
			want:  "# T",
		},
		{
			name:  "crlf normalized to lf",
			input: []byte("# Title\r\nBody\rMore"),
			want:  "# Title\nBody\nMore",
		},
		{
			name:  "utf-16le decoded",
			input: []byte{0xFF, 0xFE, '#', 0, ' ', 0, 'T', 0},
			want:  "# T",
		},
		{
			name:  "nul bytes removed",
			input: []byte("a\x00b"),
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMarkdown(tt.input))
		})
	}
}

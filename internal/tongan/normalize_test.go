package tongan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "lower cases and trims",
			raw:  "  Fale ",
			want: "fale",
		},
		{
			name: "fakau'a modifier letter becomes ascii apostrophe",
			raw:  "ʻofa",
			want: "'ofa",
		},
		{
			name: "modifier letter apostrophe becomes ascii apostrophe",
			raw:  "ʼofa",
			want: "'ofa",
		},
		{
			name: "curly quotes become ascii apostrophe",
			raw:  "‘Otua’",
			want: "'otua'",
		},
		{
			name: "macron stripped",
			raw:  "mālō",
			want: "malo",
		},
		{
			name: "acute accent stripped",
			raw:  "fále",
			want: "fale",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	words := []string{"ʻOfa", "mālō ē lelei", "Fakamālō", "'oku", "siʼi", ""}
	for _, w := range words {
		once := Normalize(w)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", w)
	}
}

func TestNormalize_ApostropheVariantsMatch(t *testing.T) {
	variants := []string{"ʻofa", "'ofa", "‘ofa", "ʼofa", "’ofa", "′ofa", "`ofa"}
	want := Normalize(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, Normalize(v), "variant %q should normalize to the same key", v)
	}
}

// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReferenceDictionaryFixture is a small slice of the published
// dictionary in its eight column layout.
const ReferenceDictionaryFixture = `id,Tongan Word,Audio,Class,Origin,Usage,Part of Speech,Meaning in English
1,"fale","","","","","noun","house"
2,"'ofa","","","","","noun","love"
`

// WriteReferenceDictionary writes the reference fixture under dir and
// returns its path.
func WriteReferenceDictionary(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tongan_dictionary.csv")
	require.NoError(t, os.WriteFile(path, []byte(ReferenceDictionaryFixture), 0644))
	return path
}

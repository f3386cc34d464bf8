package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceFixture = `id,Tongan Word,Audio,Class,Origin,Usage,Part of Speech,Meaning in English
1,"fale","","","","","noun","house; building"
2,"ʻofa","","","","","noun","love; affection"
malformed line with too few fields
3,"mālō","","","","","interjection","thank you"
4,"fale","","","","","noun","duplicate that must not win"
`

func writeReferenceFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tongan_dictionary.csv")
	require.NoError(t, os.WriteFile(path, []byte(referenceFixture), 0644))
	return path
}

func TestReferenceDictionary_Lookup(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		wantFound bool
		want      Entry
	}{
		{
			name:      "exact headword",
			word:      "fale",
			wantFound: true,
			want:      Entry{Word: "fale", PartOfSpeech: "noun", Meaning: "house; building"},
		},
		{
			name:      "first match wins over later duplicate",
			word:      "Fale",
			wantFound: true,
			want:      Entry{Word: "fale", PartOfSpeech: "noun", Meaning: "house; building"},
		},
		{
			name:      "apostrophe variant matches",
			word:      "'ofa",
			wantFound: true,
			want:      Entry{Word: "ʻofa", PartOfSpeech: "noun", Meaning: "love; affection"},
		},
		{
			name:      "diacritics ignored",
			word:      "malo",
			wantFound: true,
			want:      Entry{Word: "mālō", PartOfSpeech: "interjection", Meaning: "thank you"},
		},
		{
			name:      "well-formed line after malformed line is still matchable",
			word:      "mālō",
			wantFound: true,
			want:      Entry{Word: "mālō", PartOfSpeech: "interjection", Meaning: "thank you"},
		},
		{
			name:      "absent word",
			word:      "fakamalohi",
			wantFound: false,
		},
	}

	path := writeReferenceFixture(t)
	ref := NewReferenceDictionary(ReferenceConfig{Path: path})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, found, err := ref.Lookup(context.Background(), tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, entry)
			}
		})
	}
}

func TestReferenceDictionary_LookupMissingFile(t *testing.T) {
	ref := NewReferenceDictionary(ReferenceConfig{
		Path: filepath.Join(t.TempDir(), "does-not-exist.csv"),
	})

	_, found, err := ref.Lookup(context.Background(), "fale")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestReferenceDictionary_LookupFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(referenceFixture))
	}))
	defer server.Close()

	ref := NewReferenceDictionary(ReferenceConfig{URL: server.URL})

	entry, found, err := ref.Lookup(context.Background(), "fale")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "house; building", entry.Meaning)
}

func TestReferenceDictionary_FetchRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(referenceFixture))
	}))
	defer server.Close()

	ref := NewReferenceDictionary(ReferenceConfig{URL: server.URL})

	_, found, err := ref.Lookup(context.Background(), "fale")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, calls)
}

func TestReferenceDictionary_FetchDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	ref := NewReferenceDictionary(ReferenceConfig{URL: server.URL})

	_, _, err := ref.Lookup(context.Background(), "fale")
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestReferenceDictionary_LookupCanceledContext(t *testing.T) {
	path := writeReferenceFixture(t)
	ref := NewReferenceDictionary(ReferenceConfig{Path: path})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found, err := ref.Lookup(ctx, "fale")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
}

package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/havili/tohitapu/internal/tongan"
)

// referenceFieldCount is the column count of the bundled reference
// dictionary: headword at index 1, part of speech at 6, meaning at 7.
const referenceFieldCount = 8

const (
	referenceHeadwordIndex     = 1
	referencePartOfSpeechIndex = 6
	referenceMeaningIndex      = 7
)

// ReferenceConfig describes where the bundled reference dictionary lives.
// URL takes precedence over Path when both are set.
type ReferenceConfig struct {
	Path          string
	URL           string
	FetchAttempts uint
}

// ReferenceDictionary looks words up in the static bundled dictionary.
// The source is re-read on every lookup; entries are never cached between
// lookups, so a replaced file takes effect immediately.
type ReferenceDictionary struct {
	config     ReferenceConfig
	httpClient *resty.Client
}

// NewReferenceDictionary creates a ReferenceDictionary for the given source.
func NewReferenceDictionary(config ReferenceConfig) *ReferenceDictionary {
	if config.FetchAttempts == 0 {
		config.FetchAttempts = 3
	}
	return &ReferenceDictionary{
		config:     config,
		httpClient: resty.New(),
	}
}

// Lookup scans the reference dictionary for the first record whose headword
// normalizes to the same key as word. The second return value reports
// whether a match was found; absence is not an error. Records with fewer
// than eight fields are skipped.
func (d *ReferenceDictionary) Lookup(ctx context.Context, word string) (Entry, bool, error) {
	contents, err := d.read(ctx)
	if err != nil {
		return Entry{}, false, fmt.Errorf("d.read() > %w", err)
	}

	query := tongan.Normalize(word)
	lines := strings.Split(contents, "\n")

	// The first line is the header, regardless of its content.
	for _, line := range lines[1:] {
		if err := ctx.Err(); err != nil {
			return Entry{}, false, err
		}

		fields := ParseRecord(line)
		if len(fields) < referenceFieldCount {
			continue
		}

		headword := fields[referenceHeadwordIndex]
		if tongan.Normalize(headword) == query {
			return Entry{
				Word:         headword,
				PartOfSpeech: fields[referencePartOfSpeechIndex],
				Meaning:      fields[referenceMeaningIndex],
			}, true, nil
		}
	}
	return Entry{}, false, nil
}

func (d *ReferenceDictionary) read(ctx context.Context) (string, error) {
	if d.config.URL != "" {
		return d.fetch(ctx)
	}

	contents, err := os.ReadFile(d.config.Path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", d.config.Path, err)
	}
	return string(contents), nil
}

// fetch downloads the reference dictionary over HTTP, retrying transient
// failures with backoff. A 4xx status is not retried.
func (d *ReferenceDictionary) fetch(ctx context.Context) (string, error) {
	var body string
	err := retry.Do(
		func() error {
			res, err := d.httpClient.R().
				SetContext(ctx).
				Get(d.config.URL)
			if err != nil {
				return fmt.Errorf("httpClient.R().Get(%s) > %w", d.config.URL, err)
			}
			if res.StatusCode() != http.StatusOK {
				err := fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
				if res.StatusCode() >= http.StatusBadRequest && res.StatusCode() < http.StatusInternalServerError {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = string(res.Body())
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(d.config.FetchAttempts),
	)
	if err != nil {
		return "", fmt.Errorf("retry.Do > %w", err)
	}
	return body, nil
}

package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	return Config{
		Endpoint: endpoint,
		Key:      "test-key",
		Region:   "test-region",
	}
}

func TestClient_Translate(t *testing.T) {
	tests := []struct {
		name              string
		text              string
		config            func(endpoint string) Config
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want          Result
		wantErr       bool
		checkErr      func(t *testing.T, err error)
		wantNoRequest bool
	}{
		{
			name:   "successful translation",
			text:   "fakamalohi",
			config: testConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/translate", r.URL.Path)
				assert.Equal(t, "3.0", r.URL.Query().Get("api-version"))
				assert.Equal(t, "to", r.URL.Query().Get("from"))
				assert.Equal(t, "en", r.URL.Query().Get("to"))
				assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
				assert.Equal(t, "test-region", r.Header.Get("Ocp-Apim-Subscription-Region"))

				var body []translateRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Len(t, body, 1)
				assert.Equal(t, "fakamalohi", body[0].Text)

				_, _ = w.Write([]byte(`[{"translations":[{"text":"strengthen","to":"en"}]}]`))
			},
			want: Result{Text: "strengthen", To: "en"},
		},
		{
			name:          "empty text fails before any request",
			text:          "",
			config:        testConfig,
			wantErr:       true,
			wantNoRequest: true,
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingText)
			},
		},
		{
			name: "missing configuration fails before any request",
			text: "fakamalohi",
			config: func(endpoint string) Config {
				return Config{Endpoint: endpoint}
			},
			wantErr:       true,
			wantNoRequest: true,
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotConfigured)
			},
		},
		{
			name:   "provider error preserves status and body",
			text:   "fakamalohi",
			config: testConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":401000,"message":"invalid key"}}`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var providerErr *ProviderError
				require.ErrorAs(t, err, &providerErr)
				assert.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
				assert.Contains(t, providerErr.Body, "invalid key")
				assert.False(t, providerErr.Timeout)
			},
		},
		{
			name:   "empty list is a format error",
			text:   "fakamalohi",
			config: testConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var formatErr *FormatError
				assert.ErrorAs(t, err, &formatErr)
			},
		},
		{
			name:   "missing translations is a format error",
			text:   "fakamalohi",
			config: testConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"translations":[]}]`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var formatErr *FormatError
				assert.ErrorAs(t, err, &formatErr)
			},
		},
		{
			name:   "non-json body is a format error not a provider error",
			text:   "fakamalohi",
			config: testConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>gateway</html>`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var formatErr *FormatError
				assert.ErrorAs(t, err, &formatErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
				if tt.mockServerHandler != nil {
					tt.mockServerHandler(t, w, r)
				}
			}))
			defer server.Close()

			client := NewClient(tt.config(server.URL))
			defer func() {
				_ = client.Close()
			}()

			result, err := client.Translate(context.Background(), tt.text)
			if tt.wantErr {
				require.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, result)
			}
			if tt.wantNoRequest {
				assert.Zero(t, requests)
			}
		})
	}
}

func TestClient_TranslateTimeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	config := testConfig(server.URL)
	config.Timeout = 50 * time.Millisecond
	client := NewClient(config)
	defer func() {
		_ = client.Close()
	}()

	_, err := client.Translate(context.Background(), "fakamalohi")
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.True(t, providerErr.Timeout)
}

func TestClient_TranslateCanceled(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(testConfig(server.URL))
	defer func() {
		_ = client.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.Translate(ctx, "fakamalohi")
	require.Error(t, err)
}

package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrape(t *testing.T) {
	t.Run("returns extracted text for a 200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(`<html><body><h1>Front Page</h1><p>news of the day</p></body></html>`))
		}))
		defer server.Close()

		s := NewScraper(5 * time.Second)
		text, err := s.Scrape(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Contains(t, text, "Front Page")
		assert.Contains(t, text, "news of the day")
	})

	t.Run("fails without retry on 404", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		s := NewScraper(5 * time.Second)
		_, err := s.Scrape(context.Background(), server.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code 404")
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("retries transient 500s and succeeds", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requests.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<p>recovered</p>`))
		}))
		defer server.Close()

		s := NewScraper(5 * time.Second)
		text, err := s.Scrape(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "recovered", text)
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		s := NewScraper(5 * time.Second)
		_, err := s.Scrape(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, int32(defaultMaxAttempts), requests.Load())
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		s := NewScraper(5 * time.Second)
		_, err := s.Scrape(ctx, server.URL)
		require.Error(t, err)
	})
}

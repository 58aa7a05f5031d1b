package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "test-token", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing token", func(t *testing.T) {
		_, err := NewClient("test-key", "", logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient("test-key", "test-token", logger)
		require.NoError(t, err)
		assert.Equal(t, defaultBaseURL, client.baseURL)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", "test-token", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", "test-token", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("base url trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient("test-key", "test-token", logger, WithBaseURL("http://localhost:9090/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9090", client.baseURL)
	})
}

func TestSearchMovies(t *testing.T) {
	t.Run("results preserve order", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/movie", r.URL.Path)
			assert.Equal(t, "heat", r.URL.Query().Get("query"))
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			json.NewEncoder(w).Encode(SearchResponse{Results: []Movie{
				{ID: 949, Title: "Heat", ReleaseDate: "1995-12-15"},
				{ID: 10972, Title: "Heat", ReleaseDate: "1986-03-07"},
			}})
		})

		movies, err := client.SearchMovies(context.Background(), "heat")
		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, int64(949), movies[0].ID)
		assert.Equal(t, "Heat (1995)", movies[0].Label())
		assert.Equal(t, int64(10972), movies[1].ID)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := client.SearchMovies(context.Background(), "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query is required")
	})

	t.Run("no results is not an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(SearchResponse{Results: []Movie{}})
		})

		movies, err := client.SearchMovies(context.Background(), "zzzzz")
		require.NoError(t, err)
		assert.Empty(t, movies)
	})

	t.Run("client error classified", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.SearchMovies(context.Background(), "heat")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, CategoryClient, statusErr.Category)
		assert.Equal(t, http.StatusNotFound, statusErr.Code)
	})

	t.Run("server error classified", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.SearchMovies(context.Background(), "heat")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, CategoryServer, statusErr.Category)
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		client, err := NewClient("test-key", "test-token", zerolog.Nop(), WithBaseURL(server.URL))
		require.NoError(t, err)
		server.Close()

		_, err = client.SearchMovies(context.Background(), "heat")
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
	})
}

func TestMovieTitle(t *testing.T) {
	t.Run("title returned verbatim", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/603", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

			json.NewEncoder(w).Encode(Movie{ID: 603, Title: "The Matrix"})
		})

		title, err := client.MovieTitle(context.Background(), 603)
		require.NoError(t, err)
		assert.Equal(t, "The Matrix", title)
	})

	t.Run("missing title yields empty string", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"id": 603})
		})

		title, err := client.MovieTitle(context.Background(), 603)
		require.NoError(t, err)
		assert.Empty(t, title)
	})
}

func TestWatchProviders(t *testing.T) {
	t.Run("region scoped payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/603/watch/providers", r.URL.Path)
			assert.False(t, r.URL.Query().Has("api_key"))

			json.NewEncoder(w).Encode(WatchProvidersResponse{
				ID: 603,
				Results: map[string]RegionOffers{
					"US": {
						Flatrate: []Offer{
							{ProviderID: 8, ProviderName: "Netflix"},
							{ProviderID: 15, ProviderName: "Hulu"},
						},
						Rent: []Offer{{ProviderID: 2, ProviderName: "Apple TV"}},
					},
					"GB": {
						Flatrate: []Offer{{ProviderID: 8, ProviderName: "Netflix"}},
					},
				},
			})
		})

		offers, err := client.WatchProviders(context.Background(), 603, "US")
		require.NoError(t, err)
		require.Len(t, offers.Flatrate, 2)
		assert.Equal(t, "Netflix", offers.Flatrate[0].ProviderName)
		assert.Equal(t, "Hulu", offers.Flatrate[1].ProviderName)
		assert.Len(t, offers.Rent, 1)
	})

	t.Run("absent region yields empty payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(WatchProvidersResponse{
				ID:      603,
				Results: map[string]RegionOffers{"US": {}},
			})
		})

		offers, err := client.WatchProviders(context.Background(), 603, "DE")
		require.NoError(t, err)
		assert.Empty(t, offers.Flatrate)
		assert.Empty(t, offers.Rent)
		assert.Empty(t, offers.Buy)
	})
}

func TestProviders(t *testing.T) {
	t.Run("region filter applied", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/watch/providers/movie", r.URL.Path)
			assert.Equal(t, "en-US", r.URL.Query().Get("language"))
			assert.Equal(t, "US", r.URL.Query().Get("watch_region"))

			json.NewEncoder(w).Encode(ProviderListResponse{Results: []Offer{
				{ProviderID: 8, ProviderName: "Netflix"},
				{ProviderID: 15, ProviderName: "Hulu"},
				{ProviderID: 531, ProviderName: "Paramount Plus"},
			}})
		})

		names, err := client.Providers(context.Background(), "US")
		require.NoError(t, err)
		assert.Equal(t, []string{"Netflix", "Hulu", "Paramount Plus"}, names)
	})

	t.Run("empty region omits filter", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("watch_region"))

			json.NewEncoder(w).Encode(ProviderListResponse{Results: []Offer{}})
		})

		names, err := client.Providers(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

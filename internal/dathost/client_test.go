package dathost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *APIClient {
	c := NewClient("test-user", "test-pass")
	c.BaseURL = serverURL
	return c
}

func TestGetFile(t *testing.T) {
	t.Run("downloads file with basic auth", func(t *testing.T) {
		demo := []byte("HL2DEMO demo bytes")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/game-servers/srv-1/files/abc123.dem", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok, "request must carry basic auth")
			assert.Equal(t, "test-user", user)
			assert.Equal(t, "test-pass", pass)

			w.Write(demo)
		}))
		defer srv.Close()

		data, err := newTestClient(srv.URL).GetFile(context.Background(), "srv-1", "abc123.dem")
		require.NoError(t, err)
		assert.Equal(t, demo, data)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).GetFile(context.Background(), "srv-1", "missing.dem")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestSendConsoleCommand(t *testing.T) {
	t.Run("posts the line as form data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/game-servers/srv-1/console", r.URL.Path)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "mp_pause_match", r.PostFormValue("line"))
		}))
		defer srv.Close()

		err := newTestClient(srv.URL).SendConsoleCommand(context.Background(), "srv-1", "mp_pause_match")
		require.NoError(t, err)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := newTestClient(srv.URL).SendConsoleCommand(context.Background(), "srv-1", "mp_unpause_match")
		require.Error(t, err)
	})
}

func TestStopServer(t *testing.T) {
	t.Run("posts to the stop endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/game-servers/srv-1/stop", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		require.NoError(t, newTestClient(srv.URL).StopServer(context.Background(), "srv-1"))
	})

	t.Run("any non-2xx status fails, even 3xx", func(t *testing.T) {
		for _, status := range []int{http.StatusNotModified, http.StatusBadRequest, http.StatusInternalServerError} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			err := newTestClient(srv.URL).StopServer(context.Background(), "srv-1")
			assert.ErrorIs(t, err, ErrStopServer, "status %d", status)
			srv.Close()
		}
	})
}

func TestSteamIDs(t *testing.T) {
	ev := &MatchEndEvent{
		Players: []PlayerResult{
			{SteamID64: 3},
			{SteamID64: 1},
			{SteamID64: 2},
		},
	}
	assert.Equal(t, []uint64{3, 1, 2}, ev.SteamIDs(), "ids keep event order")
}

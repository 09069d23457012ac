package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestYoutubeChannelLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/channels", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("id") == "UC-missing" {
			_, _ = w.Write([]byte(`{"items":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"UC1","snippet":{"title":"Kênh","customUrl":"@kenh"}}]}`))
	}))
	defer srv.Close()

	yt, err := NewYoutubeService(context.Background(), "test-key", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	info, err := yt.Channel(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Equal(t, "Kênh", info.Title)
	assert.Equal(t, "https://www.youtube.com/@kenh", info.Link)

	_, err = yt.Channel(context.Background(), "UC-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestYoutubeServiceNeedsKey(t *testing.T) {
	_, err := NewYoutubeService(context.Background(), "")
	assert.Error(t, err)
}

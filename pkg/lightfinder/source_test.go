package lightfinder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/catalogues.xlsx"))
	assert.True(t, IsRemote("HTTP://example.com/c.xlsx"))
	assert.False(t, IsRemote("data/catalogues.xlsx"))
}

func TestFetch(t *testing.T) {
	data := testWorkbookBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/catalogues.xlsx" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	opts := Options{SkipImages: true, FetchTimeout: 5 * time.Second}

	cat, err := Open(context.Background(), srv.URL+"/files/catalogues.xlsx", opts)
	require.NoError(t, err)
	assert.Equal(t, "catalogues.xlsx", cat.BookName)
	assert.Len(t, cat.Fixtures, 4)

	_, err = Fetch(context.Background(), srv.URL+"/missing.xlsx", opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

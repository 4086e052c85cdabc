package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownloadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schema.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"type": "string"}`))
	}))
	defer server.Close()

	client := NewDownloadClient().SetRetryCount(0)

	data, err := DownloadFile(context.Background(), client, server.URL+"/schema.json")
	require.NoError(t, err)
	require.Equal(t, `{"type": "string"}`, string(data))

	_, err = DownloadFile(context.Background(), client, server.URL+"/missing.json")
	require.Error(t, err)
}

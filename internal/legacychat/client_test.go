package legacychat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskEncodesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "price & specs?", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"response":"Here you go"}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL+"/", time.Second).Ask(context.Background(), "price & specs?")
	require.NoError(t, err)
	require.Equal(t, "Here you go", got)
}

func TestReplyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	got := NewClient(srv.URL, time.Second).Reply(context.Background(), "hi")
	require.Equal(t, FallbackReply, got)
}

func TestReplyIgnoresBlankQuery(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	require.Empty(t, NewClient(srv.URL, time.Second).Reply(context.Background(), "  "))
	require.False(t, called)
}

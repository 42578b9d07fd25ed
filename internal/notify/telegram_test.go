package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ps-vitor/ss-monitor/internal/notify"
)

func TestNotifyPostsToSendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := notify.NewTelegram("token123", "chat456", notify.WithBaseURL(srv.URL))

	err := tg.Notify(context.Background(), "🏠 Māja\n📍 Bieriņi\n💰 95000 €\n🔗 https://www.ss.lv/msg/x.html")
	require.NoError(t, err)

	assert.Equal(t, "/bottoken123/sendMessage", gotPath)
	assert.Equal(t, "chat456", gotBody["chat_id"])
	assert.Contains(t, gotBody["text"], "💰 95000 €")
}

func TestNotifyNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"Bad Request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	tg := notify.NewTelegram("token123", "chat456", notify.WithBaseURL(srv.URL))

	err := tg.Notify(context.Background(), "text")
	assert.ErrorContains(t, err, "telegram status 400")
}

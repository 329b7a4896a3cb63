package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strompris/internal/cache"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCache(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "prices:agg:7", cache.Entry{StoredAt: time.Now(), Value: []byte(`{}`)}))

	router := gin.New()
	router.POST("/cache/clear", NewCacheHandler(cache.NewService(store)).ClearCache)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/cache/clear", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	_, found, err := store.Get(ctx, "prices:agg:7")
	require.NoError(t, err)
	assert.False(t, found, "clear must drop stale fallback entries too")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempCacheKey = "idemp:/attendance/clock-in:user-1:abc"
	idempLockKey  = idempCacheKey + ":lock"
)

func newIdempotencyRouter(t *testing.T, status int, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/attendance/clock-in", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, Idempotency(rdb), func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"id": "x"})
	})
	return r, mock
}

func postClockIn(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/attendance/clock-in", nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_FirstRequestIsCached(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(t, http.StatusCreated, &calls)

	mock.ExpectGet(idempCacheKey).RedisNil()
	mock.ExpectSetNX(idempLockKey, "locked", idempotencyLockTTL).SetVal(true)
	mock.ExpectSet(idempCacheKey, `{"status":201,"body":{"id":"x"}}`, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(idempLockKey).SetVal(1)

	w := postClockIn(r, "abc")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(t, http.StatusCreated, &calls)

	mock.ExpectGet(idempCacheKey).SetVal(`{"status":201,"body":{"id":"x"}}`)

	w := postClockIn(r, "abc")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"x"}`, w.Body.String())
	assert.Equal(t, "true", w.Header().Get(HeaderIdempotentHit))
	assert.Zero(t, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentRequestGetsConflict(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(t, http.StatusCreated, &calls)

	mock.ExpectGet(idempCacheKey).RedisNil()
	mock.ExpectSetNX(idempLockKey, "locked", idempotencyLockTTL).SetVal(false)

	w := postClockIn(r, "abc")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Zero(t, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FailuresAreNotCached(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(t, http.StatusBadRequest, &calls)

	mock.ExpectGet(idempCacheKey).RedisNil()
	mock.ExpectSetNX(idempLockKey, "locked", idempotencyLockTTL).SetVal(true)
	mock.ExpectDel(idempLockKey).SetVal(1)

	w := postClockIn(r, "abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(t, http.StatusCreated, &calls)

	w := postClockIn(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

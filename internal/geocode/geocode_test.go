package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrportal/internal/geocode"

	"github.com/stretchr/testify/assert"
)

func TestNominatimClient_Reverse(t *testing.T) {
	t.Run("returns display name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reverse", r.URL.Path)
			assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
			assert.Equal(t, "-6.2088000", r.URL.Query().Get("lat"))
			assert.Equal(t, "106.8456000", r.URL.Query().Get("lon"))
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"display_name":"Jalan Jenderal Sudirman, Jakarta Pusat"}`))
		}))
		defer srv.Close()

		client := geocode.NewNominatimClient(srv.URL+"/", time.Second)
		addr, err := client.Reverse(context.Background(), -6.2088, 106.8456)

		assert.NoError(t, err)
		assert.Equal(t, "Jalan Jenderal Sudirman, Jakarta Pusat", addr)
	})

	t.Run("no address", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
		}))
		defer srv.Close()

		_, err := geocode.NewNominatimClient(srv.URL, time.Second).Reverse(context.Background(), 0, 0)

		assert.ErrorIs(t, err, geocode.ErrNoAddress)
	})

	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := geocode.NewNominatimClient(srv.URL, time.Second).Reverse(context.Background(), 0, 0)

		assert.ErrorContains(t, err, "unexpected status 429")
	})
}

func TestNop(t *testing.T) {
	_, err := geocode.Nop().Reverse(context.Background(), 1, 2)
	assert.ErrorIs(t, err, geocode.ErrNoAddress)
}

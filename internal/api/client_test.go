package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL + "/api/", Token: token})
	require.NoError(t, err)
	return c
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "/api"})
	require.Error(t, err)
}

func TestPortfolioSummary(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/summary", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"total_windfarms":3,"total_capacity_mw":1250.5,"operational_count":2}`))
	})

	got, err := c.PortfolioSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalWindfarms)
	assert.Equal(t, 1250.5, got.TotalCapacityMW)
	assert.Equal(t, 2, got.OperationalCount)
}

func TestRecentWindfarms(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/windfarms/recent", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":1,"name":"Hornsea One","status":"operational"},{"id":2,"name":"Walney","status":"maintenance"}]`))
	})

	got, err := c.RecentWindfarms(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Hornsea One", got[0].Name)
	assert.Equal(t, "maintenance", got[1].Status)
}

func TestWindfarmWithOwners(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/windfarms/7/owners", r.URL.Path)
		w.Write([]byte(`{"id":7,"name":"Gode Wind","owners":[{"owner":{"id":1,"name":"Orsted"},"ownership_percentage":50}]}`))
	})

	got, err := c.WindfarmWithOwners(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	require.Len(t, got.Owners, 1)
	assert.Equal(t, "Orsted", got.Owners[0].Owner.Name)
	assert.Equal(t, 50.0, got.Owners[0].OwnershipPercent)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		check func(t *testing.T, err error)
	}{
		{
			name: "unauthorized",
			code: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnauthorized)
			},
		},
		{
			name: "not found",
			code: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.True(t, se.NotFound())
				assert.Equal(t, "missing", se.Body)
			},
		},
		{
			name: "server error",
			code: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusBadGateway, se.Code)
				assert.Contains(t, se.Error(), "502")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "missing", tt.code)
			})
			_, err := c.WindfarmWithOwners(context.Background(), 1)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestDecodeError(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding /auth/me")
}

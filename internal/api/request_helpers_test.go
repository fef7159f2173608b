package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathUUID(t *testing.T) {
	id := uuid.New()

	t.Run("valid", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
		got, err := getPathUUID(req, "id")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("malformed", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "not-a-uuid")
		_, err := getPathUUID(req, "id")
		assert.True(t, errors.Is(err, domain.ErrInvalidID))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := getPathUUID(httptest.NewRequest(http.MethodGet, "/", nil), "id")
		assert.True(t, errors.Is(err, domain.ErrInvalidID))
	})
}

func TestParseTaskQuery(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name          string
		rawQuery      string
		wantCompleted *bool
		wantPriority  string
		wantCategory  string
		wantSortBy    string
		wantOrder     store.SortOrder
		wantPage      int
		wantLimit     int
	}{
		{
			name:       "defaults",
			rawQuery:   "",
			wantSortBy: store.SortByCreatedAt,
			wantOrder:  store.SortDesc,
			wantPage:   1,
			wantLimit:  10,
		},
		{
			name:          "all options",
			rawQuery:      "completed=true&priority=high&category=work&sortBy=dueDate&order=asc&page=2&limit=25",
			wantCompleted: boolPtr(true),
			wantPriority:  "high",
			wantCategory:  "work",
			wantSortBy:    store.SortByDueDate,
			wantOrder:     store.SortAsc,
			wantPage:      2,
			wantLimit:     25,
		},
		{
			name:          "completed other than true means false",
			rawQuery:      "completed=yes",
			wantCompleted: boolPtr(false),
			wantSortBy:    store.SortByCreatedAt,
			wantOrder:     store.SortDesc,
			wantPage:      1,
			wantLimit:     10,
		},
		{
			name:       "unknown sort field and bad numbers fall back",
			rawQuery:   "sortBy=password&order=sideways&page=abc&limit=-4",
			wantSortBy: store.SortByCreatedAt,
			wantOrder:  store.SortDesc,
			wantPage:   1,
			wantLimit:  10,
		},
		{
			name:       "limit is capped",
			rawQuery:   "limit=5000",
			wantSortBy: store.SortByCreatedAt,
			wantOrder:  store.SortDesc,
			wantPage:   1,
			wantLimit:  store.MaxLimit,
		},
		{
			name:       "huge page is capped",
			rawQuery:   "page=500000000000000001&limit=20",
			wantSortBy: store.SortByCreatedAt,
			wantOrder:  store.SortDesc,
			wantPage:   math.MaxInt / 20,
			wantLimit:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/tasks?"+tt.rawQuery, nil)
			q := parseTaskQuery(req)

			assert.Equal(t, tt.wantCompleted, q.Completed)
			if tt.wantPriority == "" {
				assert.Nil(t, q.Priority)
			} else {
				require.NotNil(t, q.Priority)
				assert.Equal(t, domain.Priority(tt.wantPriority), *q.Priority)
			}
			if tt.wantCategory == "" {
				assert.Nil(t, q.Category)
			} else {
				require.NotNil(t, q.Category)
				assert.Equal(t, tt.wantCategory, *q.Category)
			}
			assert.Equal(t, tt.wantSortBy, q.SortBy)
			assert.Equal(t, tt.wantOrder, q.Order)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

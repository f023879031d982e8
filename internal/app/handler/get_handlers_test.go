package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/middleware"
	"github.com/atinyakov/url-cutter/internal/mocks"
	"github.com/atinyakov/url-cutter/internal/models"
	"github.com/atinyakov/url-cutter/internal/storage"
)

const testBaseURL = "http://localhost:8080"

func withCode(req *http.Request, code string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{"code"},
			Values: []string{code},
		},
	}))
}

func createTestHandler(mockService *mocks.MockURLServiceIface) *GetHandler {
	logger, _ := zap.NewDevelopment()
	return NewGet(testBaseURL, mockService, logger)
}

func TestByShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	handler := createTestHandler(mockService)

	tests := []struct {
		name         string
		code         string
		target       string
		mockErr      error
		expectedCode int
	}{
		{"valid code", "abc123", "https://example.com", nil, http.StatusTemporaryRedirect},
		{"unknown or expired", "unknown", "", service.ErrNotFound, http.StatusNotFound},
		{"store down", "abc123", "", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.EXPECT().Resolve(gomock.Any(), tt.code).Return(tt.target, tt.mockErr)

			req := withCode(httptest.NewRequest(http.MethodGet, "/"+tt.code, nil), tt.code)
			w := httptest.NewRecorder()

			handler.ByShort(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			if tt.mockErr == nil {
				assert.Equal(t, tt.target, resp.Header.Get("Location"))
			}
		})
	}
}

func TestPingDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	handler := createTestHandler(mockService)

	mockService.EXPECT().PingContext(gomock.Any()).Return(nil)
	w := httptest.NewRecorder()
	handler.PingDB(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().PingContext(gomock.Any()).Return(errors.New("db down"))
	w = httptest.NewRecorder()
	handler.PingDB(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestInfoAndStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	handler := createTestHandler(mockService)

	uid := int64(1)
	caller := service.Authenticated{UserID: uid}
	link := &storage.Link{ID: 5, ShortCode: "abc", OriginalURL: "https://example.com", UserID: &uid, Clicks: 9, CreatedAt: time.Now()}

	mockService.EXPECT().GetLink(gomock.Any(), "abc", caller).Return(link, nil).Times(2)

	req := middleware.InjectIdentity(withCode(httptest.NewRequest(http.MethodGet, "/links/abc", nil), "abc"), caller)
	w := httptest.NewRecorder()
	handler.Info(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var info models.LinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "http://localhost:8080/abc", info.ShortURL)
	assert.Equal(t, int64(5), info.ID)

	w = httptest.NewRecorder()
	handler.Stats(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(9), stats.Clicks)

	mockService.EXPECT().GetLink(gomock.Any(), "abc", service.Anonymous{}).Return(nil, service.ErrForbidden)
	w = httptest.NewRecorder()
	handler.Stats(w, withCode(httptest.NewRequest(http.MethodGet, "/links/abc/stats", nil), "abc"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	handler := createTestHandler(mockService)

	found := []storage.Link{{ID: 1, ShortCode: "aaa", IsAnonymous: true}}

	mockService.EXPECT().SearchByURL(gomock.Any(), "https://example.com", service.Anonymous{}).Return(found, nil).Times(2)

	for _, target := range []string{"/links/search?url=https://example.com", "/links/search?original_url=https://example.com"} {
		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var items []models.SearchItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "http://localhost:8080/aaa", items[0].ShortURL)
	}

	mockService.EXPECT().SearchByURL(gomock.Any(), "", service.Anonymous{}).Return(nil, service.ErrInvalidInput)
	w := httptest.NewRecorder()
	handler.Search(w, httptest.NewRequest(http.MethodGet, "/links/search", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	handler := createTestHandler(mockService)
	caller := service.Authenticated{UserID: 2}

	mockService.EXPECT().ListByOwner(gomock.Any(), caller, 10, 100).Return([]storage.Link{{ID: 11, ShortCode: "x"}}, int64(11), nil)

	req := middleware.InjectIdentity(httptest.NewRequest(http.MethodGet, "/links?skip=10&limit=500", nil), caller)
	w := httptest.NewRecorder()
	handler.ListMine(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "11", w.Header().Get("X-Total-Count"))

	w = httptest.NewRecorder()
	handler.ListMine(w, middleware.InjectIdentity(httptest.NewRequest(http.MethodGet, "/links?skip=abc", nil), caller))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInternalStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	handler := createTestHandler(mockService)

	mockService.EXPECT().GetStats(gomock.Any()).Return(&storage.Stats{Links: 4, Users: 2}, nil)

	w := httptest.NewRecorder()
	handler.InternalStats(w, httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"links":4,"users":2}`, w.Body.String())
}

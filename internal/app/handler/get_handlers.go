package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/middleware"
	"github.com/atinyakov/url-cutter/internal/models"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

type GetHandler struct {
	baseURL string
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewGet(baseURL string, s service.URLServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		baseURL: baseURL,
		service: s,
		logger:  l,
	}
}

// ByShort handles GET /{code} with a temporary redirect.
func (h *GetHandler) ByShort(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	ctx, cancel := withTimeout(req)
	defer cancel()

	target, err := h.service.Resolve(ctx, code)
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	res.Header().Set("Location", target)
	res.WriteHeader(http.StatusTemporaryRedirect)
}

func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := withTimeout(req)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		h.logger.Error("store ping failed", zap.Error(err))
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Info handles GET /links/{code}.
func (h *GetHandler) Info(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := withTimeout(req)
	defer cancel()

	link, err := h.service.GetLink(ctx, chi.URLParam(req, "code"), middleware.IdentityFrom(req.Context()))
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.NewLinkResponse(link, h.baseURL), h.logger)
}

// Stats handles GET /links/{code}/stats.
func (h *GetHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := withTimeout(req)
	defer cancel()

	link, err := h.service.GetLink(ctx, chi.URLParam(req, "code"), middleware.IdentityFrom(req.Context()))
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.NewStatsResponse(link, h.baseURL), h.logger)
}

// Search handles GET /links/search?url=.
func (h *GetHandler) Search(res http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	original := q.Get("url")
	if original == "" {
		original = q.Get("original_url")
	}

	ctx, cancel := withTimeout(req)
	defer cancel()

	links, err := h.service.SearchByURL(ctx, original, middleware.IdentityFrom(req.Context()))
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.NewSearchItems(links, h.baseURL), h.logger)
}

// ListMine handles GET /links for an authenticated caller.
func (h *GetHandler) ListMine(res http.ResponseWriter, req *http.Request) {
	skip, err := queryInt(req, "skip", 0)
	if err != nil {
		writeError(res, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	limit, err := queryInt(req, "limit", defaultPageLimit)
	if err != nil {
		writeError(res, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	ctx, cancel := withTimeout(req)
	defer cancel()

	links, total, err := h.service.ListByOwner(ctx, middleware.IdentityFrom(req.Context()), skip, limit)
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	res.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	writeJSON(res, http.StatusOK, models.NewLinkResponses(links, h.baseURL), h.logger)
}

// InternalStats handles GET /api/internal/stats.
func (h *GetHandler) InternalStats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := withTimeout(req)
	defer cancel()

	stats, err := h.service.GetStats(ctx)
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.InternalStats{Links: stats.Links, Users: stats.Users}, h.logger)
}

func queryInt(req *http.Request, name string, def int) (int, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &malformedRequest{status: http.StatusBadRequest, msg: name + " must be an integer"}
	}
	return n, nil
}

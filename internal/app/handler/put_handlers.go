package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/middleware"
	"github.com/atinyakov/url-cutter/internal/models"
)

type PutHandler struct {
	baseURL string
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewPut(baseURL string, s service.URLServiceIface, l *zap.Logger) *PutHandler {
	return &PutHandler{
		baseURL: baseURL,
		service: s,
		logger:  l,
	}
}

// Update handles PUT /links/{code}.
func (h *PutHandler) Update(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	var request models.UpdateRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeBodyError(res, req, err, h.logger)
		return
	}

	ctx, cancel := withTimeout(req)
	defer cancel()

	link, err := h.service.Update(ctx, code, middleware.IdentityFrom(req.Context()), service.UpdateParams{
		OriginalURL: request.OriginalURL,
		ExpiresAt:   request.ExpiresAt,
	})
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.NewLinkResponse(link, h.baseURL), h.logger)
}

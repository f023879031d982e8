package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/middleware"
	"github.com/atinyakov/url-cutter/internal/models"
)

type DeleteHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewDelete(s service.URLServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// Delete handles DELETE /links/{code}.
func (h *DeleteHandler) Delete(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	ctx, cancel := withTimeout(req)
	defer cancel()

	if err := h.service.Delete(ctx, code, middleware.IdentityFrom(req.Context())); err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

// SweepExpired handles DELETE /links/expired. Superusers only.
func (h *DeleteHandler) SweepExpired(res http.ResponseWriter, req *http.Request) {
	if !service.CanSweep(middleware.IdentityFrom(req.Context())) {
		writeServiceError(res, req, service.ErrForbidden, h.logger)
		return
	}

	ctx, cancel := withTimeout(req)
	defer cancel()

	n, err := h.service.SweepExpired(ctx)
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.SweepResponse{Deleted: n}, h.logger)
}

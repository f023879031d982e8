package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/middleware"
	"github.com/atinyakov/url-cutter/internal/models"
)

type PostHandler struct {
	baseURL string
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewPost(baseURL string, s service.URLServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		baseURL: baseURL,
		service: s,
		logger:  l,
	}
}

// Shorten handles POST /links/shorten.
func (h *PostHandler) Shorten(res http.ResponseWriter, req *http.Request) {
	var request models.CreateRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeBodyError(res, req, err, h.logger)
		return
	}

	params := service.CreateParams{
		OriginalURL: request.OriginalURL,
		ExpiresAt:   request.ExpiresAt,
	}
	if request.CustomAlias != nil {
		params.CustomAlias = *request.CustomAlias
	}

	ctx, cancel := withTimeout(req)
	defer cancel()

	link, err := h.service.Create(ctx, params, middleware.IdentityFrom(req.Context()))
	if err != nil {
		writeServiceError(res, req, err, h.logger)
		return
	}

	h.logger.Info("link created", zap.String("short_code", link.ShortCode), zap.Bool("anonymous", link.IsAnonymous))
	writeJSON(res, http.StatusCreated, models.NewLinkResponse(link, h.baseURL), h.logger)
}

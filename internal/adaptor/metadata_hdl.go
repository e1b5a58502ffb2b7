package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MetadataHandler struct {
	service usecase.MetadataService
	log     *zap.Logger
}

func NewMetadataHandler(service usecase.MetadataService, log *zap.Logger) *MetadataHandler {
	return &MetadataHandler{
		service: service,
		log:     log.With(zap.String("handler", "metadata")),
	}
}

// Search handles GET /api/metadata/search?q= (public)
func (h *MetadataHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search metadata")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

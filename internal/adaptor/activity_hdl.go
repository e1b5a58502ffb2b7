package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

// ListRecent handles GET /api/admin/activities?limit= (admin)
func (h *ActivityHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), usecase.DefaultActivityLimit)

	activities, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.log, err, "list activities")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMetadata(r chi.Router, metadataHandler *adaptor.MetadataHandler) {
	r.Get("/api/metadata/search", metadataHandler.Search) // ?q=
}

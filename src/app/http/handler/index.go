package handler

import (
	"github.com/gin-gonic/gin"

	"jokebox/src/app/http/dto"
	"jokebox/src/app/http/response"
)

// IndexHandler lists the public endpoints.
type IndexHandler struct {
	endpoints []dto.Endpoint
}

// NewIndexHandler creates an IndexHandler advertising endpoints.
func NewIndexHandler(endpoints []dto.Endpoint) *IndexHandler {
	return &IndexHandler{endpoints: endpoints}
}

// Index returns a short description of the API.
// GET /
func (h *IndexHandler) Index(c *gin.Context) {
	response.OK(c, dto.IndexResponse{
		Message:   "jokebox API",
		Endpoints: h.endpoints,
	})
}

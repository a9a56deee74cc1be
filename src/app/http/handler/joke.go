package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"jokebox/src/app/http/dto"
	"jokebox/src/app/http/response"
	"jokebox/src/app/middleware"
	"jokebox/src/core/usecase"
)

// MessageJokeCreated confirms a successful POST /items.
const MessageJokeCreated = "joke created"

// JokeHandler handles the /items endpoints.
type JokeHandler struct {
	jokeService *usecase.JokeService
}

// NewJokeHandler creates a new JokeHandler.
func NewJokeHandler(jokeService *usecase.JokeService) *JokeHandler {
	return &JokeHandler{jokeService: jokeService}
}

// List returns every joke in id order.
// GET /items
func (h *JokeHandler) List(c *gin.Context) {
	jokes, err := h.jokeService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.JokesFromDomain(jokes))
}

// Get returns one joke. A non-numeric id cannot match a joke, so it is a 404
// like any other unknown id.
// GET /items/:id
func (h *JokeHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, response.MessageNotFound, requestID)
		return
	}

	joke, err := h.jokeService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.OK(c, dto.JokeFromDomain(joke))
}

// Random returns a randomly chosen joke.
// GET /items/random
func (h *JokeHandler) Random(c *gin.Context) {
	joke, err := h.jokeService.Random(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.JokeFromDomain(joke))
}

// Create validates, sanitizes and stores a new joke.
// POST /items
func (h *JokeHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateJokeRequest
	// An empty body is treated as an object with both fields missing.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "request body must be a JSON object with string fields question and answer", requestID)
		return
	}

	joke, err := h.jokeService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, dto.CreateJokeResponse{
		Message: MessageJokeCreated,
		Joke:    dto.JokeFromDomain(joke),
	})
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/src/app/http/dto"
	"gamestore/src/app/http/request"
	"gamestore/src/app/http/response"
	"gamestore/src/app/middleware"
	"gamestore/src/core/usecase"
)

// GameHandler serves the /games and /categories routes.
type GameHandler struct {
	catalog *usecase.CatalogService
}

func NewGameHandler(catalog *usecase.CatalogService) *GameHandler {
	return &GameHandler{catalog: catalog}
}

// List returns every game as a summary.
// GET /games
func (h *GameHandler) List(c *gin.Context) {
	items, err := h.catalog.ListGames(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out, err := dto.GameSummariesFromDomain(items)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one game as a detail.
// GET /games/:id
func (h *GameHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	g, err := h.catalog.GetGame(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	c.JSON(http.StatusOK, dto.GameDetailFromDomain(*g))
}

// Create stores a new game and points Location at it.
// POST /games
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	g, err := req.ToDomain()
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	created, err := h.catalog.CreateGame(c.Request.Context(), g)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, fmt.Sprintf("/games/%d", created.ID), dto.GameDetailFromDomain(*created))
}

// Update replaces a game.
// PUT /games/:id
func (h *GameHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateGameRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	g, err := req.ToDomain(id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	if err := h.catalog.UpdateGame(c.Request.Context(), id, g); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// Delete removes a game; unknown ids still answer 204.
// DELETE /games/:id
func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteGame(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// Categories lists the fixed category set.
// GET /categories
func (h *GameHandler) Categories(c *gin.Context) {
	cats, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesFromDomain(cats))
}

package v1

import (
	"net/http"
	"strings"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(protected *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &SearchHandler{searchUC: searchUC}

	// The query is the rest of the path, so spaces and slashes survive.
	protected.GET("/search/*query", handler.Search)
}

// Search godoc
// @Summary      Search profiles, jobs, skills and locations
// @Description  One flat list tagged by facet, ordered full names, job positions, skills, countries. An empty query matches everything.
// @Tags         search
// @Produce      json
// @Param        query  path      string  true  "Search query"
// @Success      200    {object}  response.Response
// @Router       /search/{query} [get]
// @Security     BearerAuth
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimPrefix(c.Param("query"), "/")

	results, err := h.searchUC.Search(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search results retrieved", results)
}

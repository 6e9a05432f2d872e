package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connectionUC domain.ConnectionUsecase
}

func NewConnectionHandler(protected *gin.RouterGroup, connectionUC domain.ConnectionUsecase) {
	handler := &ConnectionHandler{connectionUC: connectionUC}

	protected.POST("/connect", handler.Connect)
	protected.POST("/deconnect", handler.Disconnect)
}

type ConnectionRequest struct {
	First  string `json:"first" binding:"required"`
	Second string `json:"second" binding:"required"`
}

// Connect godoc
// @Summary      Connect two profiles
// @Description  Both directions of the edge are written atomically
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        body  body      ConnectionRequest  true  "Connection JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /connect [post]
// @Security     BearerAuth
func (h *ConnectionHandler) Connect(c *gin.Context) {
	var req ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.connectionUC.Connect(c.Request.Context(), req.First, req.Second); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profiles connected", nil)
}

// Disconnect godoc
// @Summary      Disconnect two profiles
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        body  body      ConnectionRequest  true  "Connection JSON"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /deconnect [post]
// @Security     BearerAuth
func (h *ConnectionHandler) Disconnect(c *gin.Context) {
	var req ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.connectionUC.Disconnect(c.Request.Context(), req.First, req.Second); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profiles disconnected", nil)
}

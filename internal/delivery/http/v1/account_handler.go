package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUC domain.AccountUsecase
}

func NewAccountHandler(public *gin.RouterGroup, protected *gin.RouterGroup, accountLimiter gin.HandlerFunc, accountUC domain.AccountUsecase) {
	handler := &AccountHandler{accountUC: accountUC}

	public.POST("/forgot-password", accountLimiter, handler.ForgotPassword)
	public.POST("/reset-password", accountLimiter, handler.ResetPassword)

	protected.POST("/send-invite", handler.SendInvite)
}

type SendInviteRequest struct {
	Email string `json:"email" binding:"required"`
	Link  string `json:"link" binding:"required"`
}

// SendInvite godoc
// @Summary      Invite someone by email
// @Description  Sends a registration invite signed with the inviter's preferred name
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      SendInviteRequest  true  "Invite JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /send-invite [post]
// @Security     BearerAuth
func (h *AccountHandler) SendInvite(c *gin.Context) {
	var req SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	if err := h.accountUC.SendInvite(c.Request.Context(), acting, req.Email, req.Link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Invite sent", nil)
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
	Link  string `json:"link" binding:"required"`
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Emails a single-use reset link for the account behind the address
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      ForgotPasswordRequest  true  "Reset request JSON"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /forgot-password [post]
func (h *AccountHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.accountUC.RequestPasswordReset(c.Request.Context(), req.Email, req.Link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password reset email sent", nil)
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPassword godoc
// @Summary      Reset a password with an emailed token
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      ResetPasswordRequest  true  "Reset JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /reset-password [post]
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.accountUC.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password reset", nil)
}

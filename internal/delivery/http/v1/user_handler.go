package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC    domain.UserUsecase
	accountUC domain.AccountUsecase
}

func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, accountLimiter gin.HandlerFunc, userUC domain.UserUsecase, accountUC domain.AccountUsecase) {
	handler := &UserHandler{userUC: userUC, accountUC: accountUC}

	// Registration and password change stay unauthenticated: the first has
	// no account yet, the second proves the current password itself and
	// doubles as the way to obtain a fresh token.
	public.POST("/users", accountLimiter, handler.Register)
	public.POST("/users/:username/change-password", accountLimiter, handler.ChangePassword)

	users := protected.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:username", handler.Get)
		users.PUT("/:username", handler.Update)
		users.DELETE("/:username", handler.Delete)
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	ProfileID int64  `json:"profile_id"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account together with an empty profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "User JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, profileID, err := h.userUC.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered", RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ProfileID: profileID,
	})
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", users)
}

// Get godoc
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /users/{username} [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userUC.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

type UpdateUserRequest struct {
	Email string `json:"email" binding:"required"`
}

// Update godoc
// @Summary      Update a user's email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string             true  "Username"
// @Param        user      body      UpdateUserRequest  true  "User JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /users/{username} [put]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	user, err := h.userUC.UpdateUser(c.Request.Context(), acting, c.Param("username"), req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// Delete godoc
// @Summary      Delete a user and everything it owns
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /users/{username} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	acting := c.GetString(string(domain.KeyUsername))
	if err := h.userUC.DeleteUser(c.Request.Context(), acting, c.Param("username")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

type ChangePasswordRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword godoc
// @Summary      Change a user's password
// @Description  Verifies the current password and returns a fresh session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string                 true  "Username"
// @Param        body      body      ChangePasswordRequest  true  "Password JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /users/{username}/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, err := h.accountUC.ChangePassword(c.Request.Context(), c.Param("username"), req.Password, req.NewPassword)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed", gin.H{"token": token})
}

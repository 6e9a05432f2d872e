package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmploymentHandler struct {
	employmentUC domain.EmploymentUsecase
}

func NewEmploymentHandler(protected *gin.RouterGroup, employmentUC domain.EmploymentUsecase) {
	handler := &EmploymentHandler{employmentUC: employmentUC}

	employment := protected.Group("/profiles/:username/employment")
	{
		employment.GET("", handler.List)
		employment.POST("", handler.Create)
		employment.GET("/:id", handler.Get)
		employment.PUT("/:id", handler.Update)
		employment.DELETE("/:id", handler.Delete)
	}
}

type EmploymentRequest struct {
	Location     string `json:"location" binding:"required"`
	Employer     string `json:"employer" binding:"required"`
	Role         string `json:"role" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date"`
	Achievements string `json:"achievements"`
}

func (r *EmploymentRequest) toDomain() (*domain.EmploymentDescription, error) {
	start, err := parseDate(r.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(r.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	return &domain.EmploymentDescription{
		Location:     r.Location,
		Employer:     r.Employer,
		Role:         r.Role,
		StartDate:    start,
		EndDate:      end,
		Achievements: r.Achievements,
	}, nil
}

// List godoc
// @Summary      List a profile's employment history
// @Tags         employment
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Router       /profiles/{username}/employment [get]
// @Security     BearerAuth
func (h *EmploymentHandler) List(c *gin.Context) {
	entries, err := h.employmentUC.ListEmployment(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employment history retrieved", entries)
}

// Get godoc
// @Summary      Get one employment entry
// @Tags         employment
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        id        path      int     true  "Entry ID"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/employment/{id} [get]
// @Security     BearerAuth
func (h *EmploymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.employmentUC.GetEmployment(c.Request.Context(), c.Param("username"), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employment entry retrieved", entry)
}

// Create godoc
// @Summary      Add an employment entry
// @Tags         employment
// @Accept       json
// @Produce      json
// @Param        username  path      string             true  "Username"
// @Param        body      body      EmploymentRequest  true  "Employment JSON"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /profiles/{username}/employment [post]
// @Security     BearerAuth
func (h *EmploymentHandler) Create(c *gin.Context) {
	var req EmploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.employmentUC.CreateEmployment(c.Request.Context(), c.Param("username"), entry); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Employment entry created", entry)
}

// Update godoc
// @Summary      Update an employment entry
// @Tags         employment
// @Accept       json
// @Produce      json
// @Param        username  path      string             true  "Username"
// @Param        id        path      int                true  "Entry ID"
// @Param        body      body      EmploymentRequest  true  "Employment JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/employment/{id} [put]
// @Security     BearerAuth
func (h *EmploymentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EmploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}
	entry.ID = id

	if err := h.employmentUC.UpdateEmployment(c.Request.Context(), c.Param("username"), entry); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employment entry updated", entry)
}

// Delete godoc
// @Summary      Delete an employment entry
// @Tags         employment
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        id        path      int     true  "Entry ID"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/employment/{id} [delete]
// @Security     BearerAuth
func (h *EmploymentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.employmentUC.DeleteEmployment(c.Request.Context(), c.Param("username"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employment entry deleted", nil)
}

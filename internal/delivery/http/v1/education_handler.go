package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(protected *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	education := protected.Group("/profiles/:username/education")
	{
		education.GET("", handler.List)
		education.POST("", handler.Create)
		education.GET("/:id", handler.Get)
		education.PUT("/:id", handler.Update)
		education.DELETE("/:id", handler.Delete)
	}
}

type EducationRequest struct {
	Institution     string `json:"institution" binding:"required"`
	Degree          string `json:"degree" binding:"required"`
	DateStarted     string `json:"date_started" binding:"required"`
	DateAttained    string `json:"date_attained"`
	Achievements    string `json:"achievements"`
	FieldOfStudy    string `json:"field_of_study"`
	ExtraActivities string `json:"extra_activities"`
	Description     string `json:"description"`
}

func (r *EducationRequest) toDomain() (*domain.EducationDescription, error) {
	started, err := parseDate(r.DateStarted, "date_started")
	if err != nil {
		return nil, err
	}
	attained, err := parseOptionalDate(r.DateAttained, "date_attained")
	if err != nil {
		return nil, err
	}
	return &domain.EducationDescription{
		Institution:     r.Institution,
		Degree:          r.Degree,
		DateStarted:     started,
		DateAttained:    attained,
		Achievements:    r.Achievements,
		FieldOfStudy:    r.FieldOfStudy,
		ExtraActivities: r.ExtraActivities,
		Description:     r.Description,
	}, nil
}

// List godoc
// @Summary      List a profile's education history
// @Tags         education
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Router       /profiles/{username}/education [get]
// @Security     BearerAuth
func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.educationUC.ListEducation(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education history retrieved", entries)
}

// Get godoc
// @Summary      Get one education entry
// @Tags         education
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        id        path      int     true  "Entry ID"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/education/{id} [get]
// @Security     BearerAuth
func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.educationUC.GetEducation(c.Request.Context(), c.Param("username"), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education entry retrieved", entry)
}

// Create godoc
// @Summary      Add an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        username  path      string            true  "Username"
// @Param        body      body      EducationRequest  true  "Education JSON"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /profiles/{username}/education [post]
// @Security     BearerAuth
func (h *EducationHandler) Create(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.educationUC.CreateEducation(c.Request.Context(), c.Param("username"), entry); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education entry created", entry)
}

// Update godoc
// @Summary      Update an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        username  path      string            true  "Username"
// @Param        id        path      int               true  "Entry ID"
// @Param        body      body      EducationRequest  true  "Education JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/education/{id} [put]
// @Security     BearerAuth
func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EducationRequest
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

	if err := h.educationUC.UpdateEducation(c.Request.Context(), c.Param("username"), entry); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education entry updated", entry)
}

// Delete godoc
// @Summary      Delete an education entry
// @Tags         education
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        id        path      int     true  "Entry ID"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/education/{id} [delete]
// @Security     BearerAuth
func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.educationUC.DeleteEducation(c.Request.Context(), c.Param("username"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education entry deleted", nil)
}

package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := protected.Group("/profiles/:username/skills")
	{
		skills.GET("", handler.List)
		skills.POST("", handler.Create)
		skills.GET("/:id", handler.Get)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

type SkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency int    `json:"proficiency"`
}

// List godoc
// @Summary      List a profile's skills
// @Tags         skills
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Router       /profiles/{username}/skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// Get godoc
// @Summary      Get one skill
// @Tags         skills
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        id        path      int     true  "Skill ID"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/skills/{id} [get]
// @Security     BearerAuth
func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	skill, err := h.skillUC.GetSkill(c.Request.Context(), c.Param("username"), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill retrieved", skill)
}

// Create godoc
// @Summary      Add a skill
// @Description  Proficiency is a 0 to 5 self-assessment
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        username  path      string        true  "Username"
// @Param        body      body      SkillRequest  true  "Skill JSON"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /profiles/{username}/skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill := &domain.Skill{Name: req.Name, Proficiency: req.Proficiency}
	if err := h.skillUC.CreateSkill(c.Request.Context(), c.Param("username"), skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

// Update godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        username  path      string        true  "Username"
// @Param        id        path      int           true  "Skill ID"
// @Param        body      body      SkillRequest  true  "Skill JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill := &domain.Skill{ID: id, Name: req.Name, Proficiency: req.Proficiency}
	if err := h.skillUC.UpdateSkill(c.Request.Context(), c.Param("username"), skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        id        path      int     true  "Skill ID"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.skillUC.DeleteSkill(c.Request.Context(), c.Param("username"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}

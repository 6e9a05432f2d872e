package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.POST("", handler.Create)
		companies.GET("/:company_id", handler.Get)
		companies.PUT("/:company_id", handler.Update)
		companies.DELETE("/:company_id", handler.Delete)
		companies.GET("/:company_id/can-manage", handler.CanManage)
		companies.POST("/:company_id/managers", handler.GrantManagement)
		companies.POST("/:company_id/social-links", handler.AddSocialLink)
	}
}

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
	HomePage    string `json:"home_page"`
}

func (r *CompanyRequest) toDomain() *domain.Company {
	company := &domain.Company{
		Name:        r.Name,
		Description: r.Description,
		Industry:    r.Industry,
	}
	if r.HomePage != "" {
		company.HomePage = &r.HomePage
	}
	return company
}

// List godoc
// @Summary      List companies with their social links
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies [get]
// @Security     BearerAuth
func (h *CompanyHandler) List(c *gin.Context) {
	views, err := h.companyUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved", views)
}

// Create godoc
// @Summary      Create a company
// @Description  The creator's profile becomes the first manager
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      CompanyRequest  true  "Company JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	company := req.toDomain()
	if err := h.companyUC.CreateCompany(c.Request.Context(), acting, company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company created", company)
}

// Get godoc
// @Summary      Get a managed company
// @Description  Companies are only visible in detail to their managers
// @Tags         companies
// @Produce      json
// @Param        company_id  path      int  true  "Company ID"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /companies/{company_id} [get]
// @Security     BearerAuth
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	view, err := h.companyUC.GetCompany(c.Request.Context(), acting, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved", view)
}

// Update godoc
// @Summary      Update a managed company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company_id  path      int             true  "Company ID"
// @Param        body        body      CompanyRequest  true  "Company JSON"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /companies/{company_id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	company := req.toDomain()
	company.ID = id
	if err := h.companyUC.UpdateCompany(c.Request.Context(), acting, company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete godoc
// @Summary      Delete a managed company
// @Tags         companies
// @Produce      json
// @Param        company_id  path      int  true  "Company ID"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /companies/{company_id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	if err := h.companyUC.DeleteCompany(c.Request.Context(), acting, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}

// CanManage godoc
// @Summary      Report whether the caller manages the company
// @Tags         companies
// @Produce      json
// @Param        company_id  path      int  true  "Company ID"
// @Success      200         {object}  response.Response
// @Router       /companies/{company_id}/can-manage [get]
// @Security     BearerAuth
func (h *CompanyHandler) CanManage(c *gin.Context) {
	id, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	canManage, err := h.companyUC.CanManage(c.Request.Context(), acting, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Management capability retrieved", gin.H{"can_manage": canManage})
}

type GrantManagementRequest struct {
	Username string `json:"username" binding:"required"`
}

// GrantManagement godoc
// @Summary      Add a manager to a managed company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company_id  path      int                     true  "Company ID"
// @Param        body        body      GrantManagementRequest  true  "Manager JSON"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /companies/{company_id}/managers [post]
// @Security     BearerAuth
func (h *CompanyHandler) GrantManagement(c *gin.Context) {
	id, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	var req GrantManagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	if err := h.companyUC.GrantManagement(c.Request.Context(), acting, req.Username, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Management granted", nil)
}

type SocialLinkRequest struct {
	Service string `json:"service" binding:"required"`
	Link    string `json:"link" binding:"required"`
}

// AddSocialLink godoc
// @Summary      Attach a social link to a managed company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company_id  path      int                true  "Company ID"
// @Param        body        body      SocialLinkRequest  true  "Social link JSON"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /companies/{company_id}/social-links [post]
// @Security     BearerAuth
func (h *CompanyHandler) AddSocialLink(c *gin.Context) {
	id, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	link := &domain.SocialLink{CompanyID: id, Service: req.Service, Link: req.Link}
	if err := h.companyUC.AddSocialLink(c.Request.Context(), acting, link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Social link added", link)
}

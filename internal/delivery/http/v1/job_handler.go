package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC         domain.JobPostingUsecase
	applicationUC domain.JobApplicationUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobPostingUsecase, applicationUC domain.JobApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, applicationUC: applicationUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:job_id", handler.Get)
		jobs.PUT("/:job_id", handler.Update)
		jobs.DELETE("/:job_id", handler.Delete)

		jobs.GET("/:job_id/applications", handler.ListApplications)
		jobs.POST("/:job_id/applications", handler.CreateApplication)
		jobs.GET("/:job_id/applications/:application_id", handler.GetApplication)
		jobs.PUT("/:job_id/applications/:application_id", handler.UpdateApplication)
		jobs.DELETE("/:job_id/applications/:application_id", handler.DeleteApplication)
	}
}

type JobPostingRequest struct {
	Company      string `json:"company"`
	Description  string `json:"description"`
	Compensation string `json:"compensation"`
	Position     string `json:"position"`
}

func (r *JobPostingRequest) toDomain() *domain.JobPosting {
	return &domain.JobPosting{
		Company:      r.Company,
		Description:  r.Description,
		Compensation: r.Compensation,
		Position:     r.Position,
	}
}

// List godoc
// @Summary      List job postings
// @Description  Optionally filtered by recruiter username; an unknown recruiter yields an empty list
// @Tags         jobs
// @Produce      json
// @Param        recruiter  query     string  false  "Recruiter username"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	views, err := h.jobUC.ListJobPostings(c.Request.Context(), c.Query("recruiter"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job postings retrieved", views)
}

// Create godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobPostingRequest  true  "Job posting JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	view, err := h.jobUC.CreateJobPosting(c.Request.Context(), acting, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posting created", view)
}

// Get godoc
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        job_id  path      int  true  "Job posting ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{job_id} [get]
// @Security     BearerAuth
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	view, err := h.jobUC.GetJobPosting(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting retrieved", view)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Only the posting's recruiter may update it
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job_id  path      int                true  "Job posting ID"
// @Param        body    body      JobPostingRequest  true  "Job posting JSON"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{job_id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	var req JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	posting := req.toDomain()
	posting.ID = id

	acting := c.GetString(string(domain.KeyUsername))
	view, err := h.jobUC.UpdateJobPosting(c.Request.Context(), acting, posting)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting updated", view)
}

// Delete godoc
// @Summary      Delete a job posting and its applications
// @Tags         jobs
// @Produce      json
// @Param        job_id  path      int  true  "Job posting ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{job_id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	if err := h.jobUC.DeleteJobPosting(c.Request.Context(), acting, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting deleted", nil)
}

// ListApplications godoc
// @Summary      List a posting's applications
// @Description  With ?recruit set, only Pending and Accepted applications are returned
// @Tags         applications
// @Produce      json
// @Param        job_id   path      int     true   "Job posting ID"
// @Param        recruit  query     string  false  "Limit to recruitable applications"
// @Success      200      {object}  response.Response
// @Router       /jobs/{job_id}/applications [get]
// @Security     BearerAuth
func (h *JobHandler) ListApplications(c *gin.Context) {
	id, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	_, recruitOnly := c.GetQuery("recruit")
	views, err := h.applicationUC.ListByJob(c.Request.Context(), id, recruitOnly)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", views)
}

type CreateApplicationRequest struct {
	// Profile accepts a username or a numeric profile id.
	Profile string `json:"profile" binding:"required"`
	Status  string `json:"status"`
}

// CreateApplication godoc
// @Summary      Apply to a job posting
// @Description  Profile accepts either a username or a numeric profile id; status defaults to Pending
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        job_id  path      int                       true  "Job posting ID"
// @Param        body    body      CreateApplicationRequest  true  "Application JSON"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /jobs/{job_id}/applications [post]
// @Security     BearerAuth
func (h *JobHandler) CreateApplication(c *gin.Context) {
	id, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.applicationUC.CreateApplication(c.Request.Context(), id, req.Profile, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application created", view)
}

// GetApplication godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Param        job_id          path      int  true  "Job posting ID"
// @Param        application_id  path      int  true  "Application ID"
// @Success      200             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Router       /jobs/{job_id}/applications/{application_id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetApplication(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}
	appID, ok := pathID(c, "application_id")
	if !ok {
		return
	}

	view, err := h.applicationUC.GetApplication(c.Request.Context(), jobID, appID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application retrieved", view)
}

type UpdateApplicationRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplication godoc
// @Summary      Update an application's status
// @Description  Any known status may replace any other, including back to Pending
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        job_id          path      int                       true  "Job posting ID"
// @Param        application_id  path      int                       true  "Application ID"
// @Param        body            body      UpdateApplicationRequest  true  "Status JSON"
// @Success      200             {object}  response.Response
// @Failure      400             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Router       /jobs/{job_id}/applications/{application_id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateApplication(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}
	appID, ok := pathID(c, "application_id")
	if !ok {
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.applicationUC.UpdateStatus(c.Request.Context(), jobID, appID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application updated", view)
}

// DeleteApplication godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        job_id          path      int  true  "Job posting ID"
// @Param        application_id  path      int  true  "Application ID"
// @Success      200             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Router       /jobs/{job_id}/applications/{application_id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteApplication(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}
	appID, ok := pathID(c, "application_id")
	if !ok {
		return
	}

	if err := h.applicationUC.DeleteApplication(c.Request.Context(), jobID, appID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted", nil)
}

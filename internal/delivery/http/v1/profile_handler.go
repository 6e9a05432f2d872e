package v1

import (
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC     domain.ProfileUsecase
	applicationUC domain.JobApplicationUsecase
	feedUC        domain.FeedPostUsecase
	jobUC         domain.JobPostingUsecase
}

func NewProfileHandler(
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
	profileUC domain.ProfileUsecase,
	applicationUC domain.JobApplicationUsecase,
	feedUC domain.FeedPostUsecase,
	jobUC domain.JobPostingUsecase,
) {
	handler := &ProfileHandler{
		profileUC:     profileUC,
		applicationUC: applicationUC,
		feedUC:        feedUC,
		jobUC:         jobUC,
	}

	// Raw image bytes are fetched by img tags, which cannot send an
	// Authorization header.
	public.GET("/profiles/:username/image/raw", handler.RawImage)

	profiles := protected.Group("/profiles")
	{
		profiles.GET("", handler.List)
		profiles.GET("/:username", handler.Get)
		profiles.PUT("/:username", handler.Update)
		profiles.DELETE("/:username", handler.Delete)
		profiles.GET("/:username/recommendations", handler.Recommendations)
		profiles.GET("/:username/connections", handler.Connections)
		profiles.GET("/:username/image", handler.GetImage)
		profiles.POST("/:username/image", handler.SetImage)
		profiles.GET("/:username/applications", handler.Applications)
		profiles.GET("/:username/application_ids", handler.ApplicationIDs)
		profiles.GET("/:username/feedposts", handler.FeedPosts)
		profiles.POST("/:username/feedposts", handler.CreateFeedPost)
		profiles.GET("/:username/postings", handler.Postings)
	}
}

// List godoc
// @Summary      List all profiles
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profiles [get]
// @Security     BearerAuth
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUC.ListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profiles retrieved", profiles)
}

// Get godoc
// @Summary      Get a profile by username
// @Description  Includes connections and the derived current position, company and education
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username} [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

type UpdateProfileRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	PreferredName string `json:"preferred_name" binding:"required"`
	Country       string `json:"country" binding:"required"`
}

// Update godoc
// @Summary      Update a profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        username  path      string                true  "Username"
// @Param        profile   body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username} [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	acting := c.GetString(string(domain.KeyUsername))
	profile := &domain.Profile{
		Username:      c.Param("username"),
		FullName:      req.FullName,
		PreferredName: req.PreferredName,
		Country:       req.Country,
	}
	view, err := h.profileUC.UpdateProfile(c.Request.Context(), acting, profile)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", view)
}

// Delete godoc
// @Summary      Delete a profile
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) Delete(c *gin.Context) {
	acting := c.GetString(string(domain.KeyUsername))
	if err := h.profileUC.DeleteProfile(c.Request.Context(), acting, c.Param("username")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile deleted", nil)
}

// Recommendations godoc
// @Summary      Get up to three connection recommendations
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/recommendations [get]
// @Security     BearerAuth
func (h *ProfileHandler) Recommendations(c *gin.Context) {
	views, err := h.profileUC.Recommendations(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommendations retrieved", views)
}

// Connections godoc
// @Summary      List a profile's connections
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/connections [get]
// @Security     BearerAuth
func (h *ProfileHandler) Connections(c *gin.Context) {
	views, err := h.profileUC.Connections(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Connections retrieved", views)
}

// GetImage godoc
// @Summary      Get a profile's image URL
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/image [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetImage(c *gin.Context) {
	url, err := h.profileUC.ImageURL(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Image retrieved", gin.H{"image": url})
}

type SetImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// SetImage godoc
// @Summary      Upload a profile image
// @Description  Accepts a base64 payload, downscales oversized images and stores the result
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        username  path      string           true  "Username"
// @Param        body      body      SetImageRequest  true  "Image JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/image [post]
// @Security     BearerAuth
func (h *ProfileHandler) SetImage(c *gin.Context) {
	var req SetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	url, err := h.profileUC.SetImage(c.Request.Context(), c.Param("username"), req.Image)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Image updated", gin.H{"image": url})
}

// RawImage godoc
// @Summary      Get the stored image bytes
// @Tags         profiles
// @Produce      image/jpeg
// @Param        username  path  string  true  "Username"
// @Success      200
// @Failure      404  {object}  response.Response
// @Router       /profiles/{username}/image/raw [get]
func (h *ProfileHandler) RawImage(c *gin.Context) {
	image, err := h.profileUC.ImageData(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, image.ContentType, image.Data)
}

// Applications godoc
// @Summary      List a profile's job applications
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Router       /profiles/{username}/applications [get]
// @Security     BearerAuth
func (h *ProfileHandler) Applications(c *gin.Context) {
	views, err := h.applicationUC.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", views)
}

// ApplicationIDs godoc
// @Summary      List posting ids a profile applied to
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Router       /profiles/{username}/application_ids [get]
// @Security     BearerAuth
func (h *ProfileHandler) ApplicationIDs(c *gin.Context) {
	ids, err := h.applicationUC.ListJobPostingIDs(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application ids retrieved", gin.H{"job_posting_ids": ids})
}

// FeedPosts godoc
// @Summary      List a user's feed posts, newest first
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Router       /profiles/{username}/feedposts [get]
// @Security     BearerAuth
func (h *ProfileHandler) FeedPosts(c *gin.Context) {
	views, err := h.feedUC.ListFeedPosts(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Feed posts retrieved", views)
}

type CreateFeedPostRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateFeedPost godoc
// @Summary      Publish a feed post
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        username  path      string                 true  "Username"
// @Param        body      body      CreateFeedPostRequest  true  "Post JSON"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /profiles/{username}/feedposts [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateFeedPost(c *gin.Context) {
	var req CreateFeedPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.feedUC.CreateFeedPost(c.Request.Context(), c.Param("username"), req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Feed post created", view)
}

// Postings godoc
// @Summary      List job postings recruited by a user
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Router       /profiles/{username}/postings [get]
// @Security     BearerAuth
func (h *ProfileHandler) Postings(c *gin.Context) {
	views, err := h.jobUC.ListJobPostingsByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job postings retrieved", views)
}

package v1

import (
	"net/http"
	"time"

	"cvconnect-backend/config"
	"cvconnect-backend/internal/delivery/http/middleware"
	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC        domain.UserUsecase
	AccountUC     domain.AccountUsecase
	ProfileUC     domain.ProfileUsecase
	ConnectionUC  domain.ConnectionUsecase
	EmploymentUC  domain.EmploymentUsecase
	EducationUC   domain.EducationUsecase
	SkillUC       domain.SkillUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobPostingUsecase
	ApplicationUC domain.JobApplicationUsecase
	SearchUC      domain.SearchUsecase
	FeedUC        domain.FeedPostUsecase
	Tokens        *token.Provider
	UserRepo      domain.UserRepository
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	accountLimiter := middleware.RateLimitMiddleware(middleware.AccountRateLimitConfig(deps.Config.RateLimitAccountThreshold, window))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.UserRepo))
	{
		NewUserHandler(v1, protected, accountLimiter, deps.UserUC, deps.AccountUC)
		NewAccountHandler(v1, protected, accountLimiter, deps.AccountUC)
		NewProfileHandler(v1, protected, deps.ProfileUC, deps.ApplicationUC, deps.FeedUC, deps.JobUC)
		NewConnectionHandler(protected, deps.ConnectionUC)
		NewEmploymentHandler(protected, deps.EmploymentUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewCompanyHandler(protected, deps.CompanyUC)
		NewJobHandler(protected, deps.JobUC, deps.ApplicationUC)
		NewSearchHandler(protected, deps.SearchUC)
	}

	return r
}

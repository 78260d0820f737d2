package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/auth"
	"github.com/la121/consultants-api/internal/config"
	"github.com/la121/consultants-api/internal/handler"
	middlewarepkg "github.com/la121/consultants-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth             *handler.AuthHandler
	Users            *handler.UserAdminHandler
	Forms            *handler.FormsHandler
	Submissions      *handler.SubmissionsAdminHandler
	PartnershipEmail *handler.PartnershipEmailHandler
	Jobs             *handler.JobsHandler
	JobsAdmin        *handler.JobsAdminHandler
	Reviews          *handler.ReviewsHandler
	Ebooks           *handler.EbooksHandler
	Blog             *handler.BlogHandler
	Stats            *handler.StatsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)

	formLimiter := middlewarepkg.FormRateLimiter(cfg.RateLimitForms, "/forms")
	e.POST("/forms/book-call", handlers.Forms.SubmitBookCall, formLimiter)
	e.POST("/forms/order-service", handlers.Forms.SubmitServiceOrder, formLimiter)
	e.POST("/forms/partnership", handlers.Forms.SubmitPartnership, formLimiter)

	if handlers.PartnershipEmail != nil {
		e.POST("/notify/partnership", handlers.PartnershipEmail.Notify)
		e.OPTIONS("/notify/partnership", handlers.PartnershipEmail.Preflight)
	}

	e.GET("/jobs", handlers.Jobs.List)
	e.POST("/jobs", handlers.Jobs.Submit)
	e.POST("/jobs/:id/view", handlers.Jobs.RecordView)

	e.GET("/reviews", handlers.Reviews.List)
	e.GET("/ebooks", handlers.Ebooks.List)
	e.POST("/ebooks/:id/checkout", handlers.Ebooks.Checkout)
	e.GET("/blog", handlers.Blog.List)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/jobs/:id/apply", handlers.Jobs.Apply)
	secured.GET("/me/applications", handlers.Jobs.MyApplications)

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/submissions", handlers.Submissions.List)
	admin.PATCH("/submissions/:id/status", handlers.Submissions.UpdateStatus)
	admin.DELETE("/submissions/:id", handlers.Submissions.Delete)

	admin.GET("/jobs", handlers.JobsAdmin.List)
	admin.PATCH("/jobs/:id/status", handlers.JobsAdmin.UpdateStatus)
	admin.PATCH("/jobs/:id/featured", handlers.JobsAdmin.SetFeatured)
	admin.PATCH("/applications/:id/status", handlers.JobsAdmin.UpdateApplicationStatus)

	admin.GET("/reviews", handlers.Reviews.ListAdmin)
	admin.PATCH("/reviews/:id/status", handlers.Reviews.UpdateStatus)
	admin.PATCH("/reviews/:id/featured", handlers.Reviews.SetFeatured)
	admin.DELETE("/reviews/:id", handlers.Reviews.Delete)

	admin.POST("/ebooks", handlers.Ebooks.Create)
	admin.PATCH("/ebooks/:id", handlers.Ebooks.Update)
	admin.DELETE("/ebooks/:id", handlers.Ebooks.Delete)

	admin.GET("/blog", handlers.Blog.ListAdmin)
	admin.POST("/blog", handlers.Blog.Create)
	admin.PATCH("/blog/:id", handlers.Blog.Update)
	admin.DELETE("/blog/:id", handlers.Blog.Delete)

	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
	admin.PATCH("/users/:id", handlers.Users.Update)
	admin.DELETE("/users/:id", handlers.Users.Delete)

	admin.GET("/stats", handlers.Stats.Dashboard)
}

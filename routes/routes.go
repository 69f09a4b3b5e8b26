package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"monipee-hotel/config"
	"monipee-hotel/controllers"
	"monipee-hotel/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Handlers groups the controllers mounted by SetupRouter.
type Handlers struct {
	Auth         *controllers.AuthController
	Bookings     *controllers.BookingController
	Rooms        *controllers.RoomController
	Reviews      *controllers.ReviewController
	Messages     *controllers.MessageController
	Users        *controllers.UserController
	Gallery      *controllers.GalleryController
	Content      *controllers.ContentController
	Settings     *controllers.SettingsController
	Dashboard    *controllers.DashboardController
	Integrations *controllers.IntegrationsController
}

func SetupRouter(cfg *config.Config, sessions middleware.SessionResolver, settings middleware.SettingsReader, h Handlers) *gin.Engine {
	controllers.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins(cfg.CorsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(sessions)
	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", limiter.Limit(), h.Auth.Login)
			auth.POST("/register", limiter.Limit(), h.Auth.Register)
			auth.POST("/forgot-password", limiter.Limit(), h.Auth.ForgotPassword)
			auth.POST("/reset-password", limiter.Limit(), h.Auth.ResetPassword)
			auth.POST("/logout", requireAuth, h.Auth.Logout)
			auth.GET("/me", requireAuth, h.Auth.Me)
			auth.PATCH("/me", requireAuth, h.Auth.UpdateProfile)
		}

		api.GET("/settings", h.Settings.Get)
		api.GET("/integrations", h.Integrations.Get)
		api.GET("/gallery", h.Gallery.List)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.Rooms.List)
			rooms.GET("/:id", h.Rooms.Get)
			rooms.GET("/:id/reviews", h.Rooms.ListReviews)
			rooms.POST("/:id/reviews", requireAuth, h.Rooms.AddReview)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", h.Reviews.ListPublished)
			reviews.GET("/summary", h.Reviews.Summary)
		}

		content := api.Group("/content")
		{
			content.GET("/hero", h.Content.ListHero)
			content.GET("/hero/:id", h.Content.GetHero)
			content.GET("/pages/:id", h.Content.GetPage)
		}

		booking := api.Group("/booking")
		{
			booking.GET("/quote", h.Bookings.Quote)
			booking.POST("/promo", h.Bookings.ValidatePromo)
		}

		bookings := api.Group("/bookings", requireAuth)
		{
			bookings.GET("", h.Bookings.Mine)
			bookings.POST("", middleware.Maintenance(settings), h.Bookings.Create)
			bookings.POST("/:id/cancel", h.Bookings.Cancel)
		}

		messages := api.Group("/messages", requireAuth)
		{
			messages.GET("", h.Messages.Mine)
			messages.POST("", h.Messages.Create)
			messages.POST("/:id/replies", h.Messages.ReplyMine)
		}

		admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
		{
			admin.GET("/dashboard", h.Dashboard.Stats)

			admin.GET("/bookings", h.Bookings.List)
			admin.GET("/bookings/:id", h.Bookings.Get)
			admin.PATCH("/bookings/:id", h.Bookings.Update)
			admin.PATCH("/bookings/:id/status", h.Bookings.SetStatus)

			admin.POST("/rooms", h.Rooms.Create)
			admin.PATCH("/rooms/:id", h.Rooms.Update)
			admin.PUT("/rooms/:id", h.Rooms.Update)
			admin.DELETE("/rooms/:id", h.Rooms.Delete)

			admin.GET("/room-reviews", h.Rooms.ListAllReviews)
			admin.PATCH("/room-reviews/:id", h.Rooms.SetReviewStatus)

			admin.GET("/reviews", h.Reviews.ListAll)
			admin.POST("/reviews", h.Reviews.Create)
			admin.PATCH("/reviews/:id", h.Reviews.Update)
			admin.DELETE("/reviews/:id", h.Reviews.Delete)

			admin.GET("/messages", h.Messages.ListAll)
			admin.PATCH("/messages/:id", h.Messages.Update)
			admin.POST("/messages/:id/read", h.Messages.MarkRead)
			admin.POST("/messages/:id/replies", h.Messages.Reply)

			admin.GET("/users", h.Users.List)
			admin.GET("/users/:id", h.Users.Get)
			admin.GET("/customers", h.Users.Customers)

			admin.POST("/gallery", h.Gallery.Create)
			admin.DELETE("/gallery/:id", h.Gallery.Delete)

			admin.PUT("/content/hero/:id", h.Content.UpdateHero)
			admin.PUT("/content/pages/:id", h.Content.UpdatePage)

			admin.PUT("/settings", h.Settings.Update)
		}
	}

	return r
}

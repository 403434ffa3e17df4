package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homestay-backend/controllers"
	"homestay-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
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

// SetupRouter wires the controller instances into the HTTP surface.
func SetupRouter(
	ac *controllers.AuthController,
	lc *controllers.ListingController,
	bc *controllers.BookingController,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.RequireAuth(), ac.Me)
		}

		listings := api.Group("/listings")
		{
			listings.GET("", lc.GetListings)

			// static segment must be registered alongside :id
			listings.GET("/host/my-listings", middleware.RequireAuth(), middleware.RequireHost(), lc.GetMyListings)

			listings.GET("/:id", lc.GetListing)
			listings.POST("", middleware.RequireAuth(), middleware.RequireHost(), lc.CreateListing)
			listings.PUT("/:id", middleware.RequireAuth(), middleware.RequireHost(), lc.UpdateListing)
			listings.DELETE("/:id", middleware.RequireAuth(), middleware.RequireHost(), lc.DeleteListing)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/my-bookings", bc.GetMyBookings)
			bookings.GET("/host-bookings", bc.GetHostBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.PATCH("/:id/cancel", bc.CancelBooking)
		}
	}

	return r
}

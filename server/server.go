package server

import (
	"os"

	"room-rental-server/db"
	httpHandler "room-rental-server/handlers/http"
	"room-rental-server/middleware"
	"room-rental-server/repositories"
	"room-rental-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	s.app.Use(cors.New(config))
	s.app.Use(middleware.RequestID())

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	listingRepo := repositories.NewListingPgRepository(s.db)
	userRepo := repositories.NewUserPgRepository(s.db)
	reviewRepo := repositories.NewReviewPgRepository(s.db)
	favoriteRepo := repositories.NewFavoritePgRepository(s.db)
	historyRepo := repositories.NewSearchHistoryPgRepository(s.db)

	// Initialize use cases
	listingUseCase := usecases.NewListingUseCase(listingRepo, userRepo)
	reviewUseCase := usecases.NewReviewUseCase(reviewRepo, listingRepo, userRepo)
	favoriteUseCase := usecases.NewFavoriteUseCase(favoriteRepo, listingRepo)
	historyUseCase := usecases.NewSearchHistoryUseCase(historyRepo)
	userUseCase := usecases.NewUserUseCase(userRepo)

	// Initialize handlers
	listingHandler := httpHandler.NewListingHandler(listingUseCase)
	reviewHandler := httpHandler.NewReviewHandler(reviewUseCase)
	favoriteHandler := httpHandler.NewFavoriteHandler(favoriteUseCase)
	historyHandler := httpHandler.NewSearchHistoryHandler(historyUseCase)
	authHandler := httpHandler.NewAuthHandler(userUseCase)
	profileHandler := httpHandler.NewProfileHandler(userUseCase)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Listing routes
		listings := api.Group("/listings")
		{
			listings.GET("", listingHandler.GetAvailableListings)
			listings.GET("/:id", listingHandler.GetListing)
			listings.GET("/:id/similar", listingHandler.GetSimilarListings)
			listings.POST("", middleware.RequireAuth(), listingHandler.CreateListing)
			listings.PUT("/:id", middleware.RequireAuth(), listingHandler.UpdateListing)
			listings.DELETE("/:id", middleware.RequireAuth(), listingHandler.DeleteListing)
		}

		// Owner dashboard routes
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/listings", listingHandler.GetOwnerListings)
		}

		// Review routes
		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetReviews)
			reviews.POST("", reviewHandler.SubmitReview)
		}

		// Favorite routes
		favorites := api.Group("/favorites")
		{
			favorites.GET("", favoriteHandler.GetFavorites)
			favorites.POST("", favoriteHandler.AddFavorite)
			favorites.DELETE("", favoriteHandler.RemoveFavorite)
		}

		// Search history routes
		history := api.Group("/search-history")
		{
			history.GET("", historyHandler.GetRecentSearches)
			history.POST("", historyHandler.RecordSearch)
		}

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Profile routes (session identity required)
		profile := api.Group("/profile", middleware.RequireAuth())
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3536"
	}
	if err := s.app.Run("0.0.0.0:" + port); err != nil {
		panic(err)
	}
}

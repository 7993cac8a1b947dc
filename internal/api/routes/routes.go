// server/internal/api/routes/routes.go
package routes

import (
	"garage-api-server/config"
	"garage-api-server/internal/api/handlers"
	"garage-api-server/internal/api/middleware"
	"garage-api-server/internal/garage"
	"garage-api-server/internal/garage/mongostore"
	"garage-api-server/internal/models"
	"garage-api-server/internal/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the stores, the occupancy service and the handlers onto the
// gin engine.
func SetupRouter(
	cfg config.Config,
	stores *mongostore.Stores,
	s3Uploader *s3.Uploader,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	service := garage.NewService(stores.Users, stores.VehicleTypes, stores.Vehicles, stores.Spots, stores.Parkings)

	authHandler := &handlers.AuthHandler{Users: stores.Users}
	spotHandler := &handlers.SpotHandler{Service: service}
	typeHandler := &handlers.VehicleTypeHandler{Service: service, Types: stores.VehicleTypes}
	vehicleHandler := &handlers.VehicleHandler{Service: service, Vehicles: stores.Vehicles, S3Uploader: s3Uploader}
	parkingHandler := &handlers.ParkingHandler{Service: service, Cfg: cfg}
	memberHandler := &handlers.MemberHandler{Service: service, Users: stores.Users}
	statsHandler := &handlers.StatsHandler{Service: service}

	apiV1 := router.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Authenticated routes for members and admins.
		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate())
		{
			protected.GET("/spots", spotHandler.Search)
			protected.GET("/spots/:id", spotHandler.GetByID)

			protected.GET("/vehicle-types", typeHandler.List)

			protected.POST("/vehicles", vehicleHandler.Register)
			protected.GET("/vehicles", vehicleHandler.List)
			protected.GET("/vehicles/:id", vehicleHandler.GetByID)
			protected.PUT("/vehicles/:id", vehicleHandler.Update)
			protected.DELETE("/vehicles/:id", vehicleHandler.Delete)
			protected.POST("/vehicles/:id/documents", vehicleHandler.UploadDocument)

			protected.POST("/parkings/check-in", parkingHandler.CheckIn)
			protected.POST("/parkings/check-out", parkingHandler.CheckOut)
			protected.GET("/parkings/my", parkingHandler.My)
		}

		// Admin-only routes.
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate(), middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("/spots", spotHandler.Create)
			admin.PUT("/spots/:id", spotHandler.Update)
			admin.DELETE("/spots/:id", spotHandler.Delete)
			admin.POST("/spots/:id/reserve", spotHandler.Reserve)
			admin.POST("/spots/:id/unreserve", spotHandler.Unreserve)

			admin.POST("/vehicle-types", typeHandler.Create)
			admin.GET("/vehicle-types", typeHandler.List)
			admin.GET("/vehicle-types/:id", typeHandler.GetByID)
			admin.PUT("/vehicle-types/:id", typeHandler.Update)
			admin.DELETE("/vehicle-types/:id", typeHandler.Delete)

			admin.GET("/members", memberHandler.List)
			admin.GET("/members/:id", memberHandler.GetByID)
			admin.DELETE("/members/:id", memberHandler.Delete)

			admin.GET("/parkings", parkingHandler.Overview)
			admin.GET("/stats", statsHandler.Get)
		}
	}

	return router
}

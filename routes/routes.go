package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/thegera4/ecommerce-api/auth"
	"github.com/thegera4/ecommerce-api/controllers"
	"github.com/thegera4/ecommerce-api/middleware"
)

func SetupRoutes(router *gin.Engine, ctl *controllers.Controller, db *gorm.DB, tokens *auth.TokenService) {
	// Public routes
	router.GET("/", ctl.Index)
	router.GET("/health", ctl.Health)
	router.POST("/token", ctl.Token)
	router.POST("/registration", ctl.Register)
	router.GET("/verification", ctl.VerifyEmail)

	router.GET("/users", ctl.GetUsers)
	router.GET("/products", ctl.GetProducts)
	router.GET("/products/:id", ctl.GetProduct)
	router.GET("/categories", ctl.GetCategories)
	router.GET("/categories/:id", ctl.GetCategory)
	router.GET("/businesses", ctl.GetBusinesses)
	router.GET("/businesses/:id", ctl.GetBusiness)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.Authenticate(db, tokens))
	{
		protected.GET("/users/me", ctl.Me)

		protected.POST("/products", ctl.CreateProduct)
		protected.PUT("/products/:id", ctl.UpdateProduct)
		protected.DELETE("/products/:id", ctl.DeleteProduct)

		protected.POST("/categories", ctl.CreateCategory)

		protected.PUT("/businesses/:id", ctl.UpdateBusiness)
		protected.DELETE("/businesses/:id", ctl.DeleteBusiness)

		protected.POST("/uploadfile/profile", ctl.UploadProfilePicture)
		protected.POST("/uploadfile/product/:id", ctl.UploadProductPicture)
	}
}

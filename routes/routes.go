package routes

import (
	"campuseats/configs"
	"campuseats/controllers"
	"campuseats/entity"
	"campuseats/middlewares"
	"campuseats/pkg/storage"
	"campuseats/repository"
	"campuseats/services"
	"campuseats/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.OrderHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true, "message": "ok"}) })

	db := configs.DB()
	store := storage.New(cfg.UploadDir, cfg.UploadURL)
	r.Static(cfg.UploadURL, cfg.UploadDir)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	prodRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	storeSvc := services.NewStoreService(storeRepo, store)
	prodSvc := services.NewProductService(prodRepo, storeRepo, store)
	orderSvc := services.NewOrderService(db, orderRepo, storeRepo, prodRepo)
	orderSvc.Events = hub
	feedbackSvc := services.NewFeedbackService(feedbackRepo)
	adminSvc := services.NewAdminService(userRepo)
	profileSvc := services.NewProfileService(userRepo, store)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, store)
	storeCtrl := controllers.NewStoreController(storeSvc, store)
	prodCtrl := controllers.NewProductController(prodSvc, store)
	orderCtrl := controllers.NewOrderController(orderSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", middlewares.AuthMiddleware(), authCtrl.Logout)
	}

	// Anonymous feedback
	r.POST("/feedback", feedbackCtrl.Create)

	auth := r.Group("/", middlewares.AuthMiddleware())
	{
		auth.GET("/user/profile", authCtrl.Me)

		// Profile pictures
		profile := auth.Group("/profile")
		{
			profile.POST("/picture/upload", profileCtrl.UploadPicture)
			profile.DELETE("/picture", profileCtrl.DeletePicture)
			profile.GET("/picture/:userId", profileCtrl.GetPicture)
		}

		// Stores
		st := auth.Group("/store")
		{
			st.GET("", storeCtrl.Index)
			st.GET("/vendor", storeCtrl.VendorStore)
			st.POST("", storeCtrl.Create)
			st.PUT("", storeCtrl.Update)
		}

		// Products (vendor)
		products := auth.Group("/products")
		{
			products.GET("", prodCtrl.Index)
			products.POST("", prodCtrl.Create)
			products.PUT("/:id", prodCtrl.Update)
			products.DELETE("/:id", prodCtrl.Destroy)
		}

		// Orders
		orders := auth.Group("/orders")
		{
			orders.POST("", orderCtrl.Create)
			orders.GET("", orderCtrl.Index)
			orders.GET("/my", orderCtrl.MyOrders)
			orders.GET("/statistics", orderCtrl.Statistics)
			orders.PUT("/:id/status", orderCtrl.UpdateStatus)
		}

		// Authenticated feedback rides the same handler
		auth.GET("/feedback", middlewares.AuthMiddleware(entity.RoleAdmin), feedbackCtrl.Index)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(entity.RoleAdmin))
	{
		admin.GET("/pending-vendors", adminCtrl.PendingVendors)
		admin.POST("/vendors/:id/approve", adminCtrl.ApproveVendor)
		admin.POST("/vendors/:id/reject", adminCtrl.RejectVendor)
		admin.GET("/users", adminCtrl.AllUsers)
		admin.GET("/users/vendors", adminCtrl.AllVendors)
		admin.GET("/users/customers", adminCtrl.AllCustomers)
		admin.GET("/users/:id", adminCtrl.GetUser)
		admin.GET("/feedback", feedbackCtrl.Index)
	}

	// Vendor order feed
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}

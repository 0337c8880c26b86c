package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Bossnapi119/pakawinasiayam/configs"
	"github.com/Bossnapi119/pakawinasiayam/controllers"
	"github.com/Bossnapi119/pakawinasiayam/middlewares"
	"github.com/Bossnapi119/pakawinasiayam/repository"
	"github.com/Bossnapi119/pakawinasiayam/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) error {
	r.Use(middlewares.CORSMiddleware())

	// global limiter: ~300 requests per 15 minutes per IP
	global := middlewares.NewRateLimiter(rate.Limit(300.0/900.0), 20)
	r.Use(global.Middleware("Too many requests, please try again later."))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.Static("/uploads", cfg.UploadDir)

	db := configs.DB()

	uploads, err := services.NewUploadStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	// Services
	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db))
	menuSvc := services.NewMenuService(repository.NewMenuRepository(db), uploads)
	siteSvc := services.NewSiteService(repository.NewSiteRepository(db), uploads)
	paySvc := services.NewPaymentService(orderSvc, cfg.ToyyibPaySecret, cfg.ToyyibPayCategory,
		cfg.ToyyibPayBaseURL, cfg.FrontendURL, cfg.BackendURL)
	authSvc := services.NewAuthService(repository.NewAdminRepository(db), services.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		AdminTTL:      cfg.AdminTTL,
		KitchenTTL:    cfg.KitchenTTL,
		DeveloperTTL:  cfg.DeveloperTTL,
		KitchenPIN:    cfg.KitchenPIN,
		DeveloperUser: cfg.DeveloperUser,
		DeveloperPass: cfg.DeveloperPass,
	})

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	siteCtrl := controllers.NewSiteController(siteSvc)
	payCtrl := controllers.NewPaymentController(paySvc)
	authCtrl := controllers.NewAuthController(authSvc)

	api := r.Group("/api")

	// Public
	api.GET("/menu", menuCtrl.ListActive)
	api.GET("/public/site", siteCtrl.GetPublic)
	api.POST("/orders", orderCtrl.Create)
	api.POST("/payment/initiate", payCtrl.Initiate)
	api.POST("/payment/webhook", payCtrl.Webhook)

	// Logins get a strict per-IP limiter against brute force
	login := middlewares.NewRateLimiter(rate.Limit(5.0/60.0), 5)
	loginLimit := login.Middleware("Too many login attempts. Please wait 1 minute.")
	api.POST("/admin/login", loginLimit, authCtrl.AdminLogin)
	api.POST("/kitchen/login", loginLimit, authCtrl.KitchenLogin)
	api.POST("/developer/login", loginLimit, authCtrl.DeveloperLogin)

	// Kitchen (kitchen or admin token)
	kitchen := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "kitchen", "admin"))
	{
		kitchen.GET("/kitchen/orders", orderCtrl.ListActive)
		kitchen.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		kitchen.POST("/orders/:id/advance", orderCtrl.Advance)
	}

	// Admin
	admin := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", orderCtrl.List)
		admin.DELETE("/admin/orders", orderCtrl.ClearAll)
		admin.POST("/admin/change-password", authCtrl.ChangePassword)

		admin.GET("/admin/menu", menuCtrl.ListAll)
		admin.POST("/admin/menu", menuCtrl.Create)
		admin.PUT("/admin/menu/:id", menuCtrl.Update)
		admin.DELETE("/admin/menu/:id", menuCtrl.Delete)

		admin.GET("/site", siteCtrl.Get)
		admin.PUT("/admin/site", siteCtrl.Update)
		admin.POST("/admin/site/logo", siteCtrl.UploadLogo)
		admin.POST("/admin/site/poster", siteCtrl.UploadPoster)
	}

	return nil
}

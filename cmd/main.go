package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"recycle-backend/config"
	"recycle-backend/internal/api/admin"
	"recycle-backend/internal/api/mp"
	"recycle-backend/internal/middleware"
	"recycle-backend/internal/repository/mysql"
	"recycle-backend/internal/service"
	"recycle-backend/internal/storage"
	"recycle-backend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 设置数据库连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName)

	// 连接数据库
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	// 测试数据库连接
	err = db.Ping()
	if err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	util.Logger.Info("数据库连接池配置完成")

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", util.ValidatePhone)
	}

	// 确保上传文件夹存在
	ensureUploadsFolder()

	// 初始化文件存储
	fileStorage, err := storage.NewFromConfig()
	if err != nil {
		util.Logger.Fatal("初始化文件存储失败", zap.Error(err))
	}

	// 初始化存储库、服务和处理器
	userRepo := mysql.NewUserRepository(db)
	statsRepo := mysql.NewStatsRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	stationRepo := mysql.NewStationRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	collectorRepo := mysql.NewCollectorRepository(db)
	afterSaleRepo := mysql.NewAfterSaleRepository(db)
	communityRepo := mysql.NewCommunityRepository(db)
	addressRepo := mysql.NewAddressRepository(db)

	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(statsRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	stationService := service.NewStationService(stationRepo)
	orderService := service.NewOrderService(orderRepo, categoryRepo)
	collectorService := service.NewCollectorService(collectorRepo)
	afterSaleService := service.NewAfterSaleService(afterSaleRepo)
	communityService := service.NewCommunityService(communityRepo)
	addressService := service.NewAddressService(addressRepo)
	identifyService := service.NewIdentifyService(service.NewAliyunClassifier())

	adminUserHandler := admin.NewUserHandler(userService)
	dashboardHandler := admin.NewDashboardHandler(statsService)
	categoryHandler := admin.NewCategoryHandler(categoryService)
	stationHandler := admin.NewStationHandler(stationService)
	adminOrderHandler := admin.NewOrderHandler(orderService)
	collectorHandler := admin.NewCollectorHandler(collectorService)
	afterSaleHandler := admin.NewAfterSaleHandler(afterSaleService)
	adminCommunityHandler := admin.NewCommunityHandler(communityService)
	adminAddressHandler := admin.NewAddressHandler(addressService)

	authHandler := mp.NewAuthHandler(userService)
	mpUserHandler := mp.NewUserHandler(userService)
	mpOrderHandler := mp.NewOrderHandler(orderService)
	mpAddressHandler := mp.NewAddressHandler(addressService)
	mpCommunityHandler := mp.NewCommunityHandler(communityService)
	identifyHandler := mp.NewIdentifyHandler(identifyService)
	uploadHandler := mp.NewUploadHandler(fileStorage)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length",
		"Content-Type",
		"Access-Control-Allow-Origin",
	}

	r.Use(cors.New(corsConfig))

	// 静态文件的CORS单独处理
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			c.Header("Access-Control-Allow-Origin", config.AppConfig.FrontendURL)
			c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(200)
				return
			}
		}
		c.Next()
	})

	// 配置静态文件服务
	r.Static("/uploads", config.AppConfig.LocalStoragePath)

	// 定义 API 路由
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// 管理后台
		api.GET("/dashboard/summary", dashboardHandler.GetDashboard)

		api.GET("/users", adminUserHandler.GetUsers)
		api.GET("/users/:id", adminUserHandler.GetUserDetail)
		api.POST("/users/:id/toggle-status", adminUserHandler.ToggleUserStatus)
		api.GET("/user_levels", adminUserHandler.GetUserLevels)

		api.GET("/categories", categoryHandler.GetCategories)
		api.POST("/categories", categoryHandler.CreateCategory)
		api.PUT("/categories/:id", categoryHandler.UpdateCategory)
		api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		api.GET("/stations", stationHandler.GetStations)
		api.POST("/stations", stationHandler.CreateStation)

		api.GET("/orders", adminOrderHandler.GetOrders)
		api.GET("/orders/:id", adminOrderHandler.GetOrderDetail)

		api.GET("/collectors", collectorHandler.GetCollectors)
		api.GET("/after_sales", afterSaleHandler.GetAfterSales)

		api.GET("/admin/posts", adminCommunityHandler.GetPosts)
		api.POST("/admin/posts", adminCommunityHandler.CreatePost)
		api.DELETE("/admin/posts/:id", adminCommunityHandler.DeletePost)

		api.GET("/addresses", adminAddressHandler.GetAddresses)

		// 小程序端
		mpRoutes := api.Group("/mp")
		mpRoutes.Use(middleware.IdentityMiddleware())
		{
			mpRoutes.POST("/login", authHandler.Login)
			mpRoutes.GET("/user", mpUserHandler.GetProfile)
			mpRoutes.GET("/ranking", mpUserHandler.GetRanking)

			mpRoutes.GET("/orders", mpOrderHandler.GetOrders)
			mpRoutes.POST("/orders", mpOrderHandler.CreateOrder)
			mpRoutes.POST("/orders/:id/cancel", mpOrderHandler.CancelOrder)

			mpRoutes.GET("/addresses", mpAddressHandler.GetAddresses)
			mpRoutes.POST("/addresses", mpAddressHandler.CreateAddress)
			mpRoutes.PUT("/addresses/:id", mpAddressHandler.UpdateAddress)
			mpRoutes.DELETE("/addresses/:id", mpAddressHandler.DeleteAddress)

			mpRoutes.GET("/community/topics", mpCommunityHandler.GetTopics)
			mpRoutes.GET("/community/posts", mpCommunityHandler.GetPosts)
			mpRoutes.POST("/community/posts", mpCommunityHandler.CreatePost)

			mpRoutes.POST("/identify", identifyHandler.Identify)
			mpRoutes.POST("/upload", uploadHandler.Upload)
		}
	}

	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动，监听端口 :8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}

// 确保上传文件夹存在
func ensureUploadsFolder() {
	uploadsPath := config.AppConfig.LocalStoragePath
	if err := os.MkdirAll(uploadsPath, 0755); err != nil {
		util.Logger.Fatal("创建上传文件夹失败", zap.Error(err), zap.String("path", uploadsPath))
	}
	util.Logger.Info("上传文件夹已创建或已存在", zap.String("path", uploadsPath))
}

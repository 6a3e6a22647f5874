package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	fanbaseHTTP "fanbase/internal/controller/http"
	"fanbase/internal/controller/ws"
	"fanbase/internal/repo/persistent"
	"fanbase/internal/usecase"
	"fanbase/pkg/cache"
	"fanbase/pkg/config"
	"fanbase/pkg/database"
	"fanbase/pkg/jwt"
	"fanbase/pkg/logger"
	"fanbase/pkg/mailer"
	"fanbase/pkg/middleware"
	"fanbase/pkg/payments"
	"fanbase/pkg/queue"
	"fanbase/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	payments    *payments.Client
	mail        *mailer.Mailer
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		queueClient: queueClient,
		payments:    payments.NewClient(cfg),
		mail:        mailer.New(cfg),
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	blockRepo := persistent.NewBlockRepository(a.db)
	reportRepo := persistent.NewReportRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	productRepo := persistent.NewProductRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	orderRepo := persistent.NewOrderRepository(a.db)
	subRepo := persistent.NewSubscriptionRepository(a.db)
	walletRepo := persistent.NewWalletRepository(a.db)
	paymentRepo := persistent.NewPaymentRepository(a.db)
	webhookRepo := persistent.NewWebhookRepository(a.db)
	feedRepo := persistent.NewFeedRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	convRepo := persistent.NewConversationRepository(a.db)

	hub := ws.NewHub(a.log)

	// Use cases
	userUC := usecase.NewUserUseCase(userRepo, blockRepo, reportRepo, postRepo, subRepo, a.jwtService, a.s3Client, a.mail, a.log)
	feedUC := usecase.NewFeedUseCase(feedRepo, postRepo, blockRepo, subRepo, productRepo, a.redisClient, a.log)
	postUC := usecase.NewPostUseCase(postRepo, productRepo, feedRepo, walletRepo, paymentRepo, a.s3Client, a.queueClient, a.log)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, a.s3Client, a.log)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, walletRepo, paymentRepo, a.log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	subUC := usecase.NewSubscriptionUseCase(subRepo, userRepo, a.queueClient, a.log)
	walletUC := usecase.NewWalletUseCase(walletRepo, userRepo, paymentRepo, a.payments, a.log)
	paymentUC := usecase.NewPaymentUseCase(a.payments, userRepo, postRepo, subRepo, paymentRepo, a.cfg.ClientURL, a.log)
	webhookUC := usecase.NewWebhookUseCase(a.payments, webhookRepo, postRepo, a.log)
	commentUC := usecase.NewCommentUseCase(commentRepo, postRepo, a.queueClient, a.log)
	convUC := usecase.NewConversationUseCase(convRepo, userRepo, blockRepo, hub, a.log)
	adminUC := usecase.NewAdminUseCase(userRepo, reportRepo, feedRepo, a.log)

	// Handlers
	authHandler := fanbaseHTTP.NewAuthHandler(userUC, a.log)
	userHandler := fanbaseHTTP.NewUserHandler(userUC, a.log)
	feedHandler := fanbaseHTTP.NewFeedHandler(feedUC, a.log)
	postHandler := fanbaseHTTP.NewPostHandler(postUC, a.log)
	productHandler := fanbaseHTTP.NewProductHandler(productUC, orderUC, a.log)
	categoryHandler := fanbaseHTTP.NewCategoryHandler(categoryUC, a.log)
	subHandler := fanbaseHTTP.NewSubscriptionHandler(subUC, a.log)
	walletHandler := fanbaseHTTP.NewWalletHandler(walletUC, a.log)
	paymentHandler := fanbaseHTTP.NewPaymentHandler(paymentUC, webhookUC, a.log)
	commentHandler := fanbaseHTTP.NewCommentHandler(commentUC, a.log)
	convHandler := fanbaseHTTP.NewConversationHandler(convUC, a.log)
	adminHandler := fanbaseHTTP.NewAdminHandler(adminUC, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Webhook is signed by the payment processor, not by our JWTs.
	r.POST("/api/webhook", paymentHandler.Webhook)

	r.GET("/ws", middleware.AuthMiddleware(a.jwtService), hub.HandleConnection)

	api := r.Group("/api/v1")
	if a.redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
	}
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/verify-otp", authHandler.VerifyOTP)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Feed and public reads work without a token but honor one when
		// present.
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware(a.jwtService))
		{
			public.GET("/posts", feedHandler.GetFeed)
			public.GET("/posts/:id", postHandler.GetPost)
			public.GET("/posts/user/:user_id", postHandler.ListUserPosts)
			public.GET("/products", productHandler.ListProducts)
			public.GET("/products/:id", productHandler.GetProduct)
			public.GET("/categories", categoryHandler.ListCategories)
			public.GET("/users/search", userHandler.SearchUsers)
			public.GET("/users/:id", userHandler.GetUser)
			public.GET("/comments/post/:post_id", commentHandler.ListComments)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/posts/bookmarked", feedHandler.GetBookmarked)
			protected.POST("/posts", postHandler.CreatePost)
			protected.PUT("/posts/:id", postHandler.UpdatePost)
			protected.PUT("/posts/:id/status", postHandler.UpdatePostStatus)
			protected.DELETE("/posts/:id", postHandler.DeletePost)
			protected.POST("/posts/:id/like", postHandler.LikePost)
			protected.POST("/posts/:id/bookmark", postHandler.BookmarkItem)
			protected.POST("/posts/:id/purchase", postHandler.PurchasePost)
			protected.POST("/posts/:id/tip", postHandler.TipPost)
			protected.POST("/posts/:id/not-interested", postHandler.NotInterested)
			protected.POST("/posts/media", postHandler.UploadMedia)

			protected.POST("/products", productHandler.CreateProduct)
			protected.PUT("/products/:id", productHandler.UpdateProduct)
			protected.DELETE("/products/:id", productHandler.DeleteProduct)
			protected.POST("/products/image", productHandler.UploadProductImage)
			protected.POST("/products/:id/order", productHandler.PlaceOrder)
			protected.GET("/products/orders", productHandler.MyOrders)
			protected.PUT("/products/orders/:id/status", productHandler.UpdateOrderStatus)

			protected.GET("/users/me", userHandler.Me)
			protected.PUT("/users/me", userHandler.UpdateProfile)
			protected.PUT("/users/me/role", userHandler.SwitchRole)
			protected.PUT("/users/me/password", userHandler.UpdatePassword)
			protected.POST("/users/me/image", userHandler.UploadImage)
			protected.GET("/users/blocked", userHandler.BlockedUsers)
			protected.POST("/users/:id/block", userHandler.BlockUser)
			protected.DELETE("/users/:id/block", userHandler.UnblockUser)
			protected.POST("/users/:id/report", userHandler.ReportUser)

			protected.POST("/subscription", subHandler.Subscribe)
			protected.GET("/subscription", subHandler.List)
			protected.GET("/subscription/:creator_id", subHandler.Status)
			protected.DELETE("/subscription/:creator_id", subHandler.Cancel)

			protected.GET("/wallet", walletHandler.GetWallet)
			protected.POST("/wallet/transfer", walletHandler.Transfer)
			protected.GET("/wallet/transactions", walletHandler.Transactions)

			protected.GET("/payments", paymentHandler.History)
			protected.GET("/payments/earnings", paymentHandler.Earnings)
			protected.POST("/payments/checkout/post/:id", paymentHandler.CheckoutPost)
			protected.POST("/payments/checkout/subscription", paymentHandler.CheckoutSubscription)
			protected.POST("/payments/checkout/deposit", paymentHandler.CheckoutDeposit)
			protected.POST("/payments/connect", paymentHandler.ConnectAccount)
			protected.GET("/payments/balance", paymentHandler.Balance)
			protected.POST("/payments/payouts", paymentHandler.CreatePayout)
			protected.GET("/payments/payouts", paymentHandler.ListPayouts)
			protected.DELETE("/payments/payouts/:id", paymentHandler.CancelPayout)

			protected.POST("/comments", commentHandler.AddComment)
			protected.POST("/comments/:id/like", commentHandler.LikeComment)
			protected.DELETE("/comments/:id", commentHandler.DeleteComment)

			protected.GET("/conversations", convHandler.ListConversations)
			protected.POST("/conversations/messages", convHandler.SendMessage)
			protected.GET("/conversations/search", convHandler.SearchChatUsers)
			protected.GET("/conversations/:id/messages", convHandler.ListMessages)
			protected.POST("/conversations/:id/seen", convHandler.MarkSeen)
			protected.DELETE("/conversations/:id", convHandler.DeleteConversation)

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("ADMIN"))
			{
				admin.GET("/dashboard", adminHandler.Dashboard)
				admin.GET("/users", adminHandler.ListUsers)
				admin.PUT("/users/:id/block", adminHandler.SetUserBlocked)
				admin.GET("/reports", adminHandler.ListReports)
				admin.POST("/categories", categoryHandler.CreateCategory)
				admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
				admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)
			}
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing queue: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}

package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Hiyashree/birthday-project/config"
	"github.com/Hiyashree/birthday-project/database"
	"github.com/Hiyashree/birthday-project/digest"
	"github.com/Hiyashree/birthday-project/friendship"
	"github.com/Hiyashree/birthday-project/handlers"
	"github.com/Hiyashree/birthday-project/mailer"
	"github.com/Hiyashree/birthday-project/middleware"
	"github.com/Hiyashree/birthday-project/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db, err := database.Connect(cfg.MysqlDSN)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		sugar.Fatalw("failed to create tables", "error", err)
	}

	accounts := store.NewAccountStore(db)
	relationships := store.NewRelationshipStore(db)
	invites := store.NewInviteStore(db)

	workflow := friendship.NewService(accounts, relationships)

	var sender mailer.Sender
	if cfg.EmailUser != "" && cfg.EmailPass != "" {
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	} else {
		sender = mailer.NewLogSender(sugar)
	}

	job := digest.NewJob(accounts, relationships, sender, sugar)
	scheduler := cron.New()
	if err := job.Register(scheduler, cfg.DigestCron); err != nil {
		sugar.Fatalw("failed to schedule birthday digest", "error", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := handlers.NewAuthHandler(accounts, cfg.JWTSecret, sugar)
	friendHandler := handlers.NewFriendHandler(workflow, sugar)
	userHandler := handlers.NewUserHandler(accounts, sugar)
	inviteHandler := handlers.NewInviteHandler(invites, sugar)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	r.POST("/friend-request", friendHandler.SendFriendRequest)
	r.GET("/friend-requests", friendHandler.GetFriendRequests)
	r.POST("/friend-request/respond", friendHandler.RespondFriendRequest)
	r.GET("/friends", friendHandler.GetFriends)

	r.GET("/search-users", userHandler.SearchUsers)
	r.GET("/me", middleware.Auth(cfg.JWTSecret), userHandler.GetCurrentUser)

	r.POST("/send-invite", inviteHandler.SendInvite)

	sugar.Infow("server starting", "addr", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

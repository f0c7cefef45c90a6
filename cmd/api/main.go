package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Azadarx/lifeCoaching-backend/internal/config"
	"github.com/Azadarx/lifeCoaching-backend/internal/gateway"
	"github.com/Azadarx/lifeCoaching-backend/internal/handlers"
	"github.com/Azadarx/lifeCoaching-backend/internal/mailer"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestID())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var mail mailer.Mailer
	if cfg.MailEnabled() {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	} else {
		log.Printf("warning: EMAIL_USER/EMAIL_PASS not set, email sending disabled")
		mail = mailer.Disabled{}
	}

	hcfg := handlers.HandlerConfig{
		Gateway:    gateway.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		Mailer:     mail,
		Secret:     cfg.RazorpayKeySecret,
		AdminEmail: cfg.AdminEmail,
		StaticDir:  cfg.StaticDir,
	}

	r := setupRouter(hcfg)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

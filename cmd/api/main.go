package main

import (
	"context"
	"log"
	"net/http"

	"github.com/ramo772/blog-management-api/cmd/api/auth"
	"github.com/ramo772/blog-management-api/cmd/api/router"
	"github.com/ramo772/blog-management-api/cmd/api/services"
	"github.com/ramo772/blog-management-api/config"
	"github.com/ramo772/blog-management-api/db"
	"github.com/ramo772/blog-management-api/eventbus"
	"github.com/ramo772/blog-management-api/internal/logger"
	"github.com/ramo772/blog-management-api/repositories"
)

// @title           Blog Management API
// @version         1.0
// @description     CRUD REST backend for a blogging application
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	var bus eventbus.Publisher = eventbus.NoopPublisher{}
	if cfg.Kafka.BootstrapServers != "" {
		kafkaBus, err := eventbus.NewKafkaPublisher(cfg.Kafka.BootstrapServers)
		if err != nil {
			log.Fatal(err)
		}
		defer kafkaBus.Close()
		bus = kafkaBus
	}

	users := repositories.NewUserRepository(db.Database())
	blogs := repositories.NewBlogRepository(db.Database())

	authSvc := services.NewAuthService(users, jwtManager)
	blogSvc := services.NewBlogService(blogs, users, bus)

	r := router.New(authSvc, blogSvc)

	addr := cfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

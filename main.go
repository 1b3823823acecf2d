package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"noticias-service/pkg/auth"
	"noticias-service/pkg/config"
	"noticias-service/pkg/handlers"
	"noticias-service/pkg/logging"
	"noticias-service/pkg/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	// Open the store and make sure the schema exists
	db, err := storage.Open(&cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to store: %v", err)
	}
	defer db.Close()

	if err := storage.Init(context.Background(), db); err != nil {
		logger.Fatalf("Failed to initialize schema: %v", err)
	}

	noticias := storage.NewNoticiaStorage(db)
	personajes := storage.NewPersonajeStorage(db)
	usuarios := storage.NewUsuarioStorage(db)

	// Initialize auth, seeding the configured admin login if any
	authService := auth.New(cfg.Auth.JWTSecret, usuarios)
	if cfg.Auth.Username != "" && cfg.Auth.Password != "" {
		if err := usuarios.Seed(context.Background(), cfg.Auth.Username, auth.HashPassword(cfg.Auth.Password)); err != nil {
			logger.Fatalf("Failed to seed admin usuario: %v", err)
		}
	}

	// Initialize handlers
	h := handlers.New(logger, noticias, personajes, authService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(logger))

	r.GET("/health", h.Health)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/session", authService.Middleware(), h.Session)

	// Noticias CRUD
	r.GET("/noticias", h.ListNoticias)
	r.POST("/noticias", h.CreateNoticia)
	r.GET("/noticias/:id", h.GetNoticia)
	r.PUT("/noticias/:id", h.UpdateNoticia)
	r.DELETE("/noticias/:id", h.DeleteNoticia)

	// Personajes CRUD
	r.GET("/personajes", h.ListPersonajes)
	r.POST("/personajes", h.CreatePersonaje)
	r.GET("/personajes/:id", h.GetPersonaje)
	r.PUT("/personajes/:id", h.UpdatePersonaje)
	r.DELETE("/personajes/:id", h.DeletePersonaje)

	addr := cfg.Server.Addr()
	logger.Infof("Starting noticias API on http://%s", addr)

	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

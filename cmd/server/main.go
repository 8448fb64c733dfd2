// Package main is the entry point for the Juridicol API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"juridicol/internal/domain/archivo"
	"juridicol/internal/domain/auth"
	"juridicol/internal/domain/consulta"
	"juridicol/internal/domain/solicitante"
	"juridicol/internal/domain/usuario"
	v1 "juridicol/internal/infrastructure/http/v1"
	"juridicol/internal/infrastructure/mail"
	"juridicol/internal/infrastructure/numerator"
	"juridicol/internal/infrastructure/objectstore"
	"juridicol/internal/infrastructure/storage/postgres"
	"juridicol/internal/infrastructure/storage/postgres/case_repo"
	"juridicol/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting juridicol server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Object store ---
	store, err := objectstore.NewFS(getEnv("OBJECT_STORE_DIR", "./data/objects"))
	if err != nil {
		log.Fatalw("failed to initialize object store", "error", err)
	}

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtConfig := auth.DefaultJWTConfig(jwtSecret)
	if ttl := getEnvDuration("JWT_ACCESS_TTL", 0); ttl > 0 {
		jwtConfig.AccessTokenTTL = ttl
	}
	jwtService := auth.NewJWTService(jwtConfig)

	// --- Repositories ---
	solicitanteRepo := case_repo.NewSolicitanteRepo(txManager)
	consultaRepo := case_repo.NewConsultaRepo(txManager)
	archivoRepo := case_repo.NewArchivoRepo(txManager)
	usuarioRepo := case_repo.NewUsuarioRepo(txManager)

	// --- Services ---
	radicados := numerator.New(txManager)

	solicitanteService := solicitante.NewService(solicitanteRepo, txManager)
	consultaService := consulta.NewService(consultaRepo, txManager, radicados)
	archivoService := archivo.NewService(archivoRepo, store, txManager)
	usuarioService := usuario.NewService(usuarioRepo, txManager, mail.NewLogMailer())
	authService := auth.NewService(usuarioRepo, jwtService)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		TokenValidator: jwtService,
		AuthService:    authService,
		Solicitantes:   solicitanteService,
		Consultas:      consultaService,
		Archivos:       archivoService,
		Usuarios:       usuarioService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

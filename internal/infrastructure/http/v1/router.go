// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"juridicol/internal/domain/archivo"
	"juridicol/internal/domain/auth"
	"juridicol/internal/domain/consulta"
	"juridicol/internal/domain/solicitante"
	"juridicol/internal/domain/usuario"
	"juridicol/internal/infrastructure/http/v1/handlers"
	"juridicol/internal/infrastructure/http/v1/middleware"
	"juridicol/internal/infrastructure/storage/postgres"
	"juridicol/pkg/logger"
)

// RouterConfig wires the services into the HTTP layer.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	TokenValidator auth.TokenValidator
	AuthService    *auth.Service

	Solicitantes *solicitante.Service
	Consultas    *consulta.Service
	Archivos     *archivo.Service
	Usuarios     *usuario.Service
}

// NewRouter creates and configures the gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Order matters: recovery outermost, then tracing, logging, error mapping.
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	authHandler := handlers.NewAuthHandler(cfg.AuthService)
	solicitanteHandler := handlers.NewSolicitanteHandler(cfg.Solicitantes)
	consultaHandler := handlers.NewConsultaHandler(cfg.Consultas)
	archivoHandler := handlers.NewArchivoHandler(cfg.Archivos)
	usuarioHandler := handlers.NewUsuarioHandler(cfg.Usuarios)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.TokenValidator))

		solicitantes := protected.Group("/solicitantes")
		{
			solicitantes.POST("", solicitanteHandler.Create)
			solicitantes.GET("", solicitanteHandler.List)
			solicitantes.GET("/:id", solicitanteHandler.Get)
			solicitantes.PUT("/:id", solicitanteHandler.Update)
			solicitantes.DELETE("/:id",
				middleware.RequireRol(string(usuario.RolAdministrador)), solicitanteHandler.Delete)
		}

		consultas := protected.Group("/consultas")
		{
			consultas.POST("", consultaHandler.Create)
			consultas.GET("", consultaHandler.List)
			consultas.GET("/:id", consultaHandler.Get)
			consultas.GET("/radicado/:radicado", consultaHandler.GetByRadicado)
			consultas.PUT("/:id", consultaHandler.Update)
			consultas.POST("/:id/asignar",
				middleware.RequireRol(string(usuario.RolProfesor), string(usuario.RolAdministrador)),
				consultaHandler.Asignar)
			consultas.POST("/:id/finalizar", consultaHandler.Finalizar)
			consultas.DELETE("/:id",
				middleware.RequireRol(string(usuario.RolAdministrador)), consultaHandler.Delete)

			consultas.POST("/:id/archivos", archivoHandler.Upload)
			consultas.GET("/:id/archivos", archivoHandler.ListByConsulta)
		}

		archivos := protected.Group("/archivos")
		{
			archivos.GET("/:id", archivoHandler.Get)
			archivos.GET("/:id/download", archivoHandler.Download)
			archivos.DELETE("/:id", archivoHandler.Delete)
		}

		usuarios := protected.Group("/usuarios")
		usuarios.Use(middleware.RequireRol(string(usuario.RolProfesor), string(usuario.RolAdministrador)))
		{
			usuarios.POST("", usuarioHandler.Create)
			usuarios.GET("", usuarioHandler.List)
			usuarios.GET("/:id", usuarioHandler.Get)
			usuarios.PUT("/:id", usuarioHandler.Update)
			usuarios.POST("/:id/password", usuarioHandler.ChangePassword)
			usuarios.POST("/:id/deactivate",
				middleware.RequireRol(string(usuario.RolAdministrador)), usuarioHandler.Deactivate)
		}
	}

	return router
}

package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ouroverde-system/config"
	"ouroverde-system/internal/database"
	"ouroverde-system/internal/handlers"
	"ouroverde-system/internal/middleware"
	"ouroverde-system/internal/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.Auth.JWTSecret)

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := handlers.SeedAdmin(db, cfg.Auth.AdminUser, cfg.Auth.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)

	authHandler := handlers.NewAuthHandler(db)
	clienteHandler := handlers.NewClienteHandler(db, redisClient)
	produtoHandler := handlers.NewProdutoHandler(db, redisClient)
	pedidoHandler := handlers.NewPedidoHandler(db)
	analyticsHandler := handlers.NewAnalyticsHandler(db)

	r := gin.Default()

	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit("120-M"))

	// --- Public API Group ---
	public := r.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth())
	{
		clientes := protected.Group("/clientes")
		{
			clientes.GET("", clienteHandler.List)
			clientes.POST("", clienteHandler.Create)
			clientes.GET("/:id", clienteHandler.Get)
			clientes.PUT("/:id", clienteHandler.Update)
			clientes.DELETE("/:id", clienteHandler.Delete)
		}

		produtos := protected.Group("/produtos")
		{
			produtos.GET("", produtoHandler.List)
			produtos.POST("", produtoHandler.Create)
			produtos.GET("/cp/:cp", produtoHandler.GetByCP)
			produtos.GET("/:id", produtoHandler.Get)
			produtos.PUT("/:id", produtoHandler.Update)
			produtos.DELETE("/:id", produtoHandler.Delete)
		}

		pedidos := protected.Group("/pedidos")
		{
			pedidos.POST("", pedidoHandler.Create)
			pedidos.GET("", pedidoHandler.List)
			pedidos.GET("/:id", pedidoHandler.Get)
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/resumo", analyticsHandler.Resumo)
			analytics.GET("/vendas-por-dia", analyticsHandler.VendasPorDia)
			analytics.GET("/vendas-por-mes", analyticsHandler.VendasPorMes)
			analytics.GET("/vendas-por-produto", analyticsHandler.VendasPorProduto)
			analytics.GET("/top-produtos", analyticsHandler.TopProdutos)
			analytics.GET("/vendas-por-categoria", analyticsHandler.VendasPorCategoria)
			analytics.GET("/produtos-por-mes", analyticsHandler.ProdutosPorMes)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   "Server is running",
			"timestamp": time.Now(),
		})
	})

	port := ":" + cfg.Server.Port
	log.Printf("Starting server on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JustinFoxy/ToDoList/internal/handlers"
	"github.com/JustinFoxy/ToDoList/internal/repositories"
	"github.com/JustinFoxy/ToDoList/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// リポジトリ
	todoRepo := repositories.NewTodoRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// サービス
	todoService := services.NewTodoService(todoRepo)
	userService := services.NewUserService(userRepo)

	// ハンドラー
	todoHandler := handlers.NewTodoHandler(todoService)
	userHandler := handlers.NewUserHandler(userService)

	// ルーティング
	r.GET("/api/hello", HelloHandler)
	r.GET("/api/dbcheck", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})

	r.POST("/api/users/register", userHandler.RegisterHandler)
	r.POST("/api/users/login", userHandler.LoginHandler)

	r.GET("/api/todos", todoHandler.ListTodosHandler)
	r.GET("/api/todos/roots", todoHandler.ListRootTodosHandler)
	r.GET("/api/todos/children", todoHandler.ListChildTodosHandler)
	r.POST("/api/todos", todoHandler.CreateTodoHandler)
	r.PUT("/api/todos/:id", todoHandler.UpdateTodoHandler)
	r.DELETE("/api/todos/:id", todoHandler.DeleteTodoHandler)

	return r
}

// HelloHandler はシンプルなヘルスチェックエンドポイントです。
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Go Backend!"})
}

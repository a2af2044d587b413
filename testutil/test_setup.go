// Package testutil はテスト用のDB・ルーターのセットアップヘルパーを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/JustinFoxy/ToDoList/internal/database"
	"github.com/JustinFoxy/ToDoList/internal/models"
	"github.com/JustinFoxy/ToDoList/internal/repositories"
	"github.com/JustinFoxy/ToDoList/internal/routes"
)

// SetupTestDB はテスト用のデータベース接続を確立し、スキーマを作り直し、
// テストユーザーを投入します。テスト用DBに接続できない環境ではスキップします。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.TodoRepository, *repositories.UserRepository) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Warning: Could not load .env file for tests: %v", err)
	}

	dbUser := os.Getenv("TEST_DB_USER")
	dbPass := os.Getenv("TEST_DB_PASS")
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbName := os.Getenv("TEST_DB_NAME")

	if dbUser == "" || dbHost == "" || dbPort == "" || dbName == "" {
		t.Skip("Skipping test: TEST_DB_* environment variables are not set")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("Skipping test: Failed to open database connection: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("Skipping test: Failed to ping database: %v", err)
	}

	// 毎回クリーンな状態にするためテーブルを作り直す。
	// 外部キー制約があるため todos -> users の順で削除。
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS=0;"); err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	if _, err := db.Exec("DROP TABLE IF EXISTS todos"); err != nil {
		t.Fatalf("Failed to drop todos table: %v", err)
	}
	if _, err := db.Exec("DROP TABLE IF EXISTS users"); err != nil {
		t.Fatalf("Failed to drop users table: %v", err)
	}
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS=1;"); err != nil {
		log.Printf("Failed to enable foreign key checks: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database schema: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)

	gin.SetMode(gin.TestMode)
	router := routes.SetupRouter(db)

	return db, router, todoRepo, userRepo
}

// RegisterTestUser は登録エンドポイント経由でユーザーを作成します。
func RegisterTestUser(t *testing.T, router *gin.Engine, name, password string) *models.User {
	payload := map[string]string{
		"name":     name,
		"password": password,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code, "ユーザー登録に失敗しました: %s", resp.Body.String())

	var createdUser models.User
	err := json.Unmarshal(resp.Body.Bytes(), &createdUser)
	require.NoError(t, err)
	require.NotZero(t, createdUser.ID)
	return &createdUser
}

// CreateTestTodo は作成エンドポイント経由でTODOを作成します。
// parentID がnilでなければ子タスクとして作成します。
func CreateTestTodo(t *testing.T, router *gin.Engine, content string, userID int, parentID *int) *models.Todo {
	payload := map[string]interface{}{
		"content": content,
		"userId":  userID,
	}
	if parentID != nil {
		payload["parentId"] = *parentID
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code, "TODO作成に失敗しました: %s", resp.Body.String())

	var createdTodo models.Todo
	err := json.Unmarshal(resp.Body.Bytes(), &createdTodo)
	require.NoError(t, err)
	require.NotZero(t, createdTodo.ID)
	return &createdTodo
}

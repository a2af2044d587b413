// Package databaseはMySQL接続とスキーマの初期化を行います。
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// GetDSN は環境変数からMySQL接続文字列 (DSN) を構築します。
func GetDSN() string {
	// main.go で godotenv.Load() が呼び出されるため、ここでは省略
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, name)
}

// InitDB はデータベース接続を初期化します。
func InitDB() *sql.DB {
	dsn := GetDSN()
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Fatal: Failed to open database connection: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		log.Fatalf("Fatal: Failed to ping database: %v", err)
	}
	log.Println("Successfully connected to MySQL database!")
	return db
}

// Migrate はusersテーブルとtodosテーブルを作成します。
// name のUNIQUE制約が重複登録の最終的な防波堤になります
// (アプリケーション側の事前チェックだけではレースに勝てないため)。
// todos.parent_id は自己参照の外部キーで、親の削除は子へカスケードします。
func Migrate(db *sql.DB) error {
	createUserTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		registered_time DATETIME NOT NULL
	);`
	if _, err := db.Exec(createUserTableSQL); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	createTodoTableSQL := `
	CREATE TABLE IF NOT EXISTS todos (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		parent_id INT NULL,
		content VARCHAR(255) NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		create_time DATETIME NOT NULL,
		update_time DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (parent_id) REFERENCES todos(id) ON DELETE CASCADE
	);`
	if _, err := db.Exec(createTodoTableSQL); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}

	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt" // パスワードのハッシュ化用

	"github.com/JustinFoxy/ToDoList/internal/models"
)

var (
	// ErrDuplicateName は同名のユーザーがすでに存在する場合のエラーです。
	ErrDuplicateName = errors.New("duplicate user name")
	// ErrUserNotFound はユーザーが見つからない場合のエラーです。
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository はusersテーブルに対するCRUD操作を行います。
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository は新しいUserRepositoryインスタンスを作成します。
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// HashPassword は与えられたパスワードをbcryptでハッシュ化します。
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// VerifyPassword はハッシュ化されたパスワードと平文のパスワードを比較します。
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Create は新しいユーザーをデータベースに挿入します。
// name のUNIQUE制約違反 (MySQLエラー1062) は ErrDuplicateName にマッピングします。
// 事前チェックとINSERTはアトミックではないため、こちらが最終的な判定になります。
func (r *UserRepository) Create(u *models.User) (*models.User, error) {
	query := "INSERT INTO users (name, password_hash, registered_time) VALUES (?, ?, ?)"
	result, err := r.DB.Exec(query, u.Name, u.PasswordHash, u.RegisteredTime)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrDuplicateName
		}
		log.Printf("Failed to insert user: %v", err)
		return nil, fmt.Errorf("could not insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	u.ID = int(id)

	return u, nil
}

// FindByName はユーザー名でユーザーを検索します。
func (r *UserRepository) FindByName(name string) (*models.User, error) {
	query := "SELECT id, name, password_hash, registered_time FROM users WHERE name = ?"
	var u models.User
	err := r.DB.QueryRow(query, name).Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.RegisteredTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Printf("Failed to query user by name: %v", err)
		return nil, fmt.Errorf("could not query user: %w", err)
	}
	return &u, nil
}

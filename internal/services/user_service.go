// Package services はユーザー・Todo関連のビジネスロジックを扱います。
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/JustinFoxy/ToDoList/internal/models"
	"github.com/JustinFoxy/ToDoList/internal/repositories"
)

// ErrInvalidCredentials はパスワードが一致しない場合のエラーです。
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService はユーザー関連のビジネスロジックを扱います。
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService は新しいUserServiceを作成します。
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register はユーザーを登録します。
// 同名ユーザーがすでに存在する場合は repositories.ErrDuplicateName を返します。
// レスポンスにパスワードハッシュは含めません。
func (s *UserService) Register(req models.UserRegisterRequest) (*models.User, error) {
	// 事前チェック。レースはINSERT時のUNIQUE制約 (1062 → ErrDuplicateName) が拾う。
	if _, err := s.userRepo.FindByName(req.Name); err == nil {
		return nil, repositories.ErrDuplicateName
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := repositories.HashPassword(req.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		Name:           req.Name,
		PasswordHash:   hashedPassword,
		RegisteredTime: time.Now(),
	}

	createdUser, err := s.userRepo.Create(newUser)
	if err != nil {
		return nil, err
	}
	createdUser.PasswordHash = "" // レスポンスにパスワードを含めない
	return createdUser, nil
}

// Authenticate はユーザーを認証し、成功したらユーザーを返します。
// ユーザーが存在しない場合は repositories.ErrUserNotFound、
// パスワードが一致しない場合は ErrInvalidCredentials を返します。
func (s *UserService) Authenticate(req models.UserLoginRequest) (*models.User, error) {
	foundUser, err := s.userRepo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}

	if err := repositories.VerifyPassword(foundUser.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	foundUser.PasswordHash = "" // レスポンスにパスワードを含めない
	return foundUser, nil
}

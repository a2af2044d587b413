package models

import "time"

// User はユーザーのデータベース構造体を表します。
// パスワードハッシュはJSONに出力しません。
type User struct {
	ID             int       `json:"id,omitempty"`
	Name           string    `json:"name" binding:"required"`
	PasswordHash   string    `json:"-"` // DBに保存するハッシュ化されたパスワード
	RegisteredTime time.Time `json:"registeredTime"`
}

// UserRegisterRequest はユーザー登録リクエストの構造体です。
type UserRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"` // 生パスワード
}

// UserLoginRequest はユーザーログインリクエストの構造体です。
type UserLoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Package modelsはTodoとUserのデータ構造を定義します。
package models

import "time"

// Todo はToDoタスクのデータベース構造体を表します。
// JSONタグ: クライアントとの通信用
// bindingタグ: Ginでのリクエストバリデーション用
type Todo struct {
	ID         int       `json:"id,omitempty"`                  // 主キー
	UserID     int       `json:"userId" binding:"required"`     // 所有ユーザーID (必須。IDは1始まりなのでゼロ値は不正)
	ParentID   *int      `json:"parentId,omitempty"`            // 親タスクID (ルートタスクはnull)
	Content    string    `json:"content" binding:"required"`    // タスクの内容（必須）
	Completed  bool      `json:"completed"`                     // 完了状態
	CreateTime time.Time `json:"createTime"`                    // 作成日時 (作成時に一度だけ設定)
	UpdateTime time.Time `json:"updateTime"`                    // 更新日時 (変更のたびに更新)
}

// TodoUpdateRequest はTodo更新リクエストの構造体です。
// content と completed 以外のフィールドはこのエンドポイントでは変更できません。
type TodoUpdateRequest struct {
	Content   string `json:"content" binding:"required"`
	Completed bool   `json:"completed"`
}

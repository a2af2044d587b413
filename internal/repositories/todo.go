// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/JustinFoxy/ToDoList/internal/models"
)

// ErrTodoNotFound はTODOが見つからない場合のエラーです。
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository はtodosテーブルに対するCRUD操作を行います。
type TodoRepository struct {
	DB *sql.DB
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{DB: db}
}

const todoColumns = "id, user_id, parent_id, content, completed, create_time, update_time"

// Create は新しいTodoタスクをデータベースに挿入し、採番されたIDをセットして返します。
func (r *TodoRepository) Create(t *models.Todo) (*models.Todo, error) {
	query := "INSERT INTO todos (user_id, parent_id, content, completed, create_time, update_time) VALUES (?, ?, ?, ?, ?, ?)"

	result, err := r.DB.Exec(query, t.UserID, t.ParentID, t.Content, t.Completed, t.CreateTime, t.UpdateTime)
	if err != nil {
		log.Printf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	t.ID = int(id)

	return t, nil
}

// FindByID は指定されたIDのTodoタスクをデータベースから取得します。
func (r *TodoRepository) FindByID(id int) (*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE id = ?"

	var t models.Todo
	err := r.DB.QueryRow(query, id).Scan(
		&t.ID, &t.UserID, &t.ParentID, &t.Content, &t.Completed, &t.CreateTime, &t.UpdateTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}

	return &t, nil
}

// FindAll はすべてのTodoタスクを取得します。
func (r *TodoRepository) FindAll() ([]*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos ORDER BY id"
	return r.queryTodos(query)
}

// FindByUserID は指定されたユーザーのTodoタスクを取得します。
func (r *TodoRepository) FindByUserID(userID int) ([]*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE user_id = ? ORDER BY id"
	return r.queryTodos(query, userID)
}

// FindRoots は指定されたユーザーのルートタスク (parent_id がNULL) を取得します。
func (r *TodoRepository) FindRoots(userID int) ([]*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE user_id = ? AND parent_id IS NULL ORDER BY id"
	return r.queryTodos(query, userID)
}

// FindByParentID は指定された親タスクの直下の子タスクを取得します。ユーザーは問いません。
func (r *TodoRepository) FindByParentID(parentID int) ([]*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE parent_id = ? ORDER BY id"
	return r.queryTodos(query, parentID)
}

// queryTodos は複数行のSELECTを実行し、結果をスキャンします。
// 一致する行がない場合は空のスライスを返します (nullではなく[]をJSONに出すため)。
func (r *TodoRepository) queryTodos(query string, args ...interface{}) ([]*models.Todo, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		log.Printf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		var t models.Todo
		err := rows.Scan(&t.ID, &t.UserID, &t.ParentID, &t.Content, &t.Completed, &t.CreateTime, &t.UpdateTime)
		if err != nil {
			log.Printf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// Update は指定されたIDのTodoのcontent/completed/update_timeを上書きします。
// 存在確認は呼び出し側 (サービス層のFindByID) が行うため、
// 更新行数が0でもエラーにはしません。
func (r *TodoRepository) Update(id int, t *models.Todo) error {
	query := "UPDATE todos SET content = ?, completed = ?, update_time = ? WHERE id = ?"

	_, err := r.DB.Exec(query, t.Content, t.Completed, t.UpdateTime, id)
	if err != nil {
		log.Printf("Failed to update todo: %v", err)
		return fmt.Errorf("could not update todo: %w", err)
	}

	return nil
}

// Delete は指定されたIDのTodoタスクを削除し、削除された行数を返します。
// 子タスクの削除はストレージ側のカスケードに委ねます。
func (r *TodoRepository) Delete(id int) (int64, error) {
	query := "DELETE FROM todos WHERE id = ?"

	result, err := r.DB.Exec(query, id)
	if err != nil {
		log.Printf("Failed to delete todo: %v", err)
		return 0, fmt.Errorf("could not delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}

	return rowsAffected, nil
}

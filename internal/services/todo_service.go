package services

import (
	"time"

	"github.com/JustinFoxy/ToDoList/internal/models"
	"github.com/JustinFoxy/ToDoList/internal/repositories"
)

// TodoService はTodo関連のビジネスロジックを扱います。
type TodoService struct {
	todoRepo *repositories.TodoRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo *repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// Create は新しいTodoを作成します。
// クライアントが何を送ってきても completed は未完了、
// create_time と update_time は現在時刻で上書きします。
func (s *TodoService) Create(todo *models.Todo) (*models.Todo, error) {
	now := time.Now()
	todo.Completed = false
	todo.CreateTime = now
	todo.UpdateTime = now
	return s.todoRepo.Create(todo)
}

// List はTodoを取得します。userIDが指定されていればそのユーザーのもののみ。
func (s *TodoService) List(userID *int) ([]*models.Todo, error) {
	if userID != nil {
		return s.todoRepo.FindByUserID(*userID)
	}
	return s.todoRepo.FindAll()
}

// ListRoots は指定されたユーザーのルートタスク (親を持たないTodo) を取得します。
func (s *TodoService) ListRoots(userID int) ([]*models.Todo, error) {
	return s.todoRepo.FindRoots(userID)
}

// ListChildren は指定された親タスクの子タスクを取得します。
func (s *TodoService) ListChildren(parentID int) ([]*models.Todo, error) {
	return s.todoRepo.FindByParentID(parentID)
}

// Update は指定IDのTodoのcontentとcompletedを上書きし、update_timeを更新します。
// user_id / parent_id / create_time はこの操作では変更されません。
// IDが存在しない場合は repositories.ErrTodoNotFound を返します。
func (s *TodoService) Update(id int, req models.TodoUpdateRequest) (*models.Todo, error) {
	existing, err := s.todoRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Content = req.Content
	existing.Completed = req.Completed
	existing.UpdateTime = time.Now()

	if err := s.todoRepo.Update(id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete は指定IDのTodoを削除します。
// 行が削除された場合はtrue、対象が存在しなかった場合はfalseを返します。
// 子タスクはストレージ側のカスケードで一緒に削除されます。
func (s *TodoService) Delete(id int) (bool, error) {
	rows, err := s.todoRepo.Delete(id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

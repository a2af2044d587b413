// Package handlers はHTTPリクエストをサービス層の呼び出しに変換します。
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JustinFoxy/ToDoList/internal/models"
	"github.com/JustinFoxy/ToDoList/internal/repositories"
	"github.com/JustinFoxy/ToDoList/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// ListTodosHandler はTodo一覧を返します。userIdクエリで絞り込みできます。
func (h *TodoHandler) ListTodosHandler(c *gin.Context) {
	var userID *int
	if v := c.Query("userId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
			return
		}
		userID = &id
	}

	todos, err := h.todoService.List(userID)
	if err != nil {
		log.Printf("Failed to fetch todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos from database"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// ListRootTodosHandler は指定ユーザーのルートタスクのみを返します。
func (h *TodoHandler) ListRootTodosHandler(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
		return
	}

	todos, err := h.todoService.ListRoots(userID)
	if err != nil {
		log.Printf("Failed to fetch root todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos from database"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// ListChildTodosHandler は指定された親タスクの子タスクを返します。
func (h *TodoHandler) ListChildTodosHandler(c *gin.Context) {
	parentID, err := strconv.Atoi(c.Query("parentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parentId format"})
		return
	}

	todos, err := h.todoService.ListChildren(parentID)
	if err != nil {
		log.Printf("Failed to fetch child todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos from database"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// CreateTodoHandler は新しいTodoを作成します。
// completed とタイムスタンプはサービス層が強制的に設定します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var newTodo models.Todo
	if err := c.ShouldBindJSON(&newTodo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	createdTodo, err := h.todoService.Create(&newTodo)
	if err != nil {
		log.Printf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save todo to database"})
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// UpdateTodoHandler は指定IDのTodoのcontentとcompletedを更新します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.TodoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	updatedTodo, err := h.todoService.Update(id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Printf("Failed to update todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo in database"})
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler は指定IDのTodoを削除します。
// 削除対象が存在しなかった場合は404を返します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	deleted, err := h.todoService.Delete(id)
	if err != nil {
		log.Printf("Failed to delete todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo from database"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}

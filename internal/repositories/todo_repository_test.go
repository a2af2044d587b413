package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinFoxy/ToDoList/internal/models"
	"github.com/JustinFoxy/ToDoList/internal/repositories"
	"github.com/JustinFoxy/ToDoList/testutil"
)

func seedUser(t *testing.T, userRepo *repositories.UserRepository, name string) *models.User {
	hash, err := repositories.HashPassword("password123")
	require.NoError(t, err)

	u, err := userRepo.Create(&models.User{
		Name:           name,
		PasswordHash:   hash,
		RegisteredTime: time.Now(),
	})
	require.NoError(t, err)
	return u
}

func TestTodoRepository_CreateAndFindByID(t *testing.T) {
	db, _, todoRepo, userRepo := testutil.SetupTestDB(t)
	defer db.Close()

	user := seedUser(t, userRepo, "alice")

	now := time.Now()
	created, err := todoRepo.Create(&models.Todo{
		UserID:     user.ID,
		Content:    "buy milk",
		CreateTime: now,
		UpdateTime: now,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := todoRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "buy milk", found.Content)
	assert.Equal(t, user.ID, found.UserID)
	assert.Nil(t, found.ParentID)
	assert.False(t, found.Completed)
}

func TestTodoRepository_FindByID_NotFound(t *testing.T) {
	db, _, todoRepo, _ := testutil.SetupTestDB(t)
	defer db.Close()

	_, err := todoRepo.FindByID(99999)
	assert.ErrorIs(t, err, repositories.ErrTodoNotFound)
}

func TestTodoRepository_UpdateMissingIDIsSilent(t *testing.T) {
	db, _, todoRepo, _ := testutil.SetupTestDB(t)
	defer db.Close()

	// 存在しないIDの更新は0行更新で終わり、エラーにはならない
	err := todoRepo.Update(99999, &models.Todo{
		Content:    "ghost",
		Completed:  true,
		UpdateTime: time.Now(),
	})
	assert.NoError(t, err)
}

func TestTodoRepository_DeleteReturnsRowsAffected(t *testing.T) {
	db, _, todoRepo, userRepo := testutil.SetupTestDB(t)
	defer db.Close()

	user := seedUser(t, userRepo, "alice")

	now := time.Now()
	created, err := todoRepo.Create(&models.Todo{
		UserID:     user.ID,
		Content:    "to delete",
		CreateTime: now,
		UpdateTime: now,
	})
	require.NoError(t, err)

	rows, err := todoRepo.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = todoRepo.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows, "Deleting a missing id affects zero rows")
}

func TestUserRepository_DuplicateNameMapsToSentinel(t *testing.T) {
	db, _, _, userRepo := testutil.SetupTestDB(t)
	defer db.Close()

	seedUser(t, userRepo, "alice")

	// UNIQUE制約違反 (1062) が ErrDuplicateName に変換される
	hash, err := repositories.HashPassword("otherpass")
	require.NoError(t, err)
	_, err = userRepo.Create(&models.User{
		Name:           "alice",
		PasswordHash:   hash,
		RegisteredTime: time.Now(),
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicateName)
}

func TestUserRepository_FindByName(t *testing.T) {
	db, _, _, userRepo := testutil.SetupTestDB(t)
	defer db.Close()

	created := seedUser(t, userRepo, "alice")

	found, err := userRepo.FindByName("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.NotEmpty(t, found.PasswordHash)

	_, err = userRepo.FindByName("nobody")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

func TestCommentSaveAndListByTask(t *testing.T) {
	client := newTestDB(t)
	svc := NewCommentService(repository.NewCommentRepository(client), newTestLogger())
	fx := &gormFixture{client: client}

	category := db.Category{Title: "Rock"}
	require.NoError(t, client.Create(&category).Error)
	task := fx.createTask(t, "Song", category.ID)
	other := fx.createTask(t, "Other Song", category.ID)

	for i := 0; i < 12; i++ {
		require.NoError(t, svc.Save(&db.Comment{
			Content: fmt.Sprintf("comment %d", i),
			Nick:    "listener",
			TaskID:  task.ID,
		}))
	}
	require.NoError(t, svc.Save(&db.Comment{Content: "elsewhere", Nick: "night_owl", TaskID: other.ID}))

	page, err := svc.GetPaginatedListByTask(task.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Len(t, page.Items, db.ItemsPerPage)
	assert.Equal(t, "comment 0", page.Items[0].Content)

	second, err := svc.GetPaginatedListByTask(task.ID, 2)
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)

	all, err := svc.GetPaginatedList(1)
	require.NoError(t, err)
	assert.Equal(t, int64(13), all.TotalCount)
}

func TestCommentDelete(t *testing.T) {
	client := newTestDB(t)
	svc := NewCommentService(repository.NewCommentRepository(client), newTestLogger())
	fx := &gormFixture{client: client}

	category := db.Category{Title: "Rock"}
	require.NoError(t, client.Create(&category).Error)
	task := fx.createTask(t, "Song", category.ID)

	comment := db.Comment{Content: "bye", Nick: "listener", TaskID: task.ID}
	require.NoError(t, svc.Save(&comment))

	require.NoError(t, svc.Delete(&comment))

	found, err := svc.FindOneByID(comment.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

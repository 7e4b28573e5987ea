package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserGetRoles(t *testing.T) {
	t.Run("adds base role when omitted", func(t *testing.T) {
		u := User{Roles: []string{RoleAdmin}}

		got := u.GetRoles()

		assert.Contains(t, got, RoleAdmin)
		assert.Contains(t, got, RoleUser)
	})

	t.Run("does not duplicate base role", func(t *testing.T) {
		u := User{Roles: []string{RoleUser, RoleAdmin, RoleUser}}

		got := u.GetRoles()

		count := 0
		for _, r := range got {
			if r == RoleUser {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("empty role set still yields base role", func(t *testing.T) {
		u := User{}

		assert.Equal(t, []string{RoleUser}, u.GetRoles())
	})
}

func TestUserIsAdmin(t *testing.T) {
	admin := User{Roles: []string{RoleAdmin}}
	regular := User{}

	assert.True(t, admin.IsAdmin())
	assert.False(t, regular.IsAdmin())
	assert.True(t, regular.HasRole(RoleUser))
}

func TestTaskAddTag(t *testing.T) {
	t.Run("ignores duplicate by id", func(t *testing.T) {
		task := Task{}
		tag := Tag{GormForkedModel: GormForkedModel{ID: 7}, Title: "vinyl"}

		task.AddTag(&tag)
		task.AddTag(&tag)

		assert.Len(t, task.Tags, 1)
	})

	t.Run("ignores duplicate by title for unsaved tags", func(t *testing.T) {
		task := Task{}

		task.AddTag(&Tag{Title: "live"})
		task.AddTag(&Tag{Title: "live"})

		assert.Len(t, task.Tags, 1)
	})

	t.Run("keeps distinct tags", func(t *testing.T) {
		task := Task{}

		task.AddTag(&Tag{GormForkedModel: GormForkedModel{ID: 1}, Title: "live"})
		task.AddTag(&Tag{GormForkedModel: GormForkedModel{ID: 2}, Title: "demo"})

		assert.Len(t, task.Tags, 2)
	})
}

func TestTaskRemoveTag(t *testing.T) {
	task := Task{}
	tag := Tag{GormForkedModel: GormForkedModel{ID: 3}, Title: "rare"}
	task.AddTag(&tag)
	task.AddTag(&Tag{GormForkedModel: GormForkedModel{ID: 4}, Title: "demo"})

	task.RemoveTag(&tag)

	assert.Len(t, task.Tags, 1)
	assert.Equal(t, "demo", task.Tags[0].Title)
}

func TestPageCount(t *testing.T) {
	p := Page[Task]{TotalCount: 25, PageSize: ItemsPerPage}
	assert.Equal(t, 3, p.PageCount())

	empty := Page[Task]{PageSize: ItemsPerPage}
	assert.Equal(t, 0, empty.PageCount())
	assert.True(t, empty.IsEmpty())

	exact := Page[Task]{TotalCount: 20, PageSize: ItemsPerPage}
	assert.Equal(t, 2, exact.PageCount())
}

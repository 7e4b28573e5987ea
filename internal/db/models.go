package db

import (
	"time"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type (
	GormForkedModel struct {
		ID        uint64 `gorm:"primarykey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		GormForkedModel
		Email    string   `gorm:"unique;not null"`
		Password string   `gorm:"not null"`
		Token    string   `gorm:"not null"`
		Roles    []string `gorm:"serializer:json"`
		Tasks    []Task
		Comments []Comment `gorm:"foreignKey:AuthorID"`
	}

	// GuestUser rows carry no unique index on email: deduplication happens in
	// the service layer (lookup-then-insert).
	GuestUser struct {
		GormForkedModel
		Email string `gorm:"not null"`
	}

	Category struct {
		GormForkedModel
		Title string `gorm:"not null"`
		Tasks []Task
	}

	Artist struct {
		GormForkedModel
		Name  string `gorm:"not null"`
		Tasks []Task
	}

	Genre struct {
		GormForkedModel
		Name  string `gorm:"not null"`
		Tasks []Task
	}

	Tag struct {
		GormForkedModel
		Title string `gorm:"not null"`
		Tasks []Task `gorm:"many2many:task_tags;"`
	}

	Task struct {
		GormForkedModel
		Title      string `gorm:"not null"`
		Blocked    bool   `gorm:"not null;default:false"`
		CategoryID uint64 `gorm:"not null"`
		Category   Category
		ArtistID   *uint64
		Artist     *Artist
		GenreID    *uint64
		Genre      *Genre
		UserID     *uint64
		User       *User
		Tags       []Tag `gorm:"many2many:task_tags;"`
		Comments   []Comment
	}

	Comment struct {
		GormForkedModel
		Content  string `gorm:"not null"`
		Nick     string
		AuthorID *uint64
		Author   *User
		TaskID   uint64 `gorm:"not null"`
		Task     *Task
	}
)

// GetRoles returns the user's roles with the base role always present,
// without duplicating it when already assigned.
func (u *User) GetRoles() []string {
	roles := make([]string, 0, len(u.Roles)+1)
	seen := false
	for _, role := range u.Roles {
		if role == RoleUser {
			if seen {
				continue
			}
			seen = true
		}
		roles = append(roles, role)
	}
	if !seen {
		roles = append(roles, RoleUser)
	}
	return roles
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.GetRoles() {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// HasTag reports whether the task already holds the tag, by id when both
// sides are persisted, by exact title otherwise.
func (t *Task) HasTag(tag *Tag) bool {
	for i := range t.Tags {
		if tag.ID != 0 && t.Tags[i].ID != 0 {
			if t.Tags[i].ID == tag.ID {
				return true
			}
			continue
		}
		if t.Tags[i].Title == tag.Title {
			return true
		}
	}
	return false
}

// AddTag appends the tag to the task's collection unless it is already
// present. The task side owns the association.
func (t *Task) AddTag(tag *Tag) {
	if t.HasTag(tag) {
		return
	}
	t.Tags = append(t.Tags, *tag)
}

func (t *Task) RemoveTag(tag *Tag) {
	for i := range t.Tags {
		if (tag.ID != 0 && t.Tags[i].ID == tag.ID) || (tag.ID == 0 && t.Tags[i].Title == tag.Title) {
			t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
			return
		}
	}
}

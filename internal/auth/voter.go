package auth

import (
	"github.com/songlist-dev/songlist-back/internal/db"
)

// Action is a permission checked against a task.
type Action string

const (
	ActionView   Action = "VIEW"
	ActionEdit   Action = "EDIT"
	ActionDelete Action = "DELETE"
	ActionBlock  Action = "BLOCK"
)

// TaskVoter decides whether a user may perform an action on a task. It is
// stateless and evaluated fresh on every call.
type TaskVoter struct{}

func NewTaskVoter() *TaskVoter {
	return &TaskVoter{}
}

// Vote denies unauthenticated actors and unknown actions. BLOCK needs the
// admin role; VIEW, EDIT and DELETE pass for admins or for the task's owner
// (identity match on the user id).
func (v *TaskVoter) Vote(action Action, task *db.Task, user *db.User) bool {
	if user == nil {
		return false
	}

	switch action {
	case ActionView, ActionEdit, ActionDelete:
		return user.IsAdmin() || v.isOwner(task, user)
	case ActionBlock:
		return user.IsAdmin()
	default:
		return false
	}
}

func (v *TaskVoter) isOwner(task *db.Task, user *db.User) bool {
	return task.UserID != nil && *task.UserID == user.ID
}

package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type (
	TaskRepository struct {
		db *gorm.DB
	}

	// TaskFilters narrows a task listing; a zero field means "no filter".
	TaskFilters struct {
		CategoryID uint64
		TagID      uint64
	}
)

func NewTaskRepository(client *gorm.DB) *TaskRepository {
	return &TaskRepository{db: client}
}

func (f TaskFilters) isEmpty() bool {
	return f.CategoryID == 0 && f.TagID == 0
}

func (r *TaskRepository) queryAll() *gorm.DB {
	return r.db.Model(&db.Task{}).
		Preload("Category").
		Preload("Artist").
		Preload("Genre").
		Preload("Tags").
		Preload("User")
}

func (r *TaskRepository) ListPage(page int, filters TaskFilters) (*db.Page[db.Task], error) {
	if filters.isEmpty() {
		return paginate[db.Task](r.queryAll(), "updated_at DESC", page)
	}
	return r.listPageFiltered(page, filters)
}

// listPageFiltered joins the tag join table the way the app's other filtered
// listings do: raw squirrel SQL for the id set, then a preloaded fetch.
func (r *TaskRepository) listPageFiltered(page int, filters TaskFilters) (*db.Page[db.Task], error) {
	result := &db.Page[db.Task]{
		Items:    make([]db.Task, 0),
		Page:     page,
		PageSize: db.ItemsPerPage,
	}

	w := squirrel.Eq{}
	if filters.CategoryID != 0 {
		w["t.category_id"] = filters.CategoryID
	}
	if filters.TagID != 0 {
		w["tt.tag_id"] = filters.TagID
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(DISTINCT t.id)").From("tasks t").
		LeftJoin("task_tags tt ON t.id = tt.task_id").
		Where(w).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build count sql")
	}
	if res := r.db.Raw(countSQL, countArgs...).Scan(&result.TotalCount); res.Error != nil {
		return nil, errors.Wrap(res.Error, "count tasks")
	}

	if page < 1 {
		return result, nil
	}

	idSQL, idArgs, err := squirrel.
		Select("DISTINCT t.id", "t.updated_at").From("tasks t").
		LeftJoin("task_tags tt ON t.id = tt.task_id").
		Where(w).
		OrderBy("t.updated_at DESC").
		Limit(uint64(db.ItemsPerPage)).
		Offset(uint64((page - 1) * db.ItemsPerPage)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build page sql")
	}

	ids := make([]uint64, 0, db.ItemsPerPage)
	rows := make([]struct{ ID uint64 }, 0, db.ItemsPerPage)
	if res := r.db.Raw(idSQL, idArgs...).Scan(&rows); res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan task ids")
	}
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}
	if len(ids) == 0 {
		return result, nil
	}

	res := r.queryAll().Where("tasks.id IN ?", ids).Order("updated_at DESC").Find(&result.Items)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "fetch tasks")
	}

	return result, nil
}

func (r *TaskRepository) FindOneByID(id uint64) (*db.Task, error) {
	task := db.Task{}
	res := r.queryAll().Where("tasks.id = ?", id).First(&task)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &task, nil
}

// Save upserts the task. On update the tag collection replaces the stored
// one, so removed tags are detached as well.
func (r *TaskRepository) Save(task *db.Task) error {
	if task.ID == 0 {
		return r.db.Create(task).Error
	}

	tags := task.Tags
	if err := r.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return err
	}
	return r.db.Model(task).Association("Tags").Replace(tags)
}

func (r *TaskRepository) Delete(task *db.Task) error {
	return r.db.Select(clause.Associations).Delete(task).Error
}

func (r *TaskRepository) CountByCategory(category *db.Category) (int64, error) {
	var count int64
	res := r.db.Model(&db.Task{}).Where("category_id = ?", category.ID).Count(&count)
	return count, res.Error
}

func (r *TaskRepository) CountByArtist(artist *db.Artist) (int64, error) {
	var count int64
	res := r.db.Model(&db.Task{}).Where("artist_id = ?", artist.ID).Count(&count)
	return count, res.Error
}

func (r *TaskRepository) CountByGenre(genre *db.Genre) (int64, error) {
	var count int64
	res := r.db.Model(&db.Task{}).Where("genre_id = ?", genre.ID).Count(&count)
	return count, res.Error
}

package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

const (
	taskCount    = 100
	commentCount = 20
	userCount    = 10
)

var (
	categoryTitles = []string{"Rock", "Pop", "Jazz", "Classical", "Electronic", "Hip-Hop", "Folk", "Blues", "Metal", "Reggae"}
	artistNames    = []string{"The Wandering Keys", "Nora Veldt", "Cobalt Choir", "Marla & The Tides", "Ferrous Owl", "Static Meadow", "June Parade", "The Hollow Suns", "Vesper Lane", "Old Copper Band"}
	genreNames     = []string{"Alternative", "Indie", "Ambient", "Punk", "Soul", "Funk", "Country", "House", "Trance", "Ska"}
	tagTitles      = []string{"favorite", "live", "acoustic", "remix", "vinyl", "demo", "cover", "instrumental", "bootleg", "rare"}
	taskWords      = []string{"Midnight", "Echo", "River", "Static", "Velvet", "Harbor", "Ember", "Glass", "Winter", "Signal"}
	commentWords   = []string{"great", "love", "classic", "underrated", "loud", "smooth", "raw", "timeless"}
	nickWords      = []string{"listener", "crate_digger", "night_owl", "audiophile", "b_side", "tape_head"}
)

// Load seeds a development database. It is a no-op when tasks already exist,
// so restarts don't multiply the data set.
func Load(client *gorm.DB, logger *zap.SugaredLogger) error {
	var existing int64
	if err := client.Model(&db.Task{}).Count(&existing).Error; err != nil {
		return errors.Wrap(err, "count tasks")
	}
	if existing > 0 {
		logger.Info("Fixtures skipped, tasks already present.")
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	categories := make([]db.Category, len(categoryTitles))
	for i, title := range categoryTitles {
		categories[i] = db.Category{Title: title}
	}
	if err := client.Create(&categories).Error; err != nil {
		return errors.Wrap(err, "create categories")
	}

	artists := make([]db.Artist, len(artistNames))
	for i, name := range artistNames {
		artists[i] = db.Artist{Name: name}
	}
	if err := client.Create(&artists).Error; err != nil {
		return errors.Wrap(err, "create artists")
	}

	genres := make([]db.Genre, len(genreNames))
	for i, name := range genreNames {
		genres[i] = db.Genre{Name: name}
	}
	if err := client.Create(&genres).Error; err != nil {
		return errors.Wrap(err, "create genres")
	}

	tags := make([]db.Tag, len(tagTitles))
	for i, title := range tagTitles {
		tags[i] = db.Tag{Title: title}
	}
	if err := client.Create(&tags).Error; err != nil {
		return errors.Wrap(err, "create tags")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("user1234"), bcrypt.MinCost)
	if err != nil {
		return errors.Wrap(err, "hash fixture password")
	}
	users := make([]db.User, 0, userCount+1)
	for i := 0; i < userCount; i++ {
		users = append(users, db.User{
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: string(hash),
			Token:    fmt.Sprintf("fixture-token-%d", i),
		})
	}
	users = append(users, db.User{
		Email:    "admin@example.com",
		Password: string(hash),
		Token:    "fixture-token-admin",
		Roles:    []string{db.RoleAdmin},
	})
	if err := client.Create(&users).Error; err != nil {
		return errors.Wrap(err, "create users")
	}

	tasks := make([]db.Task, taskCount)
	for i := 0; i < taskCount; i++ {
		created := randomPastTime(rng)
		owner := users[rng.Intn(len(users))]
		task := db.Task{
			GormForkedModel: db.GormForkedModel{
				CreatedAt: created,
				UpdatedAt: created.Add(time.Duration(rng.Intn(72)) * time.Hour),
			},
			Title:      fmt.Sprintf("%s %s #%d", taskWords[rng.Intn(len(taskWords))], taskWords[rng.Intn(len(taskWords))], i),
			CategoryID: categories[rng.Intn(len(categories))].ID,
			ArtistID:   &artists[rng.Intn(len(artists))].ID,
			GenreID:    &genres[rng.Intn(len(genres))].ID,
			UserID:     &owner.ID,
		}
		for _, idx := range rng.Perm(len(tags))[:rng.Intn(6)] {
			task.AddTag(&tags[idx])
		}
		tasks[i] = task
	}
	if err := client.Create(&tasks).Error; err != nil {
		return errors.Wrap(err, "create tasks")
	}

	comments := make([]db.Comment, commentCount)
	for i := 0; i < commentCount; i++ {
		author := users[rng.Intn(len(users))]
		comments[i] = db.Comment{
			Content:  fmt.Sprintf("%s %s", commentWords[rng.Intn(len(commentWords))], commentWords[rng.Intn(len(commentWords))]),
			Nick:     fmt.Sprintf("%s%d", nickWords[rng.Intn(len(nickWords))], i),
			AuthorID: &author.ID,
			TaskID:   tasks[rng.Intn(len(tasks))].ID,
		}
	}
	if err := client.Create(&comments).Error; err != nil {
		return errors.Wrap(err, "create comments")
	}

	logger.Infow("Fixtures loaded.", "tasks", taskCount, "comments", commentCount)
	return nil
}

func randomPastTime(rng *rand.Rand) time.Time {
	daysAgo := 1 + rng.Intn(100)
	return time.Now().AddDate(0, 0, -daysAgo)
}

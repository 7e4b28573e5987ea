package service

import (
	"strings"

	"github.com/songlist-dev/songlist-back/internal/db"
)

// TagResolver is the find-or-create collaborator the transformer writes
// through. FromText may create tag rows as a side effect.
type TagResolver interface {
	ResolveByTitle(title string) (tag *db.Tag, created bool, err error)
}

// TagsTransformer bridges the free-text comma-separated tag field and the
// typed tag collection stored on a task.
type TagsTransformer struct {
	tags TagResolver
}

func NewTagsTransformer(tags TagResolver) *TagsTransformer {
	return &TagsTransformer{tags: tags}
}

// ToText joins tag titles in collection order with ", ". An empty collection
// yields "".
func (t *TagsTransformer) ToText(tags []db.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	titles := make([]string, len(tags))
	for i := range tags {
		titles[i] = tags[i].Title
	}
	return strings.Join(titles, ", ")
}

// FromText splits the input on "," and resolves each segment to a tag,
// creating missing ones. Segments that trim to nothing are dropped without
// touching the resolver; kept segments keep their surrounding whitespace
// verbatim, so " live" is looked up and stored with the leading space.
// The result order matches the input order.
func (t *TagsTransformer) FromText(text string) ([]db.Tag, error) {
	result := make([]db.Tag, 0)
	for _, segment := range strings.Split(text, ",") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		tag, _, err := t.tags.ResolveByTitle(segment)
		if err != nil {
			return nil, err
		}
		result = append(result, *tag)
	}
	return result, nil
}

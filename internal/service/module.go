package service

import (
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(
		NewTaskService,
		NewCategoryService,
		NewArtistService,
		NewGenreService,
		NewTagService,
		NewCommentService,
		NewUserService,
		NewGuestUserService,
		func(tags *TagService) *TagsTransformer { return NewTagsTransformer(tags) },
	)
)

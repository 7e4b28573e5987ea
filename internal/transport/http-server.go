package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/auth"
	"github.com/songlist-dev/songlist-back/internal/config"
	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/service"
)

type (
	RegisterReq struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginReq struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	TokenResp struct {
		Token string `json:"token"`
	}

	PageResp[T any] struct {
		Items      []T   `json:"items"`
		TotalCount int64 `json:"total_count"`
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
	}

	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServerParams struct {
		fx.In

		Lifecycle   fx.Lifecycle
		Config      *config.Config
		Logger      *zap.SugaredLogger
		Tasks       *service.TaskService
		Categories  *service.CategoryService
		Artists     *service.ArtistService
		Genres      *service.GenreService
		Tags        *service.TagService
		Comments    *service.CommentService
		Users       *service.UserService
		Guests      *service.GuestUserService
		Transformer *service.TagsTransformer
		Voter       *auth.TaskVoter
	}

	HTTPServer struct {
		tasks       *service.TaskService
		categories  *service.CategoryService
		artists     *service.ArtistService
		genres      *service.GenreService
		tags        *service.TagService
		comments    *service.CommentService
		users       *service.UserService
		guests      *service.GuestUserService
		transformer *service.TagsTransformer
		voter       *auth.TaskVoter
		logger      *zap.SugaredLogger
	}
)

func NewHTTPServer(p HTTPServerParams) *HTTPServer {
	e := echo.New()

	instance := HTTPServer{
		tasks:       p.Tasks,
		categories:  p.Categories,
		artists:     p.Artists,
		genres:      p.Genres,
		tags:        p.Tags,
		comments:    p.Comments,
		users:       p.Users,
		guests:      p.Guests,
		transformer: p.Transformer,
		voter:       p.Voter,
		logger:      p.Logger,
	}

	e.POST("/auth/register", instance.Register)
	e.POST("/auth/login", instance.Login)

	taskG := e.Group("/task")
	taskG.GET("", instance.TaskIndex)
	taskG.GET("/:id", instance.TaskShow)
	taskG.POST("", instance.TaskCreate)
	taskG.PUT("/:id", instance.TaskUpdate)
	taskG.DELETE("/:id", instance.TaskDelete)
	taskG.POST("/:id/block", instance.TaskBlock)
	taskG.POST("/:id/comment", instance.CommentCreate)

	categoryG := e.Group("/category")
	categoryG.GET("", instance.CategoryIndex)
	categoryG.GET("/:id", instance.CategoryShow)
	categoryG.POST("", instance.CategoryCreate)
	categoryG.PUT("/:id", instance.CategoryUpdate)
	categoryG.DELETE("/:id", instance.CategoryDelete)

	artistG := e.Group("/artist")
	artistG.GET("", instance.ArtistIndex)
	artistG.GET("/:id", instance.ArtistShow)
	artistG.POST("", instance.ArtistCreate)
	artistG.PUT("/:id", instance.ArtistUpdate)
	artistG.DELETE("/:id", instance.ArtistDelete)

	genreG := e.Group("/genre")
	genreG.GET("", instance.GenreIndex)
	genreG.GET("/:id", instance.GenreShow)
	genreG.POST("", instance.GenreCreate)
	genreG.PUT("/:id", instance.GenreUpdate)
	genreG.DELETE("/:id", instance.GenreDelete)

	tagG := e.Group("/tag")
	tagG.GET("", instance.TagIndex)
	tagG.GET("/:id", instance.TagShow)
	tagG.POST("", instance.TagCreate)
	tagG.PUT("/:id", instance.TagUpdate)
	tagG.DELETE("/:id", instance.TagDelete)

	commentG := e.Group("/comment")
	commentG.GET("", instance.CommentIndex)
	commentG.DELETE("/:id", instance.CommentDelete)

	userG := e.Group("/user")
	userG.GET("", instance.UserIndex)
	userG.PATCH("/:id", instance.UserUpdate)

	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Path(), "/auth")
		},
		Handler: func(c echo.Context, reqBody, _ []byte) {
			p.Logger.Debugw("auth request", "path", c.Path(), "body", string(censorBody(reqBody)))
		},
	}))

	e.Use(instance.AuthMiddleware)

	e.Validator = &CustomValidator{validator: validator.New()}

	echo.NotFoundHandler = func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := p.Config.Host + ":" + p.Config.Port
				if err := e.Start(listen); err != nil && err != http.ErrServerClosed {
					e.Logger.Fatal("shutting down the server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("Stopping HTTP server.")
			return e.Shutdown(ctx)
		},
	})

	return &instance
}

func (s *HTTPServer) Register(c echo.Context) error {
	req := RegisterReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	_, token, err := s.users.Register(req.Email, req.Password, nil)
	if err != nil {
		if err == service.ErrEmailAlreadyRegistered {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, &TokenResp{Token: token})
}

func (s *HTTPServer) Login(c echo.Context) error {
	req := LoginReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.users.Login(req.Email, req.Password)
	if err != nil {
		if err == service.ErrLoginUserNotFound || err == service.ErrLoginPasswordDoesNotMatch {
			return c.NoContent(http.StatusUnauthorized)
		}
		return err
	}

	return c.JSON(http.StatusOK, &TokenResp{Token: token})
}

// AuthMiddleware resolves the X-Token header into the current user when
// present. It never rejects on its own; handlers enforce what they need.
func (s *HTTPServer) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""
		for key, values := range c.Request().Header {
			if strings.ToLower(key) == "x-token" {
				token = values[0]
				break
			}
		}
		if token == "" {
			return next(c)
		}

		user, err := s.users.FindOneByToken(token)
		if err != nil {
			return err
		}
		if user == nil {
			return c.NoContent(http.StatusUnauthorized)
		}

		c.Set("user", user)
		return next(c)
	}
}

////////

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// CurrentUser returns the authenticated user or nil for anonymous requests.
func CurrentUser(c echo.Context) *db.User {
	user, ok := c.Get("user").(*db.User)
	if !ok {
		return nil
	}
	return user
}

func RequireUser(c echo.Context) (*db.User, error) {
	user := CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}

func RequireAdmin(c echo.Context) (*db.User, error) {
	user, err := RequireUser(c)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}
	return user, nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return value, nil
}

func GetAndParseParam(c echo.Context, name string) (uint64, error) {
	v, e := GetParam(c, name)
	if e != nil {
		return 0, e
	}
	vv, e := strconv.ParseUint(v, 10, 64)
	if e != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return vv, nil
}

func GetPageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}

// censorBody blanks the password field of a JSON body before it is logged.
// Unparseable bodies pass through untouched.
func censorBody(body []byte) []byte {
	fields := map[string]interface{}{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return body
	}
	if _, ok := fields["password"]; !ok {
		return body
	}
	fields["password"] = "$censored"
	censored, err := json.Marshal(fields)
	if err != nil {
		return body
	}
	return censored
}

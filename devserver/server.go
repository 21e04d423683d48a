// Package devserver is a self-contained stub of the school backend. It speaks
// the exact wire contract the client packages expect, down to the endpoints
// that answer reads with 201, and backs the portal's demo mode and the test
// suites. It holds no real data and must never face a network.
package devserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/edumanage/portal/core"
	"github.com/edumanage/portal/core/session"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		DB             *DB
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
		hub  *hub
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	if opts.DB == nil {
		opts.DB = Seed()
	}
	s := &server{
		opts: opts,
		app:  echo.New(),
		hub:  newHub(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(ctx echo.Context) bool {
			// the conversations listing is addressed with its slash
			return ctx.Request().URL.Path == "/api/messages/"
		},
	}))
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = stubHTTPErrorHandler
	s.app.Debug = debug

	s.app.GET("/", home)
	s.app.POST("/api/users/login", s.login)
	s.app.POST("/api/users/logout", s.logout)

	auth := middleware.JWTWithConfig(stubJWTConfig)
	s.app.GET("/ws/notifications", s.hub.serve, auth)

	admin := s.app.Group("/api/admin", auth, requireRole(session.RoleAdmin))
	s.registerAdminAPI(admin)

	teacher := s.app.Group("/api/teacher", auth, requireRole(session.RoleTeacher))
	s.registerTeacherAPI(teacher)

	parent := s.app.Group("/api/parent", auth, requireRole(session.RoleParent))
	s.registerParentAPI(parent)

	messages := s.app.Group("/api/messages", auth)
	s.registerMessagesAPI(messages)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "EduManage stub backend")
}

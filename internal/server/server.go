package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mihirp/lostfound/internal/handler"
	"github.com/mihirp/lostfound/internal/repository"
	"github.com/mihirp/lostfound/internal/service"
	"github.com/mihirp/lostfound/internal/storage"
	webembed "github.com/mihirp/lostfound/web"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, uploader storage.Uploader, tagger service.Tagger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.BodyLimit("10M"))

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = errorPageHandler

	itemRepo := repository.NewItemRepository(db)
	reportSvc := service.NewReportService(itemRepo, uploader, tagger)
	browseSvc := service.NewBrowseService(itemRepo)
	pages := handler.NewPageHandler(reportSvc, browseSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.GET("/", pages.Home)
	e.GET("/report-lost", pages.ReportLost)
	e.GET("/report-found", pages.ReportFound)
	e.GET("/view-items", pages.ViewItems)
	e.GET("/item/:id", pages.ItemDetail)
	e.POST("/submit-item", pages.SubmitItem)

	e.StaticFS("/static", webembed.StaticFS())

	return &Server{e: e}, nil
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// errorPageHandler renders the shared error template for any error that
// escapes a handler. Validation failures never reach here; handlers render
// those inline on the form.
func errorPageHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again."

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if rerr := c.Render(code, "error.html", handler.NewErrorPageData(code, message)); rerr != nil {
		c.Logger().Errorf("render error page: %v", rerr)
		_ = c.String(code, message)
	}
}

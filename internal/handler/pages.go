package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mihirp/lostfound/internal/model"
	"github.com/mihirp/lostfound/internal/service"
)

type PageHandler struct {
	reports service.ReportService
	browse  service.BrowseService
}

func NewPageHandler(reports service.ReportService, browse service.BrowseService) *PageHandler {
	return &PageHandler{reports: reports, browse: browse}
}

type PageData struct {
	Title string
}

type formValues struct {
	ItemName    string
	Description string
	Location    string
	ContactInfo string
}

type formPageData struct {
	PageData
	ItemType string
	Values   formValues
	Errors   []string
}

type listPageData struct {
	PageData
	Items  []model.Item
	Search string
}

type detailPageData struct {
	PageData
	Item *model.Item
}

// ErrorPageData feeds the error template; the server's HTTP error handler
// fills it in.
type ErrorPageData struct {
	PageData
	Status  int
	Message string
}

func NewErrorPageData(status int, message string) ErrorPageData {
	return ErrorPageData{
		PageData: PageData{Title: http.StatusText(status)},
		Status:   status,
		Message:  message,
	}
}

func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", PageData{Title: "Home"})
}

func (h *PageHandler) ReportLost(c echo.Context) error {
	return c.Render(http.StatusOK, "report_form.html", formPageData{
		PageData: PageData{Title: "Report Lost Item"},
		ItemType: model.ItemTypeLost,
	})
}

func (h *PageHandler) ReportFound(c echo.Context) error {
	return c.Render(http.StatusOK, "report_form.html", formPageData{
		PageData: PageData{Title: "Report Found Item"},
		ItemType: model.ItemTypeFound,
	})
}

func (h *PageHandler) ViewItems(c echo.Context) error {
	search := c.QueryParam("search")
	items, err := h.browse.List(c.Request().Context(), search)
	if err != nil {
		c.Logger().Errorf("list items: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load items")
	}
	return c.Render(http.StatusOK, "items.html", listPageData{
		PageData: PageData{Title: "Browse Items"},
		Items:    items,
		Search:   search,
	})
}

func (h *PageHandler) ItemDetail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "item not found")
	}
	item, err := h.browse.Get(c.Request().Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		c.Logger().Errorf("get item %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load item")
	}
	return c.Render(http.StatusOK, "item_detail.html", detailPageData{
		PageData: PageData{Title: item.ItemName},
		Item:     item,
	})
}

func (h *PageHandler) SubmitItem(c echo.Context) error {
	in := service.SubmitInput{
		ItemType:    c.FormValue("item_type"),
		ItemName:    c.FormValue("item_name"),
		Description: c.FormValue("description"),
		Location:    c.FormValue("location"),
		ContactInfo: c.FormValue("contact_info"),
	}

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		src, err := file.Open()
		if err != nil {
			c.Logger().Warnf("open uploaded image: %v", err)
		} else {
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				c.Logger().Warnf("read uploaded image: %v", err)
			} else {
				in.Image = data
				in.ImageContentType = file.Header.Get("Content-Type")
			}
		}
	}

	_, err := h.reports.Submit(c.Request().Context(), in)
	if err != nil {
		if verr, ok := err.(*service.ValidationError); ok {
			return c.Render(http.StatusBadRequest, "report_form.html", formPageData{
				PageData: PageData{Title: formTitle(in.ItemType)},
				ItemType: in.ItemType,
				Values: formValues{
					ItemName:    in.ItemName,
					Description: in.Description,
					Location:    in.Location,
					ContactInfo: in.ContactInfo,
				},
				Errors: fieldMessages(verr.Fields),
			})
		}
		c.Logger().Errorf("submit item: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save report")
	}

	return c.Redirect(http.StatusSeeOther, "/view-items")
}

func formTitle(itemType string) string {
	if itemType == model.ItemTypeFound {
		return "Report Found Item"
	}
	return "Report Lost Item"
}

var fieldMessage = map[string]string{
	"item_type":    "Item type must be either lost or found.",
	"item_name":    "Item name must be between 2 and 100 characters.",
	"description":  "Description must be at most 500 characters.",
	"location":     "Location must be between 2 and 255 characters.",
	"contact_info": "Contact info is required (at most 100 characters).",
}

func fieldMessages(fields []string) []string {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		if m, ok := fieldMessage[f]; ok {
			msgs = append(msgs, m)
		} else {
			msgs = append(msgs, "Invalid value for "+f+".")
		}
	}
	return msgs
}

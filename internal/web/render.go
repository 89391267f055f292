package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/hoteltheretinue/retinue-web/internal/content"
	"github.com/hoteltheretinue/retinue-web/internal/hotelapi"
	"github.com/hoteltheretinue/retinue-web/pkg/logger"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"inr":        formatINR,
	"formatDate": formatDisplayDate,
	"roomLabel":  roomTypeLabel,
}

// parseTemplates builds one template set per page, each sharing the
// layout and its partials.
func parseTemplates() (map[string]*template.Template, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := path.Base(page)
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

// baseData is embedded by every page's view model.
type baseData struct {
	Title    string
	LoggedIn bool
	Hotel    content.HotelInfo
}

func (h *Handlers) base(r *http.Request, title string) baseData {
	return baseData{
		Title:    title,
		LoggedIn: h.sessions.IsLoggedIn(r.Context()),
		Hotel:    content.Hotel,
	}
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl, ok := h.templates[page]
	if !ok {
		logger.ErrorContext(r.Context(), "Unknown template", "page", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.ErrorContext(r.Context(), "Template render failed", "page", page, "error", err)
	}
}

// formatINR renders rupees with Indian digit grouping: the last three
// digits, then groups of two (12,34,567).
func formatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}

func formatDisplayDate(value string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2 Jan 2006")
		}
	}
	return value
}

func roomTypeLabel(roomType string) string {
	if label, ok := hotelapi.RoomTypeLabels[roomType]; ok {
		return label
	}
	return roomType
}

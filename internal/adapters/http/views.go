package httpadapter

import (
    "bytes"
    "embed"
    "fmt"
    "html/template"
    "net/http"
    "strings"
    "time"

    "github.com/dustin/go-humanize"
    "github.com/go-chi/chi/v5"

    "threathunter/internal/domain"
    "threathunter/internal/logging"
    catalogsvc "threathunter/internal/services/catalog"
    "threathunter/internal/services/viewstate"
)

//go:embed templates/*.html
var templateFS embed.FS

var healthLevel = catalogsvc.HealthLevel

var viewTitles = map[domain.View]string{
    domain.ViewSearch:      "Threat Search",
    domain.ViewDashboard:   "Dashboard",
    domain.ViewInfographic: "Infographic Generator",
    domain.ViewAnalytics:   "Analytics",
}

var tmplFuncs = template.FuncMap{
    "comma": func(n int) string { return humanize.Comma(int64(n)) },
    "ago":   func(t time.Time) string { return humanize.Time(t) },
    "pct":   func(p float64) string { return fmt.Sprintf("%.0f%%", p*100) },
    "upper": func(v any) string { return strings.ToUpper(fmt.Sprint(v)) },
    "title": func(v domain.View) string { return viewTitles[v] },
    "severityClass": func(s domain.Severity) string {
        switch s {
        case domain.SeverityCritical, domain.SeverityHigh:
            return "danger"
        case domain.SeverityMedium:
            return "warn"
        default:
            return "success"
        }
    },
    "riskClass": func(score int) string {
        switch {
        case score >= 70:
            return "danger"
        case score >= 40:
            return "warn"
        default:
            return "success"
        }
    },
    "health": healthLevel,
}

func parsePages() map[domain.View]*template.Template {
    pages := make(map[domain.View]*template.Template, len(domain.Views))
    for _, v := range domain.Views {
        pages[v] = template.Must(template.New(string(v)).Funcs(tmplFuncs).
            ParseFS(templateFS, "templates/layout.html", "templates/"+string(v)+".html"))
    }
    return pages
}

type pageData struct {
    State       viewstate.State
    Views       []domain.View
    Refresh     int
    Query       string
    Suggestions []string
    Dashboard   domain.Dashboard
    Analytics   domain.Analytics
    Templates   []domain.TemplateInfo
    Options     domain.CustomizationOptions
    TimeRanges  []string
    ThreatTypes []string
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
    v := controller(r.Context()).Snapshot().ActiveView
    http.Redirect(w, r, "/views/"+string(v), http.StatusSeeOther)
}

// showView selects the view in the path and renders it. On the analytics
// view, range/type query parameters update the session filter; on the search
// view, q prefills the query box.
func (s *Server) showView(w http.ResponseWriter, r *http.Request) {
    v, err := domain.ParseView(chi.URLParam(r, "view"))
    if err != nil {
        http.NotFound(w, r)
        return
    }
    ctrl := controller(r.Context())
    if err := ctrl.SelectView(v); err != nil {
        http.Error(w, err.Error(), statusFor(err))
        return
    }
    if v == domain.ViewAnalytics {
        if params, ok := analyticsQuery(r.URL.Query()); ok {
            f, err := overlayFilter(params, ctrl.Snapshot().Filter)
            if err == nil {
                _, err = ctrl.SetFilter(f)
            }
            if err != nil {
                http.Error(w, err.Error(), statusFor(err))
                return
            }
        }
    }
    data := s.pageData(v, ctrl.Snapshot())
    if v == domain.ViewSearch {
        data.Query = r.URL.Query().Get("q")
    }
    s.render(w, v, data)
}

func (s *Server) pageData(v domain.View, st viewstate.State) pageData {
    data := pageData{State: st, Views: domain.Views}
    switch v {
    case domain.ViewSearch:
        data.Suggestions = s.catalog.Suggestions()
        if st.Searching {
            data.Refresh = 1
        }
    case domain.ViewDashboard:
        data.Dashboard = s.catalog.Dashboard()
    case domain.ViewInfographic:
        data.Templates = s.catalog.Templates()
        data.Options = s.catalog.Customization()
        if st.Generating {
            data.Refresh = 1
        }
    case domain.ViewAnalytics:
        data.Analytics = s.catalog.Analytics(st.Filter)
        data.TimeRanges = domain.TimeRanges
        data.ThreatTypes = domain.ThreatTypes
    }
    return data
}

func (s *Server) render(w http.ResponseWriter, v domain.View, data pageData) {
    var buf bytes.Buffer
    if err := s.pages[v].ExecuteTemplate(&buf, "layout", data); err != nil {
        logging.Errorf("render %s: %v", v, err)
        http.Error(w, "render failed", http.StatusInternalServerError)
        return
    }
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    _, _ = buf.WriteTo(w)
}

func (s *Server) submitSearch(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }
    controller(r.Context()).SubmitSearch(r.PostFormValue("query"))
    http.Redirect(w, r, "/views/search", http.StatusSeeOther)
}

func (s *Server) selectTemplate(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }
    if err := controller(r.Context()).SelectTemplate(domain.Template(r.PostFormValue("template"))); err != nil {
        http.Error(w, err.Error(), statusFor(err))
        return
    }
    http.Redirect(w, r, "/views/infographic", http.StatusSeeOther)
}

func (s *Server) generateInfographic(w http.ResponseWriter, r *http.Request) {
    controller(r.Context()).GenerateInfographic()
    http.Redirect(w, r, "/views/infographic", http.StatusSeeOther)
}

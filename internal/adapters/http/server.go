package httpadapter

import (
    "context"
    "encoding/json"
    "errors"
    "html/template"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"

    api "threathunter/internal/api"
    "threathunter/internal/domain"
    "threathunter/internal/logging"
    "threathunter/internal/metrics"
    "threathunter/internal/ports"
    "threathunter/internal/services/viewstate"
)

// Sessions hands out the view-state controller of a session.
type Sessions interface {
    Get(ctx context.Context, id string) (*viewstate.Controller, string, error)
    Forget(ctx context.Context, id string) error
}

// Server implements the generated StrictServerInterface and the HTML views.
type Server struct {
    sessions Sessions
    catalog  ports.Catalog
    cookie   string
    pages    map[domain.View]*template.Template
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(sessions Sessions, catalog ports.Catalog, cookie string) *Server {
    if cookie == "" {
        cookie = "hunt_session"
    }
    return &Server{sessions: sessions, catalog: catalog, cookie: cookie, pages: parsePages()}
}

const maxBody = 64 << 10

// Routes returns a chi.Router serving the HTML views, the generated JSON API
// and the metrics endpoint.
func (s *Server) Routes() chi.Router {
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(middleware.RealIP)
    r.Use(middleware.Logger)
    r.Use(middleware.Recoverer)

    r.Handle("/metrics", metrics.Handler())

    r.Group(func(r chi.Router) {
        r.Use(s.withSession)
        r.Get("/", s.index)
        r.Get("/views/{view}", s.showView)
        r.Post("/search", s.submitSearch)
        r.Post("/infographic/template", s.selectTemplate)
        r.Post("/infographic/generate", s.generateInfographic)
    })

    r.Group(func(r chi.Router) {
        r.Use(middleware.RequestSize(maxBody))
        handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.sessionMiddleware}, api.StrictHTTPServerOptions{
            RequestErrorHandlerFunc:  requestError,
            ResponseErrorHandlerFunc: responseError,
        })
        api.HandlerWithOptions(handler, api.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: requestError})
    })
    return r
}

type (
    ctxKey    struct{}
    cookieKey struct{}
)

// session resolves the session cookie to a controller, issuing a fresh
// cookie when the session is new.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*viewstate.Controller, error) {
    var id string
    if c, err := r.Cookie(s.cookie); err == nil {
        id = c.Value
    }
    ctrl, sid, err := s.sessions.Get(r.Context(), id)
    if err != nil {
        logging.Errorf("session lookup: %v", err)
        return nil, &httpError{code: http.StatusServiceUnavailable, msg: "session unavailable"}
    }
    if sid != id {
        http.SetCookie(w, &http.Cookie{
            Name:     s.cookie,
            Value:    sid,
            Path:     "/",
            HttpOnly: true,
            SameSite: http.SameSiteLaxMode,
        })
    }
    return ctrl, nil
}

func (s *Server) withSession(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        ctrl, err := s.session(w, r)
        if err != nil {
            http.Error(w, err.Error(), statusFor(err))
            return
        }
        next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, ctrl)))
    })
}

// sessionMiddleware puts the caller's controller in the context of every
// operation that works on session state. DeleteSession only gets the raw
// cookie value so it never creates the session it is dropping.
func (s *Server) sessionMiddleware(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
    switch operationID {
    case "GetHealthz", "GetDashboard", "GetTemplates", "GetSuggestions":
        return f
    case "DeleteSession":
        return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
            if c, err := r.Cookie(s.cookie); err == nil {
                ctx = context.WithValue(ctx, cookieKey{}, c.Value)
            }
            return f(ctx, w, r, request)
        }
    }
    return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
        ctrl, err := s.session(w, r)
        if err != nil {
            return nil, err
        }
        return f(context.WithValue(ctx, ctxKey{}, ctrl), w, r, request)
    }
}

func controller(ctx context.Context) *viewstate.Controller {
    return ctx.Value(ctxKey{}).(*viewstate.Controller)
}

type httpError struct {
    code int
    msg  string
}

func (e *httpError) Error() string { return e.msg }

func statusFor(err error) int {
    var he *httpError
    switch {
    case errors.As(err, &he):
        return he.code
    case errors.Is(err, domain.ErrUnknownView),
        errors.Is(err, domain.ErrUnknownTemplate),
        errors.Is(err, domain.ErrInvalidFilter):
        return http.StatusBadRequest
    case errors.Is(err, viewstate.ErrClosed):
        return http.StatusConflict
    case errors.Is(err, context.DeadlineExceeded):
        return http.StatusGatewayTimeout
    default:
        return http.StatusInternalServerError
    }
}

// requestError answers undecodable bodies and malformed parameters.
func requestError(w http.ResponseWriter, _ *http.Request, err error) {
    writeError(w, &httpError{code: http.StatusBadRequest, msg: err.Error()})
}

func responseError(w http.ResponseWriter, _ *http.Request, err error) {
    writeError(w, err)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    if err := json.NewEncoder(w).Encode(v); err != nil {
        logging.Warnf("write response: %v", err)
    }
}

func writeError(w http.ResponseWriter, err error) {
    code := statusFor(err)
    if code == http.StatusInternalServerError {
        logging.Errorf("request failed: %v", err)
    }
    writeJSON(w, code, api.Error{Error: err.Error()})
}

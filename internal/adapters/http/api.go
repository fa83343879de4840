package httpadapter

import (
    "context"
    "errors"
    "net/http"

    api "threathunter/internal/api"
    "threathunter/internal/domain"
)

func (s *Server) GetHealthz(_ context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
    ok := "ok"
    return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) GetState(ctx context.Context, _ api.GetStateRequestObject) (api.GetStateResponseObject, error) {
    return api.GetState200JSONResponse(toState(controller(ctx).Snapshot())), nil
}

func (s *Server) PutView(ctx context.Context, req api.PutViewRequestObject) (api.PutViewResponseObject, error) {
    ctrl := controller(ctx)
    if err := ctrl.SelectView(domain.View(req.Body.View)); err != nil {
        if errors.Is(err, domain.ErrUnknownView) {
            return api.PutView400JSONResponse{Error: err.Error()}, nil
        }
        return nil, err
    }
    return api.PutView200JSONResponse(toState(ctrl.Snapshot())), nil
}

// PostSearch submits a search. With wait=true it blocks until the search
// resolves or the timeout passes and answers 200; otherwise 202.
func (s *Server) PostSearch(ctx context.Context, req api.PostSearchRequestObject) (api.PostSearchResponseObject, error) {
    ctrl := controller(ctx)
    if !ctrl.SubmitSearch(req.Body.Query) {
        return api.PostSearch204Response{}, nil
    }
    if req.Params.Wait == nil || !*req.Params.Wait {
        return api.PostSearch202JSONResponse(toState(ctrl.Snapshot())), nil
    }
    ctx, cancel := context.WithTimeout(ctx, waitTimeout(req.Params.Timeout))
    defer cancel()
    if err := ctrl.Wait(ctx); err != nil {
        if errors.Is(err, context.DeadlineExceeded) {
            return api.PostSearch504JSONResponse{Error: "search did not resolve in time"}, nil
        }
        return nil, err
    }
    return api.PostSearch200JSONResponse(toState(ctrl.Snapshot())), nil
}

func (s *Server) PutInfographicTemplate(ctx context.Context, req api.PutInfographicTemplateRequestObject) (api.PutInfographicTemplateResponseObject, error) {
    ctrl := controller(ctx)
    if err := ctrl.SelectTemplate(domain.Template(req.Body.Template)); err != nil {
        if errors.Is(err, domain.ErrUnknownTemplate) {
            return api.PutInfographicTemplate400JSONResponse{Error: err.Error()}, nil
        }
        return nil, err
    }
    return api.PutInfographicTemplate200JSONResponse(toState(ctrl.Snapshot())), nil
}

func (s *Server) PostInfographicGenerate(ctx context.Context, _ api.PostInfographicGenerateRequestObject) (api.PostInfographicGenerateResponseObject, error) {
    ctrl := controller(ctx)
    if !ctrl.GenerateInfographic() {
        return api.PostInfographicGenerate409JSONResponse{Error: "no threat to render or generation already running"}, nil
    }
    return api.PostInfographicGenerate202JSONResponse(toState(ctrl.Snapshot())), nil
}

func (s *Server) GetDashboard(_ context.Context, _ api.GetDashboardRequestObject) (api.GetDashboardResponseObject, error) {
    return api.GetDashboard200JSONResponse(toDashboard(s.catalog.Dashboard())), nil
}

// GetAnalytics reads the session's filter, overridden by range/type. It does
// not change the session.
func (s *Server) GetAnalytics(ctx context.Context, req api.GetAnalyticsRequestObject) (api.GetAnalyticsResponseObject, error) {
    f, err := overlayFilter(req.Params, controller(ctx).Snapshot().Filter)
    if err != nil {
        return api.GetAnalytics400JSONResponse{Error: err.Error()}, nil
    }
    return api.GetAnalytics200JSONResponse(toAnalytics(s.catalog.Analytics(f))), nil
}

func (s *Server) GetTemplates(_ context.Context, _ api.GetTemplatesRequestObject) (api.GetTemplatesResponseObject, error) {
    return api.GetTemplates200JSONResponse(toCatalog(s.catalog.Templates(), s.catalog.Customization())), nil
}

func (s *Server) GetSuggestions(_ context.Context, _ api.GetSuggestionsRequestObject) (api.GetSuggestionsResponseObject, error) {
    return api.GetSuggestions200JSONResponse{Suggestions: s.catalog.Suggestions()}, nil
}

// DeleteSession drops the caller's session and clears the cookie.
func (s *Server) DeleteSession(ctx context.Context, _ api.DeleteSessionRequestObject) (api.DeleteSessionResponseObject, error) {
    if id, _ := ctx.Value(cookieKey{}).(string); id != "" {
        if err := s.sessions.Forget(ctx, id); err != nil {
            return nil, err
        }
    }
    expired := &http.Cookie{Name: s.cookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true}
    return api.DeleteSession204Response{Headers: api.DeleteSession204ResponseHeaders{SetCookie: expired.String()}}, nil
}

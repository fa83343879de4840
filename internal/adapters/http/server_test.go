package httpadapter

import (
    "context"
    "encoding/json"
    "io"
    "net/http"
    "net/http/cookiejar"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"
    "time"

    "github.com/jonboulle/clockwork"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "threathunter/internal/adapters/memory"
    api "threathunter/internal/api"
    "threathunter/internal/domain"
    "threathunter/internal/services/catalog"
    "threathunter/internal/services/sessions"
    "threathunter/internal/services/synth"
    "threathunter/internal/workers/delayrunner"
)

const cookieName = "hunt_session"

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
    t.Helper()
    clock := clockwork.NewFakeClock()
    ts, c := startServer(t, sessions.Config{
        Synth:     synth.New(synth.WithClock(clock)),
        Scheduler: delayrunner.New(clock, 4),
        Store:     memory.NewStore(),
        Clock:     clock,
        TTL:       time.Hour,
    })
    return ts, c
}

// newDelayedServer runs searches and generations on a fake clock that the
// test advances.
func newDelayedServer(t *testing.T) (*httptest.Server, *http.Client, *clockwork.FakeClock) {
    t.Helper()
    clock := clockwork.NewFakeClock()
    ts, c := startServer(t, sessions.Config{
        Synth:            synth.New(synth.WithClock(clock)),
        Scheduler:        delayrunner.New(clock, 1),
        Store:            memory.NewStore(),
        Clock:            clock,
        SearchDelay:      time.Second,
        InfographicDelay: 2 * time.Second,
        TTL:              time.Hour,
    })
    return ts, c, clock
}

func startServer(t *testing.T, cfg sessions.Config) (*httptest.Server, *http.Client) {
    t.Helper()
    svc := sessions.New(cfg)
    t.Cleanup(svc.Close)

    ts := httptest.NewServer(New(svc, catalog.New(), cookieName).Routes())
    t.Cleanup(ts.Close)

    jar, err := cookiejar.New(nil)
    require.NoError(t, err)
    client := &http.Client{
        Jar: jar,
        CheckRedirect: func(*http.Request, []*http.Request) error {
            return http.ErrUseLastResponse
        },
    }
    return ts, client
}

func do(t *testing.T, c *http.Client, method, url, body string) *http.Response {
    t.Helper()
    var rd io.Reader
    if body != "" {
        rd = strings.NewReader(body)
    }
    req, err := http.NewRequest(method, url, rd)
    require.NoError(t, err)
    if body != "" {
        req.Header.Set("Content-Type", "application/json")
    }
    resp, err := c.Do(req)
    require.NoError(t, err)
    t.Cleanup(func() { resp.Body.Close() })
    return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
    t.Helper()
    var out T
    require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
    return out
}

func readBody(t *testing.T, resp *http.Response) string {
    t.Helper()
    b, err := io.ReadAll(resp.Body)
    require.NoError(t, err)
    return string(b)
}

func state(t *testing.T, ts *httptest.Server, c *http.Client) api.SessionState {
    t.Helper()
    resp := do(t, c, http.MethodGet, ts.URL+"/api/v1/state", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    return decode[api.SessionState](t, resp)
}

func TestHealthz(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodGet, ts.URL+"/healthz", "")
    assert.Equal(t, http.StatusOK, resp.StatusCode)
    h := decode[api.HealthStatus](t, resp)
    require.NotNil(t, h.Status)
    assert.Equal(t, "ok", *h.Status)
}

func TestIndexRedirectsToActiveViewAndSetsCookie(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodGet, ts.URL+"/", "")
    assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
    assert.Equal(t, "/views/search", resp.Header.Get("Location"))

    u, _ := url.Parse(ts.URL)
    cookies := c.Jar.Cookies(u)
    require.Len(t, cookies, 1)
    assert.Equal(t, cookieName, cookies[0].Name)

    do(t, c, http.MethodPut, ts.URL+"/api/v1/view", `{"view":"dashboard"}`)
    resp = do(t, c, http.MethodGet, ts.URL+"/", "")
    assert.Equal(t, "/views/dashboard", resp.Header.Get("Location"))
}

func TestAPISearchWait(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodPost, ts.URL+"/api/v1/search?wait=true&timeout=5", `{"query":"Emotet"}`)
    require.Equal(t, http.StatusOK, resp.StatusCode)

    st := decode[api.SessionState](t, resp)
    require.NotNil(t, st.CurrentThreat)
    assert.Equal(t, "Emotet", st.CurrentThreat.Name)
    assert.Equal(t, "Emotet", st.LastQuery)
    assert.Equal(t, api.ViewSearch, st.ActiveView)
    assert.False(t, st.Searching)

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/state", "")
    st = decode[api.SessionState](t, resp)
    require.NotNil(t, st.CurrentThreat)
    assert.Equal(t, "Emotet", st.CurrentThreat.Name)
}

func TestAPISearchBlankAndMalformed(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodPost, ts.URL+"/api/v1/search", `{"query":"   "}`)
    assert.Equal(t, http.StatusNoContent, resp.StatusCode)

    resp = do(t, c, http.MethodPost, ts.URL+"/api/v1/search", `{"query":`)
    assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

    resp = do(t, c, http.MethodPost, ts.URL+"/api/v1/search?wait=maybe", `{"query":"x"}`)
    assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/state", "")
    st := decode[api.SessionState](t, resp)
    assert.Nil(t, st.CurrentThreat)
    assert.Empty(t, st.LastQuery)
}

func TestAPISelectView(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodPut, ts.URL+"/api/v1/view", `{"view":"analytics"}`)
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.Equal(t, api.ViewAnalytics, decode[api.SessionState](t, resp).ActiveView)

    resp = do(t, c, http.MethodPut, ts.URL+"/api/v1/view", `{"view":"settings"}`)
    assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIInfographic(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodPost, ts.URL+"/api/v1/infographic/generate", "")
    assert.Equal(t, http.StatusConflict, resp.StatusCode)

    resp = do(t, c, http.MethodPut, ts.URL+"/api/v1/infographic/template", `{"template":"timeline"}`)
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.Equal(t, api.InfographicTemplateTimeline, decode[api.SessionState](t, resp).Template)

    resp = do(t, c, http.MethodPut, ts.URL+"/api/v1/infographic/template", `{"template":"poster"}`)
    assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

    do(t, c, http.MethodPost, ts.URL+"/api/v1/search?wait=true", `{"query":"Ryuk"}`)
    resp = do(t, c, http.MethodPost, ts.URL+"/api/v1/infographic/generate", "")
    assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestAPIAnalytics(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodGet, ts.URL+"/api/v1/analytics?type=phishing&range=30d", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    a := decode[api.Analytics](t, resp)
    assert.Equal(t, api.AnalyticsFilter{TimeRange: "30d", ThreatType: "phishing"}, a.Filter)
    require.Len(t, a.TopCategories, 1)
    assert.Equal(t, "Phishing", a.TopCategories[0].Name)

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/analytics?range=1y", "")
    assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

    // the API does not change the session filter
    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/state", "")
    assert.Equal(t, toFilter(domain.DefaultFilter()), decode[api.SessionState](t, resp).Filter)
}

func TestAPICatalog(t *testing.T) {
    ts, c := newTestServer(t)

    resp := do(t, c, http.MethodGet, ts.URL+"/api/v1/dashboard", "")
    d := decode[api.Dashboard](t, resp)
    assert.Len(t, d.Stats, 4)
    levels := make(map[string]api.SystemHealthLevel)
    for _, h := range d.SystemHealth {
        levels[h.Name] = h.Level
    }
    assert.Equal(t, api.SystemHealthLevelDegraded, levels["Global Network"])

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/templates", "")
    tr := decode[api.TemplateCatalog](t, resp)
    assert.Len(t, tr.Templates, 4)
    assert.NotEmpty(t, tr.Customization.ExportFormats)

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/suggestions", "")
    assert.Len(t, decode[api.Suggestions](t, resp).Suggestions, 6)
}

func TestHTMLSearchFlow(t *testing.T) {
    ts, c := newTestServer(t)
    resp, err := c.PostForm(ts.URL+"/search", url.Values{"query": {"APT29 Cozy Bear"}})
    require.NoError(t, err)
    resp.Body.Close()
    assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
    assert.Equal(t, "/views/search", resp.Header.Get("Location"))

    require.Eventually(t, func() bool {
        resp, err := c.Get(ts.URL + "/api/v1/state")
        if err != nil {
            return false
        }
        defer resp.Body.Close()
        var st api.SessionState
        return json.NewDecoder(resp.Body).Decode(&st) == nil && st.CurrentThreat != nil
    }, 2*time.Second, 10*time.Millisecond)

    resp = do(t, c, http.MethodGet, ts.URL+"/views/search", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    body := readBody(t, resp)
    assert.Contains(t, body, "APT29 Cozy Bear")
    assert.Contains(t, body, "Update security patches")
    assert.NotContains(t, body, `http-equiv="refresh"`)
}

func TestHTMLViews(t *testing.T) {
    ts, c := newTestServer(t)

    resp := do(t, c, http.MethodGet, ts.URL+"/views/dashboard", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    body := readBody(t, resp)
    assert.Contains(t, body, "Emotet Banking Trojan")
    assert.Contains(t, body, "1,205")

    resp = do(t, c, http.MethodGet, ts.URL+"/views/infographic", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.Contains(t, readBody(t, resp), "Run a threat search first")

    resp = do(t, c, http.MethodGet, ts.URL+"/views/analytics?type=apt", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    body = readBody(t, resp)
    assert.Contains(t, body, "15,847")
    assert.NotContains(t, body, "Ransomware</td>")

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/state", "")
    st := decode[api.SessionState](t, resp)
    assert.Equal(t, api.ViewAnalytics, st.ActiveView)
    assert.Equal(t, "apt", st.Filter.ThreatType)

    resp = do(t, c, http.MethodGet, ts.URL+"/views/analytics?range=forever", "")
    assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

    resp = do(t, c, http.MethodGet, ts.URL+"/views/settings", "")
    assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTMLTemplateSelection(t *testing.T) {
    ts, c := newTestServer(t)
    resp, err := c.PostForm(ts.URL+"/infographic/template", url.Values{"template": {"technical"}})
    require.NoError(t, err)
    resp.Body.Close()
    assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

    resp, err = c.PostForm(ts.URL+"/infographic/template", url.Values{"template": {"poster"}})
    require.NoError(t, err)
    resp.Body.Close()
    assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/state", "")
    assert.Equal(t, api.InfographicTemplateTechnical, decode[api.SessionState](t, resp).Template)
}

func TestForgetSession(t *testing.T) {
    ts, c := newTestServer(t)
    do(t, c, http.MethodPost, ts.URL+"/api/v1/search?wait=true", `{"query":"Mimikatz"}`)
    resp := do(t, c, http.MethodDelete, ts.URL+"/api/v1/session", "")
    assert.Equal(t, http.StatusNoContent, resp.StatusCode)

    u, _ := url.Parse(ts.URL)
    assert.Empty(t, c.Jar.Cookies(u))

    resp = do(t, c, http.MethodGet, ts.URL+"/api/v1/state", "")
    st := decode[api.SessionState](t, resp)
    assert.Nil(t, st.CurrentThreat)
    assert.Equal(t, api.ViewSearch, st.ActiveView)
}

func TestMetricsEndpoint(t *testing.T) {
    ts, c := newTestServer(t)
    do(t, c, http.MethodPost, ts.URL+"/api/v1/search", `{"query":""}`)
    resp := do(t, c, http.MethodGet, ts.URL+"/metrics", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.Contains(t, readBody(t, resp), "hunter_search_total")
}

func TestAPISearchWaitTimesOut(t *testing.T) {
    ts, c, _ := newDelayedServer(t)
    resp := do(t, c, http.MethodPost, ts.URL+"/api/v1/search?wait=true&timeout=1", `{"query":"Emotet"}`)
    assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
    assert.NotEmpty(t, decode[api.Error](t, resp).Error)

    st := state(t, ts, c)
    assert.True(t, st.Searching)
    require.NotNil(t, st.PendingQuery)
    assert.Equal(t, "Emotet", *st.PendingQuery)
}

func TestHTMLSearchFromDashboardResolves(t *testing.T) {
    ts, c, clock := newDelayedServer(t)
    resp := do(t, c, http.MethodGet, ts.URL+"/views/dashboard", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)

    resp, err := c.PostForm(ts.URL+"/search", url.Values{"query": {"Emotet"}})
    require.NoError(t, err)
    resp.Body.Close()
    require.Equal(t, http.StatusSeeOther, resp.StatusCode)

    // follow the redirect the way a browser would
    resp = do(t, c, http.MethodGet, ts.URL+resp.Header.Get("Location"), "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.Contains(t, readBody(t, resp), `http-equiv="refresh"`)
    assert.True(t, state(t, ts, c).Searching)

    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    require.NoError(t, clock.BlockUntilContext(ctx, 1))
    clock.Advance(time.Second)

    require.Eventually(t, func() bool {
        st := state(t, ts, c)
        return st.CurrentThreat != nil && st.CurrentThreat.Name == "Emotet" && !st.Searching
    }, 2*time.Second, 10*time.Millisecond)
}

func TestAPIGenerationSurvivesOpeningInfographic(t *testing.T) {
    ts, c, clock := newDelayedServer(t)
    resp := do(t, c, http.MethodPost, ts.URL+"/api/v1/search", `{"query":"Ryuk"}`)
    require.Equal(t, http.StatusAccepted, resp.StatusCode)

    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    require.NoError(t, clock.BlockUntilContext(ctx, 1))
    clock.Advance(time.Second)
    require.Eventually(t, func() bool {
        return state(t, ts, c).CurrentThreat != nil
    }, 2*time.Second, 10*time.Millisecond)

    resp = do(t, c, http.MethodPost, ts.URL+"/api/v1/infographic/generate", "")
    require.Equal(t, http.StatusAccepted, resp.StatusCode)
    assert.True(t, decode[api.SessionState](t, resp).Generating)

    resp = do(t, c, http.MethodPut, ts.URL+"/api/v1/view", `{"view":"infographic"}`)
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.True(t, decode[api.SessionState](t, resp).Generating)

    require.NoError(t, clock.BlockUntilContext(ctx, 1))
    clock.Advance(2 * time.Second)
    require.Eventually(t, func() bool {
        return !state(t, ts, c).Generating
    }, 2*time.Second, 10*time.Millisecond)
}

func TestHTMLSuggestionPrefillsQuery(t *testing.T) {
    ts, c := newTestServer(t)
    resp := do(t, c, http.MethodGet, ts.URL+"/views/search", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    body := readBody(t, resp)
    assert.Contains(t, body, `href="/views/search?q=Emotet%20Banking%20Trojan"`)
    assert.NotContains(t, body, `type="hidden" name="query"`)

    resp = do(t, c, http.MethodGet, ts.URL+"/views/search?q=Emotet", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.Contains(t, readBody(t, resp), `value="Emotet"`)

    st := state(t, ts, c)
    assert.False(t, st.Searching)
    assert.Nil(t, st.CurrentThreat)
    assert.Empty(t, st.LastQuery)
}

func TestHTMLProgressLabel(t *testing.T) {
    ts, c, _ := newDelayedServer(t)
    resp, err := c.PostForm(ts.URL+"/search", url.Values{"query": {"Lazarus"}})
    require.NoError(t, err)
    resp.Body.Close()

    resp = do(t, c, http.MethodGet, ts.URL+"/views/search", "")
    require.Equal(t, http.StatusOK, resp.StatusCode)
    assert.Contains(t, readBody(t, resp), `Analyzing "Lazarus" · 0%`)
}

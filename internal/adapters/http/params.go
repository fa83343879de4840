package httpadapter

import (
    "net/url"
    "time"

    api "threathunter/internal/api"
    "threathunter/internal/domain"
)

const defaultWaitTimeout = 30 * time.Second

func waitTimeout(secs *int) time.Duration {
    if secs != nil && *secs > 0 {
        return time.Duration(*secs) * time.Second
    }
    return defaultWaitTimeout
}

// analyticsQuery reads range/type from an HTML view's query string.
func analyticsQuery(q url.Values) (api.GetAnalyticsParams, bool) {
    var p api.GetAnalyticsParams
    if q.Has("range") {
        v := q.Get("range")
        p.Range = &v
    }
    if q.Has("type") {
        v := q.Get("type")
        p.Type = &v
    }
    return p, p.Range != nil || p.Type != nil
}

// overlayFilter overlays the given parameters on base and validates the result.
func overlayFilter(p api.GetAnalyticsParams, base domain.AnalyticsFilter) (domain.AnalyticsFilter, error) {
    f := base
    if p.Range != nil {
        f.TimeRange = *p.Range
    }
    if p.Type != nil {
        f.ThreatType = *p.Type
    }
    return f.Normalize()
}

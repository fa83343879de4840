package metrics

import (
    "net/http"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    searches = prometheus.NewCounterVec(
        prometheus.CounterOpts{Namespace: "hunter", Subsystem: "search", Name: "total", Help: "Searches by outcome (submitted, resolved, superseded, cancelled, blank)."},
        []string{"outcome"},
    )
    severities = prometheus.NewCounterVec(
        prometheus.CounterOpts{Namespace: "hunter", Subsystem: "search", Name: "severity_total", Help: "Synthesized threat records by severity."},
        []string{"severity"},
    )
    viewSelections = prometheus.NewCounterVec(
        prometheus.CounterOpts{Namespace: "hunter", Subsystem: "view", Name: "selections_total", Help: "View selections by target view."},
        []string{"view"},
    )
    infographics = prometheus.NewCounterVec(
        prometheus.CounterOpts{Namespace: "hunter", Subsystem: "infographic", Name: "generations_total", Help: "Infographic generations by template and outcome."},
        []string{"template", "outcome"},
    )
    sessions = prometheus.NewGauge(
        prometheus.GaugeOpts{Namespace: "hunter", Subsystem: "session", Name: "active", Help: "Sessions currently held in memory."},
    )
    storeErrors = prometheus.NewCounterVec(
        prometheus.CounterOpts{Namespace: "hunter", Subsystem: "session", Name: "store_errors_total", Help: "Session store failures by operation."},
        []string{"op"},
    )
)

func init() {
    _ = prometheus.Register(searches)
    _ = prometheus.Register(severities)
    _ = prometheus.Register(viewSelections)
    _ = prometheus.Register(infographics)
    _ = prometheus.Register(sessions)
    _ = prometheus.Register(storeErrors)
}

func Search(outcome string)                { searches.WithLabelValues(outcome).Inc() }
func Severity(severity string)             { severities.WithLabelValues(severity).Inc() }
func ViewSelected(view string)             { viewSelections.WithLabelValues(view).Inc() }
func Infographic(template, outcome string) { infographics.WithLabelValues(template, outcome).Inc() }
func SessionOpened()                       { sessions.Inc() }
func SessionsClosed(n int)                 { sessions.Sub(float64(n)) }
func StoreError(op string)                 { storeErrors.WithLabelValues(op).Inc() }

// Handler exposes the default registry.
func Handler() http.Handler { return promhttp.Handler() }

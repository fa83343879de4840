package domain

import (
    "strings"
    "time"
)

// Core domain models. HTTP request/response shapes live in the http adapter;
// keep these decoupled from transport.

type Severity string

const (
    SeverityLow      Severity = "low"
    SeverityMedium   Severity = "medium"
    SeverityHigh     Severity = "high"
    SeverityCritical Severity = "critical"
)

// Severities lists every valid severity, lowest first.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

func (s Severity) Valid() bool {
    for _, v := range Severities {
        if v == s {
            return true
        }
    }
    return false
}

// Categories are the threat categories the synthesizer draws from.
var Categories = []string{"APT", "Malware", "Phishing", "Ransomware"}

type TimelineEvent struct {
    Date  string `json:"date"`
    Event string `json:"event"`
}

// ThreatRecord is one mock search result. Treat it as immutable; use Clone
// before handing it to code that may modify slices.
type ThreatRecord struct {
    ID              string          `json:"id"`
    Name            string          `json:"name"`
    Severity        Severity        `json:"severity"`
    Category        string          `json:"category"`
    Description     string          `json:"description"`
    Indicators      []string        `json:"indicators"`
    Timeline        []TimelineEvent `json:"timeline"`
    RiskScore       int             `json:"riskScore"`
    AffectedSystems int             `json:"affectedSystems"`
    MitigationSteps []string        `json:"mitigationSteps"`
    CreatedAt       time.Time       `json:"createdAt"`
}

func (t *ThreatRecord) Clone() *ThreatRecord {
    if t == nil {
        return nil
    }
    out := *t
    out.Indicators = append([]string(nil), t.Indicators...)
    out.Timeline = append([]TimelineEvent(nil), t.Timeline...)
    out.MitigationSteps = append([]string(nil), t.MitigationSteps...)
    return &out
}

// View is one of the four mutually exclusive top-level pages.
type View string

const (
    ViewSearch      View = "search"
    ViewDashboard   View = "dashboard"
    ViewInfographic View = "infographic"
    ViewAnalytics   View = "analytics"
)

var Views = []View{ViewSearch, ViewDashboard, ViewInfographic, ViewAnalytics}

func ParseView(s string) (View, error) {
    v := View(strings.ToLower(strings.TrimSpace(s)))
    for _, known := range Views {
        if v == known {
            return v, nil
        }
    }
    return "", ErrUnknownView
}

type Template string

const (
    TemplateExecutive  Template = "executive"
    TemplateTechnical  Template = "technical"
    TemplateTimeline   Template = "timeline"
    TemplateComparison Template = "comparison"
)

var Templates = []Template{TemplateExecutive, TemplateTechnical, TemplateTimeline, TemplateComparison}

func ParseTemplate(s string) (Template, error) {
    t := Template(strings.ToLower(strings.TrimSpace(s)))
    for _, known := range Templates {
        if t == known {
            return t, nil
        }
    }
    return "", ErrUnknownTemplate
}

// AnalyticsFilter holds the two dropdowns of the analytics view.
type AnalyticsFilter struct {
    TimeRange  string `json:"timeRange"`
    ThreatType string `json:"threatType"`
}

var (
    TimeRanges  = []string{"24h", "7d", "30d", "90d"}
    ThreatTypes = []string{"all", "malware", "phishing", "apt", "ransomware"}
)

func DefaultFilter() AnalyticsFilter {
    return AnalyticsFilter{TimeRange: "7d", ThreatType: "all"}
}

// Normalize lowercases both fields and fills empty ones from the default.
func (f AnalyticsFilter) Normalize() (AnalyticsFilter, error) {
    def := DefaultFilter()
    out := AnalyticsFilter{
        TimeRange:  strings.ToLower(strings.TrimSpace(f.TimeRange)),
        ThreatType: strings.ToLower(strings.TrimSpace(f.ThreatType)),
    }
    if out.TimeRange == "" {
        out.TimeRange = def.TimeRange
    }
    if out.ThreatType == "" {
        out.ThreatType = def.ThreatType
    }
    if !contains(TimeRanges, out.TimeRange) || !contains(ThreatTypes, out.ThreatType) {
        return def, ErrInvalidFilter
    }
    return out, nil
}

func contains(list []string, s string) bool {
    for _, v := range list {
        if v == s {
            return true
        }
    }
    return false
}

// SessionSnapshot is the persisted part of a session's view state.
type SessionSnapshot struct {
    ActiveView    View            `json:"activeView"`
    CurrentThreat *ThreatRecord   `json:"currentThreat,omitempty"`
    LastQuery     string          `json:"lastQuery"`
    Template      Template        `json:"template"`
    Filter        AnalyticsFilter `json:"filter"`
    UpdatedAt     time.Time       `json:"updatedAt"`
}

var (
    ErrUnknownView     = errString("unknown view")
    ErrUnknownTemplate = errString("unknown infographic template")
    ErrInvalidFilter   = errString("invalid analytics filter")
)

type errString string

func (e errString) Error() string { return string(e) }

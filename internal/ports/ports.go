package ports

import "threathunter/internal/domain"

// Synthesizer fabricates a threat record for a search query.
type Synthesizer interface {
    Synthesize(query string) domain.ThreatRecord
}

// Catalog provides the fixed sample content of the static views.
type Catalog interface {
    Dashboard() domain.Dashboard
    Analytics(filter domain.AnalyticsFilter) domain.Analytics
    Templates() []domain.TemplateInfo
    Customization() domain.CustomizationOptions
    Suggestions() []string
}

package catalog

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "threathunter/internal/domain"
)

func TestDashboardSample(t *testing.T) {
    d := New().Dashboard()
    assert.Len(t, d.Stats, 4)
    require.Len(t, d.RecentThreats, 5)
    assert.Equal(t, domain.SeverityCritical, d.RecentThreats[1].Severity)
    for _, r := range d.RecentThreats {
        assert.True(t, r.Severity.Valid(), r.Name)
    }
    assert.Len(t, d.SystemHealth, 4)
}

func TestHealthLevel(t *testing.T) {
    assert.Equal(t, "ok", HealthLevel(99.9))
    assert.Equal(t, "degraded", HealthLevel(98))
    assert.Equal(t, "degraded", HealthLevel(97.8))
    assert.Equal(t, "down", HealthLevel(95))
}

func TestAnalyticsFilter(t *testing.T) {
    s := New()

    all := s.Analytics(domain.AnalyticsFilter{})
    assert.Equal(t, domain.DefaultFilter(), all.Filter)
    assert.Len(t, all.TopCategories, 5)
    assert.Len(t, all.Trends, 7)
    assert.Len(t, all.Countries, 8)

    apt := s.Analytics(domain.AnalyticsFilter{TimeRange: "30d", ThreatType: "apt"})
    assert.Equal(t, "30d", apt.Filter.TimeRange)
    require.Len(t, apt.TopCategories, 1)
    assert.Equal(t, "APT", apt.TopCategories[0].Name)
    assert.Equal(t, all.TotalThreats, apt.TotalThreats)

    bad := s.Analytics(domain.AnalyticsFilter{TimeRange: "1y", ThreatType: "apt"})
    assert.Equal(t, domain.DefaultFilter(), bad.Filter)
    assert.Len(t, bad.TopCategories, 5)
}

func TestTemplatesCoverEveryTemplate(t *testing.T) {
    infos := New().Templates()
    require.Len(t, infos, len(domain.Templates))
    for i, tmpl := range domain.Templates {
        assert.Equal(t, tmpl, infos[i].ID)
        assert.NotEmpty(t, infos[i].Name)
    }
    assert.Len(t, New().Suggestions(), 6)
    assert.Len(t, New().Customization().ExportFormats, 4)
}

package httpadapter

import (
    api "threathunter/internal/api"
    "threathunter/internal/domain"
    "threathunter/internal/services/viewstate"
)

func toState(st viewstate.State) api.SessionState {
    out := api.SessionState{
        ActiveView:    api.View(st.ActiveView),
        CurrentThreat: toThreat(st.CurrentThreat),
        Filter:        toFilter(st.Filter),
        Generating:    st.Generating,
        LastQuery:     st.LastQuery,
        Progress:      st.Progress,
        Searching:     st.Searching,
        Template:      api.InfographicTemplate(st.Template),
        UpdatedAt:     st.UpdatedAt,
    }
    if st.PendingQuery != "" {
        q := st.PendingQuery
        out.PendingQuery = &q
    }
    return out
}

func toFilter(f domain.AnalyticsFilter) api.AnalyticsFilter {
    return api.AnalyticsFilter{ThreatType: f.ThreatType, TimeRange: f.TimeRange}
}

func toThreat(t *domain.ThreatRecord) *api.ThreatRecord {
    if t == nil {
        return nil
    }
    timeline := make([]api.TimelineEvent, len(t.Timeline))
    for i, e := range t.Timeline {
        timeline[i] = api.TimelineEvent{Date: e.Date, Event: e.Event}
    }
    return &api.ThreatRecord{
        AffectedSystems: t.AffectedSystems,
        Category:        t.Category,
        CreatedAt:       t.CreatedAt,
        Description:     t.Description,
        Id:              t.ID,
        Indicators:      t.Indicators,
        MitigationSteps: t.MitigationSteps,
        Name:            t.Name,
        RiskScore:       t.RiskScore,
        Severity:        api.Severity(t.Severity),
        Timeline:        timeline,
    }
}

func toDashboard(d domain.Dashboard) api.Dashboard {
    out := api.Dashboard{
        RecentThreats: make([]api.Detection, len(d.RecentThreats)),
        Stats:         make([]api.StatCard, len(d.Stats)),
        SystemHealth:  make([]api.SystemHealth, len(d.SystemHealth)),
    }
    for i, r := range d.RecentThreats {
        out.RecentThreats[i] = api.Detection{Affected: r.Affected, Name: r.Name, Severity: api.Severity(r.Severity), Time: r.Time}
    }
    for i, c := range d.Stats {
        out.Stats[i] = api.StatCard{Change: c.Change, Label: c.Label, Value: c.Value}
    }
    for i, h := range d.SystemHealth {
        out.SystemHealth[i] = api.SystemHealth{Level: api.SystemHealthLevel(healthLevel(h.Status)), Name: h.Name, Status: h.Status}
    }
    return out
}

func toAnalytics(a domain.Analytics) api.Analytics {
    out := api.Analytics{
        BlockedAttacks: a.BlockedAttacks,
        Countries:      make([]api.CountryCount, len(a.Countries)),
        DetectionRate:  a.DetectionRate,
        Filter:         toFilter(a.Filter),
        RiskScore:      a.RiskScore,
        TopCategories:  make([]api.CategoryShare, len(a.TopCategories)),
        TotalThreats:   a.TotalThreats,
        Trends:         make([]api.TrendPoint, len(a.Trends)),
    }
    for i, c := range a.Countries {
        out.Countries[i] = api.CountryCount{Country: c.Country, Flag: c.Flag, Threats: c.Threats}
    }
    for i, c := range a.TopCategories {
        out.TopCategories[i] = api.CategoryShare{Count: c.Count, Name: c.Name, Percentage: c.Percentage}
    }
    for i, p := range a.Trends {
        out.Trends[i] = api.TrendPoint{Blocked: p.Blocked, Date: p.Date, Threats: p.Threats}
    }
    return out
}

func toCatalog(templates []domain.TemplateInfo, opts domain.CustomizationOptions) api.TemplateCatalog {
    out := api.TemplateCatalog{
        Customization: api.CustomizationOptions{
            ColorThemes:   opts.ColorThemes,
            ExportFormats: opts.ExportFormats,
            LayoutStyles:  opts.LayoutStyles,
        },
        Templates: make([]api.TemplateInfo, len(templates)),
    }
    for i, t := range templates {
        out.Templates[i] = api.TemplateInfo{Description: t.Description, Id: api.InfographicTemplate(t.ID), Name: t.Name}
    }
    return out
}

package catalog

import (
    "strings"

    "threathunter/internal/domain"
)

// Service serves the fixed sample content of the dashboard, analytics and
// infographic views. Nothing here is computed from live data.
type Service struct{}

func New() *Service { return &Service{} }

func (s *Service) Dashboard() domain.Dashboard {
    return domain.Dashboard{
        Stats: []domain.StatCard{
            {Label: "Active Threats", Value: "1,247", Change: "+12%"},
            {Label: "Systems Protected", Value: "45,892", Change: "+5%"},
            {Label: "Threats Blocked", Value: "8,924", Change: "+18%"},
            {Label: "Global Coverage", Value: "99.7%", Change: "+0.1%"},
        },
        RecentThreats: []domain.Detection{
            {Name: "APT29 Cozy Bear", Severity: domain.SeverityHigh, Time: "2 hours ago", Affected: 342},
            {Name: "Emotet Banking Trojan", Severity: domain.SeverityCritical, Time: "4 hours ago", Affected: 1205},
            {Name: "SolarWinds Attack Vector", Severity: domain.SeverityHigh, Time: "6 hours ago", Affected: 89},
            {Name: "Ryuk Ransomware Campaign", Severity: domain.SeverityCritical, Time: "8 hours ago", Affected: 567},
            {Name: "Cobalt Strike Beacons", Severity: domain.SeverityMedium, Time: "12 hours ago", Affected: 234},
        },
        SystemHealth: []domain.SystemHealth{
            {Name: "Threat Detection Engine", Status: 99.9},
            {Name: "AI Analysis Pipeline", Status: 98.7},
            {Name: "Data Processing", Status: 99.2},
            {Name: "Global Network", Status: 97.8},
        },
    }
}

// HealthLevel buckets a system-health percentage into ok/degraded/down.
func HealthLevel(status float64) string {
    switch {
    case status > 98:
        return "ok"
    case status > 95:
        return "degraded"
    default:
        return "down"
    }
}

// Analytics returns the sample analytics. The threat type narrows the
// category rows; the time range is echoed back only.
func (s *Service) Analytics(filter domain.AnalyticsFilter) domain.Analytics {
    filter, err := filter.Normalize()
    if err != nil {
        filter = domain.DefaultFilter()
    }
    categories := []domain.CategoryShare{
        {Name: "Malware", Count: 4521, Percentage: 28.5},
        {Name: "Phishing", Count: 3847, Percentage: 24.3},
        {Name: "APT", Count: 2934, Percentage: 18.5},
        {Name: "Ransomware", Count: 2245, Percentage: 14.2},
        {Name: "DDoS", Count: 2300, Percentage: 14.5},
    }
    if filter.ThreatType != "all" {
        kept := categories[:0]
        for _, c := range categories {
            if strings.EqualFold(c.Name, filter.ThreatType) {
                kept = append(kept, c)
            }
        }
        categories = kept
    }
    return domain.Analytics{
        Filter:         filter,
        TotalThreats:   15847,
        BlockedAttacks: 12394,
        RiskScore:      73,
        DetectionRate:  78.2,
        TopCategories:  categories,
        Trends: []domain.TrendPoint{
            {Date: "2025-01-10", Threats: 234, Blocked: 189},
            {Date: "2025-01-11", Threats: 456, Blocked: 398},
            {Date: "2025-01-12", Threats: 324, Blocked: 289},
            {Date: "2025-01-13", Threats: 567, Blocked: 445},
            {Date: "2025-01-14", Threats: 432, Blocked: 387},
            {Date: "2025-01-15", Threats: 678, Blocked: 534},
            {Date: "2025-01-16", Threats: 543, Blocked: 467},
        },
        Countries: []domain.CountryCount{
            {Country: "United States", Flag: "🇺🇸", Threats: 3245},
            {Country: "China", Flag: "🇨🇳", Threats: 2876},
            {Country: "Russia", Flag: "🇷🇺", Threats: 2134},
            {Country: "Germany", Flag: "🇩🇪", Threats: 1654},
            {Country: "United Kingdom", Flag: "🇬🇧", Threats: 1432},
            {Country: "France", Flag: "🇫🇷", Threats: 1298},
            {Country: "Japan", Flag: "🇯🇵", Threats: 1156},
            {Country: "South Korea", Flag: "🇰🇷", Threats: 987},
        },
    }
}

func (s *Service) Templates() []domain.TemplateInfo {
    return []domain.TemplateInfo{
        {ID: domain.TemplateExecutive, Name: "Executive Summary", Description: "High-level overview for stakeholders"},
        {ID: domain.TemplateTechnical, Name: "Technical Analysis", Description: "Detailed technical breakdown"},
        {ID: domain.TemplateTimeline, Name: "Attack Timeline", Description: "Chronological threat progression"},
        {ID: domain.TemplateComparison, Name: "Threat Comparison", Description: "Compare with similar threats"},
    }
}

func (s *Service) Customization() domain.CustomizationOptions {
    return domain.CustomizationOptions{
        ColorThemes:   []string{"Corporate Blue", "Security Red", "Professional Gray", "Custom Colors"},
        LayoutStyles:  []string{"Modern Minimalist", "Data-Heavy", "Executive Summary", "Technical Report"},
        ExportFormats: []string{"PNG (High Quality)", "PDF (Print Ready)", "SVG (Vector)", "PowerPoint Slides"},
    }
}

func (s *Service) Suggestions() []string {
    return []string{
        "APT29 Cozy Bear",
        "Emotet Banking Trojan",
        "SolarWinds Supply Chain Attack",
        "Ryuk Ransomware Campaign",
        "Cobalt Strike Beacons",
        "Mimikatz Credential Harvesting",
    }
}

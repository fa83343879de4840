package domain

// Display models for the static dashboard, analytics and infographic views.

type StatCard struct {
    Label  string `json:"label"`
    Value  string `json:"value"`
    Change string `json:"change"`
}

type Detection struct {
    Name     string   `json:"name"`
    Severity Severity `json:"severity"`
    Time     string   `json:"time"`
    Affected int      `json:"affected"`
}

type SystemHealth struct {
    Name   string  `json:"name"`
    Status float64 `json:"status"`
}

type Dashboard struct {
    Stats         []StatCard     `json:"stats"`
    RecentThreats []Detection    `json:"recentThreats"`
    SystemHealth  []SystemHealth `json:"systemHealth"`
}

type CategoryShare struct {
    Name       string  `json:"name"`
    Count      int     `json:"count"`
    Percentage float64 `json:"percentage"`
}

type TrendPoint struct {
    Date    string `json:"date"`
    Threats int    `json:"threats"`
    Blocked int    `json:"blocked"`
}

type CountryCount struct {
    Country string `json:"country"`
    Flag    string `json:"flag"`
    Threats int    `json:"threats"`
}

type Analytics struct {
    Filter         AnalyticsFilter `json:"filter"`
    TotalThreats   int             `json:"totalThreats"`
    BlockedAttacks int             `json:"blockedAttacks"`
    RiskScore      int             `json:"riskScore"`
    DetectionRate  float64         `json:"detectionRate"`
    TopCategories  []CategoryShare `json:"topCategories"`
    Trends         []TrendPoint    `json:"trends"`
    Countries      []CountryCount  `json:"countries"`
}

type TemplateInfo struct {
    ID          Template `json:"id"`
    Name        string   `json:"name"`
    Description string   `json:"description"`
}

// CustomizationOptions are the infographic dropdowns. They are display-only.
type CustomizationOptions struct {
    ColorThemes   []string `json:"colorThemes"`
    LayoutStyles  []string `json:"layoutStyles"`
    ExportFormats []string `json:"exportFormats"`
}

package synth

import (
    "fmt"
    "math/rand/v2"
    "strings"

    "github.com/google/uuid"
    "github.com/jonboulle/clockwork"

    "threathunter/internal/domain"
)

// Source is the random source behind the randomized record fields.
type Source interface {
    IntN(n int) int
    Float64() float64
}

// globalSource uses the auto-seeded math/rand/v2 top-level functions, which
// are safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// SeverityPolicy selects how severities are drawn.
type SeverityPolicy string

const (
    // SeverityLegacy draws high/medium/low from two chained coin flips and
    // never yields critical.
    SeverityLegacy SeverityPolicy = "legacy"
    // SeverityUniform draws all four severities with equal weight.
    SeverityUniform SeverityPolicy = "uniform"
)

func ParseSeverityPolicy(s string) (SeverityPolicy, error) {
    switch p := SeverityPolicy(strings.ToLower(strings.TrimSpace(s))); p {
    case "", SeverityLegacy:
        return SeverityLegacy, nil
    case SeverityUniform:
        return p, nil
    default:
        return "", fmt.Errorf("unknown severity policy %q", s)
    }
}

const descriptionFormat = "Advanced threat analysis for %s reveals sophisticated attack patterns and potential vulnerabilities."

var (
    indicators = []string{
        "Suspicious network traffic detected",
        "Unusual process behavior identified",
        "Potential data exfiltration attempt",
        "Compromised authentication detected",
    }
    timeline = []domain.TimelineEvent{
        {Date: "2025-01-15", Event: "Initial detection"},
        {Date: "2025-01-16", Event: "Pattern analysis completed"},
        {Date: "2025-01-17", Event: "Threat classified"},
    }
    mitigationSteps = []string{
        "Update security patches",
        "Monitor network traffic",
        "Implement access controls",
        "Conduct security audit",
    }
)

type Option func(*Service)

func WithSource(src Source) Option { return func(s *Service) { s.src = src } }

func WithClock(c clockwork.Clock) Option { return func(s *Service) { s.clock = c } }

func WithIDs(next func() string) Option { return func(s *Service) { s.newID = next } }

func WithSeverityPolicy(p SeverityPolicy) Option { return func(s *Service) { s.policy = p } }

// Service fabricates threat records. It holds no mutable state of its own.
type Service struct {
    src    Source
    clock  clockwork.Clock
    newID  func() string
    policy SeverityPolicy
}

func New(opts ...Option) *Service {
    s := &Service{
        src:    globalSource{},
        clock:  clockwork.NewRealClock(),
        newID:  uuid.NewString,
        policy: SeverityLegacy,
    }
    for _, opt := range opts {
        opt(s)
    }
    return s
}

// Synthesize returns a fresh record named after query. Draw order is
// severity, category, risk score, affected systems.
func (s *Service) Synthesize(query string) domain.ThreatRecord {
    sev := s.severity()
    return domain.ThreatRecord{
        ID:              s.newID(),
        Name:            query,
        Severity:        sev,
        Category:        domain.Categories[s.src.IntN(len(domain.Categories))],
        Description:     fmt.Sprintf(descriptionFormat, query),
        Indicators:      append([]string(nil), indicators...),
        Timeline:        append([]domain.TimelineEvent(nil), timeline...),
        RiskScore:       s.src.IntN(100),
        AffectedSystems: s.src.IntN(1000) + 1,
        MitigationSteps: append([]string(nil), mitigationSteps...),
        CreatedAt:       s.clock.Now().UTC(),
    }
}

func (s *Service) severity() domain.Severity {
    if s.policy == SeverityUniform {
        return domain.Severities[s.src.IntN(len(domain.Severities))]
    }
    if s.src.Float64() > 0.5 {
        return domain.SeverityHigh
    }
    if s.src.Float64() > 0.3 {
        return domain.SeverityMedium
    }
    return domain.SeverityLow
}

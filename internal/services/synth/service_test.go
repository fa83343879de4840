package synth

import (
    "fmt"
    "testing"
    "time"

    "github.com/jonboulle/clockwork"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "threathunter/internal/domain"
)

// scriptedSource replays fixed values so draws are deterministic.
type scriptedSource struct {
    ints   []int
    floats []float64
}

func (s *scriptedSource) IntN(n int) int {
    v := s.ints[0]
    s.ints = s.ints[1:]
    return v % n
}

func (s *scriptedSource) Float64() float64 {
    v := s.floats[0]
    s.floats = s.floats[1:]
    return v
}

func TestSynthesizeScripted(t *testing.T) {
    created := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
    src := &scriptedSource{ints: []int{3, 42, 999}, floats: []float64{0.9}}
    s := New(WithSource(src), WithClock(clockwork.NewFakeClockAt(created)), WithIDs(func() string { return "id-1" }))

    rec := s.Synthesize("Emotet")

    assert.Equal(t, "id-1", rec.ID)
    assert.Equal(t, "Emotet", rec.Name)
    assert.Equal(t, domain.SeverityHigh, rec.Severity)
    assert.Equal(t, "Ransomware", rec.Category)
    assert.Equal(t, 42, rec.RiskScore)
    assert.Equal(t, 1000, rec.AffectedSystems)
    assert.Equal(t, created, rec.CreatedAt)
    assert.Equal(t, "Advanced threat analysis for Emotet reveals sophisticated attack patterns and potential vulnerabilities.", rec.Description)
    assert.Empty(t, src.ints)
    assert.Empty(t, src.floats)
}

func TestLegacySeverityChain(t *testing.T) {
    cases := []struct {
        floats []float64
        want   domain.Severity
    }{
        {[]float64{0.51}, domain.SeverityHigh},
        {[]float64{0.5, 0.31}, domain.SeverityMedium},
        {[]float64{0.1, 0.3}, domain.SeverityLow},
        {[]float64{0, 0}, domain.SeverityLow},
    }
    for _, tc := range cases {
        src := &scriptedSource{ints: []int{0, 0, 0}, floats: tc.floats}
        rec := New(WithSource(src)).Synthesize("q")
        assert.Equal(t, tc.want, rec.Severity, "floats %v", tc.floats)
    }
}

// The legacy policy uses two chained coin flips, so critical never shows up.
func TestLegacyPolicyNeverCritical(t *testing.T) {
    s := New()
    for i := 0; i < 5000; i++ {
        rec := s.Synthesize("APT29 Cozy Bear")
        require.NotEqual(t, domain.SeverityCritical, rec.Severity)
        require.True(t, rec.Severity.Valid())
    }
}

func TestUniformPolicyCanYieldCritical(t *testing.T) {
    src := &scriptedSource{ints: []int{3, 0, 0, 0}}
    rec := New(WithSource(src), WithSeverityPolicy(SeverityUniform)).Synthesize("q")
    assert.Equal(t, domain.SeverityCritical, rec.Severity)

    seen := map[domain.Severity]bool{}
    s := New(WithSeverityPolicy(SeverityUniform))
    for i := 0; i < 2000; i++ {
        seen[s.Synthesize("q").Severity] = true
    }
    assert.Len(t, seen, 4)
}

func TestRandomFieldRanges(t *testing.T) {
    s := New()
    for i := 0; i < 10000; i++ {
        q := fmt.Sprintf("query-%d", i)
        rec := s.Synthesize(q)
        require.Equal(t, q, rec.Name)
        require.Contains(t, rec.Description, q)
        require.GreaterOrEqual(t, rec.RiskScore, 0)
        require.Less(t, rec.RiskScore, 100)
        require.GreaterOrEqual(t, rec.AffectedSystems, 1)
        require.LessOrEqual(t, rec.AffectedSystems, 1000)
        require.Contains(t, domain.Categories, rec.Category)
    }
}

func TestFixedContentIsQueryIndependent(t *testing.T) {
    s := New()
    a := s.Synthesize("Ryuk Ransomware Campaign")
    b := s.Synthesize("x")

    assert.Equal(t, a.Indicators, b.Indicators)
    assert.Equal(t, a.Timeline, b.Timeline)
    assert.Equal(t, a.MitigationSteps, b.MitigationSteps)
    assert.Len(t, a.Indicators, 4)
    assert.Len(t, a.Timeline, 3)
    assert.Len(t, a.MitigationSteps, 4)
    assert.Equal(t, domain.TimelineEvent{Date: "2025-01-15", Event: "Initial detection"}, a.Timeline[0])
    assert.NotEqual(t, a.ID, b.ID)

    // records do not share backing arrays
    a.Indicators[0] = "mutated"
    assert.Equal(t, "Suspicious network traffic detected", s.Synthesize("y").Indicators[0])
}

func TestSynthesizeOddQueries(t *testing.T) {
    s := New()
    for _, q := range []string{"  padded  ", "<script>alert(1)</script>", "日本語", "%s %d"} {
        rec := s.Synthesize(q)
        assert.Equal(t, q, rec.Name)
        assert.Contains(t, rec.Description, q)
    }
}

func TestParseSeverityPolicy(t *testing.T) {
    p, err := ParseSeverityPolicy("")
    require.NoError(t, err)
    assert.Equal(t, SeverityLegacy, p)

    p, err = ParseSeverityPolicy(" Uniform ")
    require.NoError(t, err)
    assert.Equal(t, SeverityUniform, p)

    _, err = ParseSeverityPolicy("weighted")
    assert.Error(t, err)
}

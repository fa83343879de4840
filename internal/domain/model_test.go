package domain

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
    for _, v := range Views {
        got, err := ParseView(" " + string(v) + " ")
        require.NoError(t, err)
        assert.Equal(t, v, got)
    }
    got, err := ParseView("Dashboard")
    require.NoError(t, err)
    assert.Equal(t, ViewDashboard, got)

    _, err = ParseView("settings")
    assert.True(t, errors.Is(err, ErrUnknownView))
}

func TestParseTemplate(t *testing.T) {
    got, err := ParseTemplate("TIMELINE")
    require.NoError(t, err)
    assert.Equal(t, TemplateTimeline, got)

    _, err = ParseTemplate("poster")
    assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestFilterNormalize(t *testing.T) {
    f, err := AnalyticsFilter{TimeRange: "24H"}.Normalize()
    require.NoError(t, err)
    assert.Equal(t, AnalyticsFilter{TimeRange: "24h", ThreatType: "all"}, f)

    f, err = AnalyticsFilter{TimeRange: "7d", ThreatType: "ddos"}.Normalize()
    assert.ErrorIs(t, err, ErrInvalidFilter)
    assert.Equal(t, DefaultFilter(), f)
}

func TestThreatRecordClone(t *testing.T) {
    var nilRec *ThreatRecord
    assert.Nil(t, nilRec.Clone())

    orig := &ThreatRecord{
        Name:            "Emotet",
        Indicators:      []string{"a"},
        Timeline:        []TimelineEvent{{Date: "2025-01-15", Event: "x"}},
        MitigationSteps: []string{"b"},
    }
    cp := orig.Clone()
    cp.Indicators[0] = "changed"
    cp.Timeline[0].Event = "changed"
    cp.MitigationSteps[0] = "changed"

    assert.Equal(t, "a", orig.Indicators[0])
    assert.Equal(t, "x", orig.Timeline[0].Event)
    assert.Equal(t, "b", orig.MitigationSteps[0])
}

func TestSeverityValid(t *testing.T) {
    assert.True(t, SeverityCritical.Valid())
    assert.False(t, Severity("severe").Valid())
}

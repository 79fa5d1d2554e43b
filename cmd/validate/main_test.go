package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/site-marker-service/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockSites(t *testing.T) []json.RawMessage {
	t.Helper()
	docs, err := loadJSON[json.RawMessage](filepath.Join("..", "..", "data", "mock", "sites.json"))
	require.NoError(t, err)
	return docs
}

func resolveAll(t *testing.T, sites []domain.Site) []domain.MarkerEvent {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(resolvedAt))
	t.Cleanup(func() { domain.SetClock(nil) })

	events := make([]domain.MarkerEvent, 0, len(sites))
	for _, s := range sites {
		events = append(events, domain.NewMarkerEvent(s))
	}
	return events
}

func TestPhases_PassOnMockFixture(t *testing.T) {
	sites, p1 := validateSiteFixture(mockSites(t))
	require.True(t, p1.passed(), p1.errors)

	events := resolveAll(t, sites)
	for _, p := range []*phase{
		validateResolution(sites, events),
		validateIconRules(sites, events),
		validatePopupLayout(events),
	} {
		assert.True(t, p.passed(), "%s: %v", p.name, p.errors)
	}
}

func TestValidateSiteFixture_FlagsBadDocuments(t *testing.T) {
	docs := []json.RawMessage{
		json.RawMessage(`{"id":"a","type":"HELP_POINT","activeStatus":"ACTIVE"}`),
		json.RawMessage(`{"id":"a","type":"CAMP","activeStatus":"ACTIVE"}`),
		json.RawMessage(`{"type":"SHELTER","activeStatus":"SOMETIMES","location":{"latitude":120}}`),
	}

	sites, p := validateSiteFixture(docs)

	assert.Len(t, sites, 3)
	assert.Len(t, p.errors, 5)
}

func TestValidateResolution_DetectsDrift(t *testing.T) {
	sites, _ := validateSiteFixture(mockSites(t))
	events := resolveAll(t, sites)

	events[0].Marker.Tooltip = "tampered"
	events[1].ResolvedAt = resolvedAt.Add(time.Hour)
	events = events[:len(events)-1]

	p := validateResolution(sites, events)

	assert.Len(t, p.errors, 4)
}

func TestValidateIconRules_DetectsWrongIcon(t *testing.T) {
	sites, _ := validateSiteFixture(mockSites(t))
	events := resolveAll(t, sites)

	events[0].Marker.Icon.ID = domain.IconShelter

	p := validateIconRules(sites, events)

	assert.Len(t, p.errors, 2)
}

func TestCheckUpdates(t *testing.T) {
	older := time.Date(2023, 2, 7, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	var errs []string
	pf := func(format string, _ ...any) { errs = append(errs, format) }

	checkUpdates(pf, []domain.UpdateEntry{
		{CreateDateTime: &older, Text: "a"},
		{CreateDateTime: &newer, Text: "b"},
		{Text: "c"},
		{Text: domain.NoRecentUpdateText, Placeholder: true},
	})

	assert.Len(t, errs, 3)
}

func TestRun(t *testing.T) {
	sites, _ := validateSiteFixture(mockSites(t))
	events := resolveAll(t, sites)

	dir := t.TempDir()
	markersPath := filepath.Join(dir, "markers.json")
	data, err := json.Marshal(events)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(markersPath, data, 0o600))

	sitesPath := filepath.Join("..", "..", "data", "mock", "sites.json")
	assert.Equal(t, 0, run(sitesPath, markersPath))
	assert.Equal(t, 1, run(sitesPath, filepath.Join(dir, "missing.json")))
}

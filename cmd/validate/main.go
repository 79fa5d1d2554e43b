// Command validate performs end-to-end integrity checks on the mock marker
// data: the site fixture, the marker fixture produced by cmd/genmock, and the
// presentation rules every marker must satisfy. It re-resolves each site with
// the domain package and compares the result against the stored marker.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -sites data/mock/sites.json \
//	  -markers data/mock/markers.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/couchcryptid/site-marker-service/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
)

// resolvedAt matches the fixed clock used by genmock.
var resolvedAt = time.Date(2023, time.February, 9, 10, 0, 0, 0, time.UTC)

const directionsPrefix = "https://www.google.com/maps/dir/?api=1&destination="

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	sitesPath := flag.String("sites", "", "path to the mock site fixture")
	markersPath := flag.String("markers", "", "path to the marker fixture written by genmock")
	flag.Parse()

	if *sitesPath == "" || *markersPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*sitesPath, *markersPath); code != 0 {
		os.Exit(code)
	}
}

func run(sitesPath, markersPath string) int {
	domain.SetClock(clockwork.NewFakeClockAt(resolvedAt))
	defer domain.SetClock(nil)

	fmt.Println("=== Site Marker Integrity Validation ===")
	fmt.Println()

	rawSites, err := loadJSON[json.RawMessage](sitesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load sites: %v\n", err)
		return 1
	}

	events, err := loadJSON[domain.MarkerEvent](markersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load markers: %v\n", err)
		return 1
	}

	sites, p1 := validateSiteFixture(rawSites)
	phases := []*phase{
		p1,
		validateResolution(sites, events),
		validateIconRules(sites, events),
		validatePopupLayout(events),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d sites, %d markers\n", len(rawSites), len(events))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Site Fixture ──
// Validates the raw site documents and decodes them for the later phases.

var (
	validTypes    = map[string]bool{"SHELTER": true, "HELP_POINT": true}
	validActivity = map[string]bool{"ACTIVE": true, "NOT_ACTIVE": true, "UNKNOWN_ACTIVITY": true}
)

func validateSiteFixture(docs []json.RawMessage) ([]domain.Site, *phase) {
	p := &phase{name: "Phase 1: Site Fixture (raw documents)"}

	sites := make([]domain.Site, 0, len(docs))
	seen := map[string]int{}

	for i, doc := range docs {
		var raw domain.RawSite
		if err := json.Unmarshal(doc, &raw); err != nil {
			p.errorf("site %d: %v", i, err)
			continue
		}

		if raw.ID == "" {
			p.errorf("site %d: missing id", i)
		} else if prev, dup := seen[raw.ID]; dup {
			p.errorf("site %d: id %q duplicates site %d", i, raw.ID, prev)
		} else {
			seen[raw.ID] = i
		}
		if !validTypes[raw.Type] {
			p.errorf("site %d (%s): type %q not in {SHELTER, HELP_POINT}", i, raw.ID, raw.Type)
		}
		if !validActivity[raw.ActiveStatus] {
			p.errorf("site %d (%s): activeStatus %q not recognized", i, raw.ID, raw.ActiveStatus)
		}
		if raw.Location.Latitude < -90 || raw.Location.Latitude > 90 ||
			raw.Location.Longitude < -180 || raw.Location.Longitude > 180 {
			p.errorf("site %d (%s): coordinates out of range (%g, %g)", i, raw.ID,
				raw.Location.Latitude, raw.Location.Longitude)
		}

		site, err := domain.ParseRawEvent(domain.RawEvent{Value: doc})
		if err != nil {
			p.errorf("site %d: %v", i, err)
			continue
		}
		for j, u := range site.Updates {
			if u.Update != "" && u.CreateDateTime.IsZero() {
				p.errorf("site %s: update %d has no parseable createDateTime", site.ID, j)
			}
		}
		sites = append(sites, site)
	}
	return sites, p
}

// ── Phase 2: Resolution ──
// Re-resolves every site and compares with the stored marker fixture.

func validateResolution(sites []domain.Site, events []domain.MarkerEvent) *phase {
	p := &phase{name: "Phase 2: Resolution (fixture vs domain)"}

	if len(sites) != len(events) {
		p.errorf("count: %d sites, %d markers", len(sites), len(events))
	}

	byID := make(map[string]*domain.MarkerEvent, len(events))
	for i := range events {
		byID[events[i].Marker.SiteID] = &events[i]
	}

	for _, site := range sites {
		stored, ok := byID[site.ID]
		if !ok {
			p.errorf("site %s: no marker in fixture", site.ID)
			continue
		}
		if !stored.ResolvedAt.Equal(resolvedAt) {
			p.errorf("site %s: resolved_at %s, expected %s", site.ID,
				stored.ResolvedAt.Format(time.RFC3339), resolvedAt.Format(time.RFC3339))
		}
		if diff := cmp.Diff(domain.ResolveMarker(site), stored.Marker); diff != "" {
			p.errorf("site %s: marker mismatch (-resolved +fixture):\n%s", site.ID, diff)
		}
	}
	return p
}

// ── Phase 3: Icon Rules ──
// Checks the icon choice of every marker against its site independently of
// the domain resolver.

func validateIconRules(sites []domain.Site, events []domain.MarkerEvent) *phase {
	p := &phase{name: "Phase 3: Icon Rules (selection precedence)"}

	byID := make(map[string]domain.Site, len(sites))
	for _, s := range sites {
		byID[s.ID] = s
	}

	for i := range events {
		m := &events[i].Marker
		site, ok := byID[m.SiteID]
		if !ok {
			p.errorf("marker %s: no matching site", m.SiteID)
			continue
		}
		if want := expectedIcon(site); m.Icon.ID != want {
			p.errorf("marker %s: icon %q, expected %q", m.SiteID, m.Icon.ID, want)
		}
		if m.Icon.Asset != m.Icon.ID.Asset() {
			p.errorf("marker %s: asset %q does not belong to icon %q", m.SiteID, m.Icon.Asset, m.Icon.ID)
		}
		if m.Icon.Size != domain.IconSize {
			p.errorf("marker %s: icon size %d, expected %d", m.SiteID, m.Icon.Size, domain.IconSize)
		}
	}
	return p
}

var categoryIcons = map[domain.NeedCategory]domain.Icon{
	domain.NeedHumanHelp:     domain.IconHumanHelp,
	domain.NeedMaterial:      domain.IconMaterial,
	domain.NeedFood:          domain.IconFood,
	domain.NeedPackageStatus: domain.IconPackage,
}

func expectedIcon(site domain.Site) domain.Icon {
	switch {
	case site.Type == domain.SiteTypeShelter:
		return domain.IconShelter
	case site.ActiveStatus == domain.ActiveStatusNotActive:
		return domain.IconNoNeedOrClosed
	case site.ActiveStatus != domain.ActiveStatusActive:
		return domain.IconUnknown
	}

	for _, level := range []domain.StatusLevel{domain.StatusUrgentNeedRequired, domain.StatusNeedRequired} {
		for _, c := range domain.NeedCategories {
			if domain.StatusLevelFor(site, c) == level {
				return categoryIcons[c]
			}
		}
	}
	for _, c := range domain.NeedCategories {
		if domain.StatusLevelFor(site, c) != domain.StatusNoNeedRequired {
			return domain.IconUnknown
		}
	}
	return domain.IconNoNeedOrClosed
}

// ── Phase 4: Popup Layout ──
// Validates the structural rules of every popup.

func validatePopupLayout(events []domain.MarkerEvent) *phase {
	p := &phase{name: "Phase 4: Popup Layout (labels and updates)"}
	for i := range events {
		checkPopup(p, &events[i].Marker)
	}
	return p
}

func checkPopup(p *phase, m *domain.Marker) {
	pf := func(format string, args ...any) {
		p.errorf("marker %s: "+format, append([]any{m.SiteID}, args...)...)
	}

	if m.Popup.Locale != "tr-TR" {
		pf("locale %q, expected tr-TR", m.Popup.Locale)
	}

	if n := utf8.RuneCountInString(m.Tooltip); n > domain.MaxTooltipSize+3 {
		pf("tooltip %q has %d characters", m.Tooltip, n)
	}
	if m.Tooltip != domain.TruncateName(m.Popup.Name.Text) {
		pf("tooltip %q does not match name %q", m.Tooltip, m.Popup.Name.Text)
	}

	if len(m.Popup.Needs) != len(domain.NeedCategories) {
		pf("%d need lines, expected %d", len(m.Popup.Needs), len(domain.NeedCategories))
	} else {
		for i, c := range domain.NeedCategories {
			if m.Popup.Needs[i].Category != c {
				pf("need line %d is %s, expected %s", i, m.Popup.Needs[i].Category, c)
			}
		}
	}

	if !strings.HasPrefix(m.Popup.Directions.URL, directionsPrefix) {
		pf("directions URL %q has wrong base", m.Popup.Directions.URL)
	}

	checkUpdates(pf, m.Popup.Updates)
}

func checkUpdates(pf func(string, ...any), updates []domain.UpdateEntry) {
	if len(updates) == 0 {
		pf("update list is empty")
		return
	}
	for i, u := range updates {
		if u.Placeholder {
			if len(updates) != 1 {
				pf("placeholder mixed with %d other updates", len(updates)-1)
			}
			continue
		}
		if u.Text == "" {
			pf("update %d has empty text", i)
		}
		if u.CreateDateTime == nil {
			pf("update %d has no timestamp", i)
			continue
		}
		if i > 0 && updates[i-1].CreateDateTime != nil && updates[i-1].CreateDateTime.Before(*u.CreateDateTime) {
			pf("update %d is newer than update %d", i, i-1)
		}
	}
}

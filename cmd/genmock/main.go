// Command genmock resolves the mock site fixture into the expected marker
// fixture used by cmd/validate and downstream map clients. It runs the real
// domain package so the fixture matches pipeline behavior exactly.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -sites data/mock/sites.json \
//	  -markers-out data/mock/markers.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/site-marker-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// resolvedAt is the fixed resolution time stamped on every fixture marker.
var resolvedAt = time.Date(2023, time.February, 9, 10, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	sitesPath := flag.String("sites", "data/mock/sites.json", "path to the mock site fixture")
	markersOut := flag.String("markers-out", "", "output path for the expected marker fixture")
	flag.Parse()

	if *markersOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -markers-out")
	}

	domain.SetClock(clockwork.NewFakeClockAt(resolvedAt))
	defer domain.SetClock(nil)

	docs, err := readDocs(*sitesPath)
	if err != nil {
		return fmt.Errorf("reading sites: %w", err)
	}

	events := make([]domain.MarkerEvent, 0, len(docs))
	for i, doc := range docs {
		site, err := domain.ParseRawEvent(domain.RawEvent{Value: doc})
		if err != nil {
			return fmt.Errorf("site %d: %w", i, err)
		}
		events = append(events, domain.NewMarkerEvent(site))
	}
	log.Printf("resolved %d markers", len(events))

	if err := writeJSON(*markersOut, events); err != nil {
		return fmt.Errorf("writing marker fixture: %w", err)
	}
	log.Printf("wrote marker fixture: %s", *markersOut)

	printStats(events)
	return nil
}

func readDocs(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

type iconCount struct {
	icon  domain.Icon
	count int
}

func printStats(events []domain.MarkerEvent) {
	icons := map[domain.Icon]int{}
	activity := map[string]int{}
	var placeholders, truncated int

	for i := range events {
		m := &events[i].Marker
		icons[m.Icon.ID]++
		activity[m.Popup.Activity.Text]++
		if len(m.Popup.Updates) == 1 && m.Popup.Updates[0].Placeholder {
			placeholders++
		}
		if m.Tooltip != m.Popup.Name.Text {
			truncated++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(events))

	ic := make([]iconCount, 0, len(icons))
	for icon, c := range icons {
		ic = append(ic, iconCount{icon, c})
	}
	sort.Slice(ic, func(i, j int) bool {
		if ic[i].count != ic[j].count {
			return ic[i].count > ic[j].count
		}
		return ic[i].icon < ic[j].icon
	})
	fmt.Print("By icon:")
	for _, c := range ic {
		fmt.Printf(" %s=%d", c.icon, c.count)
	}
	fmt.Println()

	fmt.Printf("By activity: AÇIK=%d, KAPALI=%d, BİLİNMİYOR=%d\n",
		activity["AÇIK"], activity["KAPALI"], activity["BİLİNMİYOR"])
	fmt.Printf("Truncated tooltips: %d\n", truncated)
	fmt.Printf("Update placeholders: %d\n", placeholders)
}

package domain

import (
	"fmt"
	"slices"
	"time"
)

// NoRecentUpdateText is the single entry shown when a site has no displayable update.
const NoRecentUpdateText = "Son güncelleme bulunmuyor."

// displayOffset shifts stored UTC timestamps into the display timezone (UTC+3).
const displayOffset = 3 * time.Hour

var displayZone = time.FixedZone("UTC+3", int(displayOffset/time.Second))

var turkishMonths = [...]string{
	time.January:   "Ocak",
	time.February:  "Şubat",
	time.March:     "Mart",
	time.April:     "Nisan",
	time.May:       "Mayıs",
	time.June:      "Haziran",
	time.July:      "Temmuz",
	time.August:    "Ağustos",
	time.September: "Eylül",
	time.October:   "Ekim",
	time.November:  "Kasım",
	time.December:  "Aralık",
}

var turkishWeekdays = [...]string{
	time.Sunday:    "Pazar",
	time.Monday:    "Pazartesi",
	time.Tuesday:   "Salı",
	time.Wednesday: "Çarşamba",
	time.Thursday:  "Perşembe",
	time.Friday:    "Cuma",
	time.Saturday:  "Cumartesi",
}

// UpdateEntry is one line of the popup update list.
type UpdateEntry struct {
	CreateDateTime *time.Time `json:"createDateTime,omitempty"`
	DisplayTime    string     `json:"displayTime,omitempty"`
	Text           string     `json:"text"`
	Placeholder    bool       `json:"placeholder,omitempty"`
}

// ProjectUpdates turns a site's update log into display entries: entries
// without text are dropped, the rest are ordered most recent first (equal
// timestamps keep their log order), and each timestamp is formatted in
// Turkish for UTC+3. An empty result is replaced by a single placeholder.
func ProjectUpdates(updates []Update) []UpdateEntry {
	shown := make([]Update, 0, len(updates))
	for _, u := range updates {
		if u.Update != "" {
			shown = append(shown, u)
		}
	}

	if len(shown) == 0 {
		return []UpdateEntry{{Text: NoRecentUpdateText, Placeholder: true}}
	}

	slices.SortStableFunc(shown, func(a, b Update) int {
		return b.CreateDateTime.Compare(a.CreateDateTime)
	})

	entries := make([]UpdateEntry, len(shown))
	for i, u := range shown {
		ts := u.CreateDateTime
		entries[i] = UpdateEntry{
			CreateDateTime: &ts,
			DisplayTime:    FormatUpdateTime(ts),
			Text:           u.Update,
		}
	}
	return entries
}

// FormatUpdateTime renders a UTC timestamp in the Turkish long form used by
// the popup, e.g. "6 Şubat 2023 Pazartesi 04:17" for 2023-02-06T01:17:00Z.
func FormatUpdateTime(t time.Time) string {
	local := t.In(displayZone)
	return fmt.Sprintf("%d %s %d %s %02d:%02d",
		local.Day(),
		turkishMonths[local.Month()],
		local.Year(),
		turkishWeekdays[local.Weekday()],
		local.Hour(),
		local.Minute(),
	)
}

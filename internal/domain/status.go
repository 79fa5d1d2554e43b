package domain

import (
	"encoding/json"
	"strings"
)

// StatusLevel is the ordered urgency of a single need category:
// unknown < no need < need < urgent need.
type StatusLevel int

const (
	StatusUnknown StatusLevel = iota
	StatusNoNeedRequired
	StatusNeedRequired
	StatusUrgentNeedRequired

	statusLevelCount
)

var statusLevelNames = [...]string{
	StatusUnknown:            "UNKNOWN",
	StatusNoNeedRequired:     "NO_NEED_REQUIRED",
	StatusNeedRequired:       "NEED_REQUIRED",
	StatusUrgentNeedRequired: "URGENT_NEED_REQUIRED",
}

// Compile-time check that every level has a name.
var (
	_ [len(statusLevelNames) - int(statusLevelCount)]struct{}
	_ [int(statusLevelCount) - len(statusLevelNames)]struct{}
)

// ParseStatusLevel maps wire text to a StatusLevel. Unrecognized text,
// including the empty string, is StatusUnknown.
func ParseStatusLevel(s string) StatusLevel {
	s = strings.TrimSpace(s)
	for i, name := range statusLevelNames {
		if name == s {
			return StatusLevel(i)
		}
	}
	return StatusUnknown
}

func (l StatusLevel) String() string {
	return statusLevelNames[l.normalize()]
}

// normalize folds out-of-range values into StatusUnknown.
func (l StatusLevel) normalize() StatusLevel {
	if l < 0 || l >= statusLevelCount {
		return StatusUnknown
	}
	return l
}

func (l StatusLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON never fails: anything other than a known level name decodes
// to StatusUnknown.
func (l *StatusLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*l = StatusUnknown
		return nil //nolint:nilerr // malformed levels degrade to unknown
	}
	*l = ParseStatusLevel(s)
	return nil
}

// StatusLevelFor returns the status level a site records for a need category,
// or StatusUnknown when the category is absent or malformed.
func StatusLevelFor(site Site, category NeedCategory) StatusLevel {
	return site.Needs.Level(category)
}

package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RawSite is the JSON document the data source publishes for a site. Enum
// fields stay as text so unrecognized values can degrade instead of failing
// the whole document.
type RawSite struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	ActiveStatus       string          `json:"activeStatus"`
	Location           Location        `json:"location"`
	Description        string          `json:"description"`
	ContactInformation string          `json:"contactInformation"`
	Needs              json.RawMessage `json:"needs"`
	Updates            []RawUpdate     `json:"updates"`
}

// RawUpdate is an update log entry as published. Update is nil when the
// source omitted the text.
type RawUpdate struct {
	CreateDateTime string  `json:"createDateTime"`
	Update         *string `json:"update"`
}

// rawNeedPair is the list form of a need entry: [{"type":"FOOD","level":"NEED_REQUIRED"}].
type rawNeedPair struct {
	Type  string          `json:"type"`
	Level json.RawMessage `json:"level"`
}

// Timestamp layouts accepted for createDateTime. Values without a zone are UTC.
var updateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseSite decodes a site document. The only error is undecodable JSON;
// malformed enum values and need entries degrade to their unknown defaults.
func ParseSite(data []byte) (Site, error) {
	var rec RawSite
	if err := json.Unmarshal(data, &rec); err != nil {
		return Site{}, fmt.Errorf("parse site: %w", err)
	}
	return rec.Site(), nil
}

// ParseRawEvent decodes a site snapshot message. Sites without an id take the
// message key, or a deterministic id derived from name and coordinates.
func ParseRawEvent(raw RawEvent) (Site, error) {
	site, err := ParseSite(raw.Value)
	if err != nil {
		return Site{}, err
	}
	if site.ID == "" {
		site.ID = string(raw.Key)
	}
	if site.ID == "" {
		site.ID = generateID(site.Name, site.Location.Latitude, site.Location.Longitude)
	}
	return site, nil
}

// Site normalizes a raw record into the domain model.
func (r RawSite) Site() Site {
	site := Site{
		ID:                 strings.TrimSpace(r.ID),
		Name:               r.Name,
		Type:               SiteType(strings.TrimSpace(r.Type)),
		ActiveStatus:       ParseActiveStatus(strings.TrimSpace(r.ActiveStatus)),
		Location:           r.Location,
		Description:        r.Description,
		ContactInformation: strings.TrimSpace(r.ContactInformation),
		Needs:              decodeNeeds(r.Needs),
	}
	if site.Type != SiteTypeShelter {
		site.Type = SiteTypeHelpPoint
	}
	for _, u := range r.Updates {
		text := ""
		if u.Update != nil {
			text = *u.Update
		}
		site.Updates = append(site.Updates, Update{
			CreateDateTime: parseUpdateTime(u.CreateDateTime),
			Update:         text,
		})
	}
	return site
}

// decodeNeeds accepts either an object keyed by category or a list of
// type/level pairs. Anything else leaves every category unknown.
func decodeNeeds(data json.RawMessage) Needs {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Needs{}
	}

	var byCategory map[string]json.RawMessage
	if err := json.Unmarshal(data, &byCategory); err == nil {
		var needs Needs
		for k, v := range byCategory {
			setNeed(&needs, NeedCategory(strings.TrimSpace(k)), v)
		}
		return needs
	}

	var pairs []rawNeedPair
	if err := json.Unmarshal(data, &pairs); err == nil {
		var needs Needs
		for _, p := range pairs {
			setNeed(&needs, NeedCategory(strings.TrimSpace(p.Type)), p.Level)
		}
		return needs
	}

	return Needs{}
}

func setNeed(needs *Needs, c NeedCategory, v json.RawMessage) {
	var level StatusLevel
	_ = level.UnmarshalJSON(v)

	switch c {
	case NeedHumanHelp:
		needs.HumanHelp = level
	case NeedMaterial:
		needs.Material = level
	case NeedFood:
		needs.Food = level
	case NeedPackageStatus:
		needs.PackageStatus = level
	}
}

// parseUpdateTime returns the zero time when no layout matches.
func parseUpdateTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range updateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// generateID produces a deterministic id from a site's name and coordinates so
// replays of the same snapshot key to the same marker.
func generateID(name string, lat, lng float64) string {
	input := fmt.Sprintf("%s|%.6f|%.6f", strings.TrimSpace(name), lat, lng)
	hash := sha256.Sum256([]byte(input))
	return "site-" + hex.EncodeToString(hash[:8])
}

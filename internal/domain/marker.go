package domain

import (
	"golang.org/x/text/language"
)

// Locale is the BCP 47 tag of all user-facing marker text.
var Locale = language.MustParse("tr-TR")

// Fixed popup captions.
const (
	activityLabel    = "Aktiflik"
	districtLabel    = "İlçe"
	addressLabel     = "Adres"
	descriptionLabel = "Açıklama"
	contactLabel     = "İletişim Bilgileri"
	directionsLabel  = "Bu Alana Yol Tarifi Al"
	updatesHeader    = "Güncellemeler"
)

var needLabels = map[NeedCategory]string{
	NeedHumanHelp:     "İnsan İhtiyacı",
	NeedMaterial:      "Materyal İhtiyacı",
	NeedFood:          "Gıda İhtiyacı",
	NeedPackageStatus: "Koli İhtiyacı",
}

// Position is a WGS-84 marker position.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MarkerIcon is the pin identifier plus what the renderer needs to draw it.
type MarkerIcon struct {
	ID    Icon   `json:"id"`
	Asset string `json:"asset"`
	Size  int    `json:"size"`
}

// Field is a captioned popup line.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// NeedLine is the popup line for one need category.
type NeedLine struct {
	Category NeedCategory `json:"category"`
	Label    string       `json:"label"`
	Level    StatusLevel  `json:"level"`
	Status   StyledText   `json:"status"`
}

// Link is a captioned hyperlink.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Popup is the structured content of a marker popup.
type Popup struct {
	Locale         string        `json:"locale"`
	NameLabel      string        `json:"nameLabel"`
	Name           StyledText    `json:"name"`
	OrganizerLabel string        `json:"organizerLabel"`
	ActivityLabel  string        `json:"activityLabel"`
	Activity       StyledText    `json:"activity"`
	District       Field         `json:"district"`
	Address        Field         `json:"address"`
	Description    Field         `json:"description"`
	Contact        Field         `json:"contact"`
	Needs          []NeedLine    `json:"needs"`
	Directions     Link          `json:"directions"`
	UpdatesHeader  string        `json:"updatesHeader"`
	Updates        []UpdateEntry `json:"updates"`
}

// Marker is everything the map renderer needs to draw one site.
type Marker struct {
	SiteID   string     `json:"siteId"`
	SiteType SiteType   `json:"siteType"`
	Icon     MarkerIcon `json:"icon"`
	Position Position   `json:"position"`
	Tooltip  string     `json:"tooltip"`
	Popup    Popup      `json:"popup"`
}

// ResolveMarker derives the full marker presentation from a site snapshot.
// It is deterministic and has no side effects.
func ResolveMarker(site Site) Marker {
	icon := ResolveIcon(site)

	needs := make([]NeedLine, 0, len(NeedCategories))
	for _, c := range NeedCategories {
		level := StatusLevelFor(site, c)
		needs = append(needs, NeedLine{
			Category: c,
			Label:    needLabels[c],
			Level:    level,
			Status:   StatusLevelText(level),
		})
	}

	return Marker{
		SiteID:   site.ID,
		SiteType: site.Type,
		Icon:     MarkerIcon{ID: icon, Asset: icon.Asset(), Size: IconSize},
		Position: Position{Lat: site.Location.Latitude, Lng: site.Location.Longitude},
		Tooltip:  TruncateName(site.Name),
		Popup: Popup{
			Locale:         Locale.String(),
			NameLabel:      NameLabel(site.Type),
			Name:           SiteNameText(site),
			OrganizerLabel: OrganizerLabel(site.Type),
			ActivityLabel:  activityLabel,
			Activity:       ActiveStatusText(site.ActiveStatus),
			District:       Field{Label: districtLabel, Value: site.Location.District},
			Address:        Field{Label: addressLabel, Value: site.Location.AdditionalAddress},
			Description:    Field{Label: descriptionLabel, Value: site.Description},
			Contact:        Field{Label: contactLabel, Value: ContactText(site.ContactInformation)},
			Needs:          needs,
			Directions: Link{
				Label: directionsLabel,
				URL:   DirectionsURL(site.Location.Latitude, site.Location.Longitude),
			},
			UpdatesHeader: updatesHeader,
			Updates:       ProjectUpdates(site.Updates),
		},
	}
}

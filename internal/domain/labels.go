package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxTooltipSize is the number of characters of a site name shown in the
// permanent marker tooltip.
const MaxTooltipSize = 10

const (
	ellipsis    = "..."
	unknownText = "Bilinmiyor"
)

// Color names understood by the popup renderer.
const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorGray  = "gray"
)

// StyledText is a short label paired with the color it is rendered in.
type StyledText struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// NameLabel is the caption of the site name line.
func NameLabel(t SiteType) string {
	if t.IsShelter() {
		return "Konaklama Noktası İsmi"
	}
	return "Yardım Noktası İsmi"
}

// OrganizerLabel is the caption of the host/organizer line.
func OrganizerLabel(t SiteType) string {
	if t.IsShelter() {
		return "Ev Sahibi İsmi"
	}
	return "Organize Eden Kurum"
}

var statusLevelTexts = [...]StyledText{
	StatusUnknown:            {Text: unknownText, Color: ColorGray},
	StatusNoNeedRequired:     {Text: "YOK", Color: ColorRed},
	StatusNeedRequired:       {Text: "VAR", Color: ColorGreen},
	StatusUrgentNeedRequired: {Text: "ACİL VAR", Color: ColorGreen},
}

// Compile-time check that every level has display text.
var (
	_ [len(statusLevelTexts) - int(statusLevelCount)]struct{}
	_ [int(statusLevelCount) - len(statusLevelTexts)]struct{}
)

// StatusLevelText renders a need level. Out-of-range levels render as unknown.
func StatusLevelText(l StatusLevel) StyledText {
	return statusLevelTexts[l.normalize()]
}

// ActiveStatusText renders the activity state of a site.
func ActiveStatusText(s ActiveStatus) StyledText {
	switch ParseActiveStatus(string(s)) {
	case ActiveStatusActive:
		return StyledText{Text: "AÇIK", Color: ColorGreen}
	case ActiveStatusNotActive:
		return StyledText{Text: "KAPALI", Color: ColorRed}
	default:
		return StyledText{Text: "BİLİNMİYOR", Color: ColorGray}
	}
}

// activityColor is the color used for the site name.
func activityColor(s ActiveStatus) string {
	switch ParseActiveStatus(string(s)) {
	case ActiveStatusActive:
		return ColorGreen
	case ActiveStatusNotActive:
		return ColorRed
	default:
		return ColorGray
	}
}

// SiteNameText renders the site name in its activity color.
func SiteNameText(site Site) StyledText {
	return StyledText{Text: site.Name, Color: activityColor(site.ActiveStatus)}
}

// ContactText returns the contact line, or the unknown marker when empty.
func ContactText(contact string) string {
	if contact == "" {
		return unknownText
	}
	return contact
}

// TruncateName shortens a name for the tooltip. The result is the first
// MaxTooltipSize characters with trailing whitespace trimmed, followed by
// "..." only when the name was longer than MaxTooltipSize. The cut is a fixed
// character slice, not word-aware.
func TruncateName(name string) string {
	runes := []rune(norm.NFC.String(name))
	if len(runes) <= MaxTooltipSize {
		return strings.TrimSpace(string(runes))
	}
	return strings.TrimSpace(string(runes[:MaxTooltipSize])) + ellipsis
}

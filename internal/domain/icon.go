package domain

// Icon identifies the marker pin drawn for a site.
type Icon string

const (
	IconShelter        Icon = "shelter"
	IconHumanHelp      Icon = "human_help"
	IconMaterial       Icon = "material"
	IconFood           Icon = "food"
	IconPackage        Icon = "package"
	IconNoNeedOrClosed Icon = "no_need_or_closed"
	IconUnknown        Icon = "unknown"
)

// IconSize is the rendered pin width in pixels.
const IconSize = 35

var iconAssets = map[Icon]string{
	IconShelter:        "house.png",
	IconHumanHelp:      "human.jpg",
	IconMaterial:       "material.png",
	IconFood:           "food.png",
	IconPackage:        "package.png",
	IconNoNeedOrClosed: "no_need_or_closed_icon.png",
	IconUnknown:        "unknown.png",
}

// Asset returns the image file the map renderer loads for the icon.
// Unrecognized icons use the unknown asset.
func (i Icon) Asset() string {
	if a, ok := iconAssets[i]; ok {
		return a
	}
	return iconAssets[IconUnknown]
}

// categoryIcon maps a need category to its pin.
func categoryIcon(c NeedCategory) Icon {
	switch c {
	case NeedHumanHelp:
		return IconHumanHelp
	case NeedMaterial:
		return IconMaterial
	case NeedFood:
		return IconFood
	case NeedPackageStatus:
		return IconPackage
	default:
		return IconUnknown
	}
}

// ResolveIcon picks the single pin for a site. Rules are evaluated in order
// and the first match wins:
//
//  1. shelters always use the shelter icon
//  2. closed sites use the no-need/closed icon
//  3. sites with unknown activity use the unknown icon
//  4. the first category (in NeedCategories order) at URGENT_NEED_REQUIRED,
//     then the first at NEED_REQUIRED, selects that category's icon
//  5. all four categories at NO_NEED_REQUIRED use the no-need/closed icon
//  6. anything else uses the unknown icon
//
// Urgency dominates across categories: an urgent FOOD need outranks a plain
// HUMAN_HELP need.
func ResolveIcon(site Site) Icon {
	if site.Type.IsShelter() {
		return IconShelter
	}

	switch ParseActiveStatus(string(site.ActiveStatus)) {
	case ActiveStatusNotActive:
		return IconNoNeedOrClosed
	case ActiveStatusUnknown:
		return IconUnknown
	}

	for _, tier := range []StatusLevel{StatusUrgentNeedRequired, StatusNeedRequired} {
		for _, c := range NeedCategories {
			if StatusLevelFor(site, c) == tier {
				return categoryIcon(c)
			}
		}
	}

	for _, c := range NeedCategories {
		if StatusLevelFor(site, c) != StatusNoNeedRequired {
			return IconUnknown
		}
	}
	return IconNoNeedOrClosed
}

package domain

import "time"

// SiteType distinguishes shelters from help points.
type SiteType string

const (
	SiteTypeShelter   SiteType = "SHELTER"
	SiteTypeHelpPoint SiteType = "HELP_POINT"
)

// IsShelter reports whether the site is a shelter. Only the literal SHELTER
// value counts; every other value is presented as a help point.
func (t SiteType) IsShelter() bool {
	return t == SiteTypeShelter
}

// ActiveStatus records whether a site is currently operating.
type ActiveStatus string

const (
	ActiveStatusActive    ActiveStatus = "ACTIVE"
	ActiveStatusNotActive ActiveStatus = "NOT_ACTIVE"
	ActiveStatusUnknown   ActiveStatus = "UNKNOWN_ACTIVITY"
)

// ParseActiveStatus maps wire text to an ActiveStatus. Unrecognized or empty
// values degrade to ActiveStatusUnknown.
func ParseActiveStatus(s string) ActiveStatus {
	switch ActiveStatus(s) {
	case ActiveStatusActive, ActiveStatusNotActive:
		return ActiveStatus(s)
	default:
		return ActiveStatusUnknown
	}
}

// NeedCategory is one of the four independent resource types a site tracks.
type NeedCategory string

const (
	NeedHumanHelp     NeedCategory = "HUMAN_HELP"
	NeedMaterial      NeedCategory = "MATERIAL"
	NeedFood          NeedCategory = "FOOD"
	NeedPackageStatus NeedCategory = "PACKAGE_STATUS"
)

// NeedCategories lists every category in icon tie-break order.
var NeedCategories = [...]NeedCategory{
	NeedHumanHelp,
	NeedMaterial,
	NeedFood,
	NeedPackageStatus,
}

// Needs is the fixed-schema need record of a site. The zero value reports
// StatusUnknown for every category.
type Needs struct {
	HumanHelp     StatusLevel `json:"HUMAN_HELP"`
	Material      StatusLevel `json:"MATERIAL"`
	Food          StatusLevel `json:"FOOD"`
	PackageStatus StatusLevel `json:"PACKAGE_STATUS"`
}

// Level returns the status level recorded for a category.
func (n Needs) Level(c NeedCategory) StatusLevel {
	switch c {
	case NeedHumanHelp:
		return n.HumanHelp.normalize()
	case NeedMaterial:
		return n.Material.normalize()
	case NeedFood:
		return n.Food.normalize()
	case NeedPackageStatus:
		return n.PackageStatus.normalize()
	default:
		return StatusUnknown
	}
}

// Location is the immutable geographic and address data of a site.
type Location struct {
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	District          string  `json:"district"`
	AdditionalAddress string  `json:"additionalAddress"`
}

// Update is one entry of a site's append-only update log.
type Update struct {
	CreateDateTime time.Time `json:"createDateTime"`
	Update         string    `json:"update"`
}

// Site is a shelter or help point snapshot as supplied by the data source.
type Site struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Type               SiteType     `json:"type"`
	ActiveStatus       ActiveStatus `json:"activeStatus"`
	Location           Location     `json:"location"`
	Description        string       `json:"description"`
	ContactInformation string       `json:"contactInformation"`
	Needs              Needs        `json:"needs"`
	Updates            []Update     `json:"updates,omitempty"`
}

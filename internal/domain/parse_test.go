package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSiteID   = "site-42"
	testSiteName = "Antakya Kızılay Yardım Noktası"
)

func TestParseSite(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		data := []byte(`{
			"id": "site-42",
			"name": "Antakya Kızılay Yardım Noktası",
			"type": "HELP_POINT",
			"activeStatus": "ACTIVE",
			"location": {"latitude": 36.2021, "longitude": 36.1604, "district": "Antakya", "additionalAddress": "Cumhuriyet Cd. No:5"},
			"description": "Gıda ve battaniye dağıtımı",
			"contactInformation": " 0532 000 00 00 ",
			"needs": {"HUMAN_HELP": "URGENT_NEED_REQUIRED", "MATERIAL": "NEED_REQUIRED", "FOOD": "NO_NEED_REQUIRED"},
			"updates": [
				{"createDateTime": "2023-02-07T08:00:00Z", "update": "Battaniye geldi"},
				{"createDateTime": "2023-02-08T06:15:00", "update": null}
			]
		}`)

		site, err := ParseSite(data)
		require.NoError(t, err)

		assert.Equal(t, testSiteID, site.ID)
		assert.Equal(t, testSiteName, site.Name)
		assert.Equal(t, SiteTypeHelpPoint, site.Type)
		assert.Equal(t, ActiveStatusActive, site.ActiveStatus)
		assert.Equal(t, 36.2021, site.Location.Latitude)
		assert.Equal(t, "Antakya", site.Location.District)
		assert.Equal(t, "0532 000 00 00", site.ContactInformation)
		assert.Equal(t, Needs{
			HumanHelp:     StatusUrgentNeedRequired,
			Material:      StatusNeedRequired,
			Food:          StatusNoNeedRequired,
			PackageStatus: StatusUnknown,
		}, site.Needs)
		require.Len(t, site.Updates, 2)
		assert.Equal(t, "Battaniye geldi", site.Updates[0].Update)
		assert.Equal(t, time.Date(2023, 2, 8, 6, 15, 0, 0, time.UTC), site.Updates[1].CreateDateTime)
		assert.Empty(t, site.Updates[1].Update)
	})

	t.Run("needs as list of pairs", func(t *testing.T) {
		data := []byte(`{"type":"HELP_POINT","activeStatus":"ACTIVE","needs":[{"type":"FOOD","level":"URGENT_NEED_REQUIRED"},{"type":"PACKAGE_STATUS","level":"NEED_REQUIRED"}]}`)
		site, err := ParseSite(data)
		require.NoError(t, err)
		assert.Equal(t, StatusUrgentNeedRequired, site.Needs.Food)
		assert.Equal(t, StatusNeedRequired, site.Needs.PackageStatus)
		assert.Equal(t, StatusUnknown, site.Needs.HumanHelp)
	})

	t.Run("malformed needs degrade to unknown", func(t *testing.T) {
		for _, needs := range []string{
			`"URGENT"`,
			`42`,
			`null`,
			`{"HUMAN_HELP": 3, "MATERIAL": "SOMETIMES", "FOOD": null, "WATER": "NEED_REQUIRED"}`,
			`[{"type":"FOOD"}]`,
		} {
			site, err := ParseSite([]byte(`{"type":"HELP_POINT","activeStatus":"ACTIVE","needs":` + needs + `}`))
			require.NoError(t, err, needs)
			assert.Equal(t, Needs{}, site.Needs, needs)
			assert.Equal(t, IconUnknown, ResolveIcon(site), needs)
		}
	})

	t.Run("unrecognized enums degrade", func(t *testing.T) {
		site, err := ParseSite([]byte(`{"type":"CAMP","activeStatus":"MAYBE"}`))
		require.NoError(t, err)
		assert.Equal(t, SiteTypeHelpPoint, site.Type)
		assert.Equal(t, ActiveStatusUnknown, site.ActiveStatus)
	})

	t.Run("missing fields", func(t *testing.T) {
		site, err := ParseSite([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, site.ID)
		assert.Nil(t, site.Updates)
		assert.Equal(t, ActiveStatusUnknown, site.ActiveStatus)
	})

	t.Run("unparseable timestamp is zero", func(t *testing.T) {
		site, err := ParseSite([]byte(`{"updates":[{"createDateTime":"yesterday","update":"x"}]}`))
		require.NoError(t, err)
		require.Len(t, site.Updates, 1)
		assert.True(t, site.Updates[0].CreateDateTime.IsZero())
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseSite([]byte("{invalid json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse site")
	})
}

func TestParseRawEvent_IDFallbacks(t *testing.T) {
	t.Run("document id wins", func(t *testing.T) {
		site, err := ParseRawEvent(RawEvent{Key: []byte("key"), Value: []byte(`{"id":"site-1"}`)})
		require.NoError(t, err)
		assert.Equal(t, "site-1", site.ID)
	})

	t.Run("message key", func(t *testing.T) {
		site, err := ParseRawEvent(RawEvent{Key: []byte("key-7"), Value: []byte(`{"name":"x"}`)})
		require.NoError(t, err)
		assert.Equal(t, "key-7", site.ID)
	})

	t.Run("deterministic generated id", func(t *testing.T) {
		raw := RawEvent{Value: []byte(`{"name":"Hatay Stadyumu","location":{"latitude":36.2,"longitude":36.16}}`)}
		a, err := ParseRawEvent(raw)
		require.NoError(t, err)
		b, err := ParseRawEvent(raw)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(a.ID, "site-"))
		assert.Equal(t, a.ID, b.ID)
	})
}

func TestParseStatusLevel(t *testing.T) {
	assert.Equal(t, StatusUrgentNeedRequired, ParseStatusLevel("URGENT_NEED_REQUIRED"))
	assert.Equal(t, StatusNeedRequired, ParseStatusLevel(" NEED_REQUIRED "))
	assert.Equal(t, StatusNoNeedRequired, ParseStatusLevel("NO_NEED_REQUIRED"))
	assert.Equal(t, StatusUnknown, ParseStatusLevel("UNKNOWN"))
	assert.Equal(t, StatusUnknown, ParseStatusLevel("urgent"))
	assert.Equal(t, StatusUnknown, ParseStatusLevel(""))
}

func TestStatusLevelFor(t *testing.T) {
	site := Site{Needs: Needs{Material: StatusNeedRequired, Food: StatusLevel(7)}}
	assert.Equal(t, StatusNeedRequired, StatusLevelFor(site, NeedMaterial))
	assert.Equal(t, StatusUnknown, StatusLevelFor(site, NeedFood))
	assert.Equal(t, StatusUnknown, StatusLevelFor(site, NeedHumanHelp))
	assert.Equal(t, StatusUnknown, StatusLevelFor(site, NeedCategory("WATER")))
}

// Package domain resolves relief site snapshots into map marker presentations.
//
// # Data Source
//
// Sites are shelters (SHELTER) and help points (HELP_POINT) published by the
// upstream site registry as one JSON document per site. The registry owns the
// data; this package never fetches, caches, or mutates it. Every function here
// is a pure derivation from the snapshot it is given.
//
// # Need Levels
//
// Each site tracks four need categories, always evaluated in this order:
//
//	HUMAN_HELP, MATERIAL, FOOD, PACKAGE_STATUS
//
// Each category carries one ordered level:
//
//	UNKNOWN < NO_NEED_REQUIRED < NEED_REQUIRED < URGENT_NEED_REQUIRED
//
// The registry sends needs either as an object keyed by category or as a list
// of {"type", "level"} pairs. Missing categories and unrecognized levels read
// as UNKNOWN; decoding a site never fails because of its needs.
//
// # Icon Selection
//
// A marker shows exactly one pin. Shelters always show the house pin. For help
// points, activity is checked first (closed sites show the no-need/closed pin,
// sites with unknown activity the unknown pin). Active sites then show the pin
// of the first urgent category, else the first category in need, else the
// no-need pin when all four categories report no need, else the unknown pin.
// See [ResolveIcon].
//
// # Update Log
//
// Updates are displayed most recent first. Entries without text are hidden;
// a site with nothing to show gets the single "Son güncelleme bulunmuyor."
// placeholder. Stored timestamps are UTC and are displayed in UTC+3 using
// Turkish month and weekday names:
//
//	2023-02-06T01:17:00Z  →  "6 Şubat 2023 Pazartesi 04:17"
//
// # Locale
//
// All user-facing text is Turkish (tr-TR). Labels are fixed and not
// configurable.
package domain

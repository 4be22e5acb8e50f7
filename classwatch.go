// Package classwatch fetches a class-schedule openings page, extracts
// course offerings from its table, filters them against a user-supplied
// rule set, and emits the matching records as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, yaml/).
package classwatch

import "net/url"

// DefaultOpeningsBaseURL is the class openings listing endpoint.
const DefaultOpeningsBaseURL = "https://app.jackrabbitclass.com/webregopeningsv2.asp"

// DefaultOpeningsURL returns the openings listing URL with the fixed
// query-parameter set the registration page expects.
func DefaultOpeningsURL() string {
	params := url.Values{
		"searchpage":      {"29750"},
		"rvcol":           {"0"},
		"rtcol":           {"2"},
		"rc":              {"0,1,2,3"},
		"hc":              {"0,11"},
		"hcat1":           {"no"},
		"oid":             {"531495"},
		"filterClasses":   {""},
		"waitlistClasses": {""},
	}
	return DefaultOpeningsBaseURL + "?" + params.Encode()
}

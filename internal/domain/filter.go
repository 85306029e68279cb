package domain

import "net/url"

// CustomerFilter defines the optional criteria of the customer listing.
// An empty field means "no filter" for that dimension.
type CustomerFilter struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	MinRating string `json:"ratings"`
}

// ParseCustomerFilter reads the listing filters from request parameters.
// Absent or empty values and "0" mean "not provided". MinRating is kept
// as the raw string; the store does the numeric comparison.
func ParseCustomerFilter(params url.Values) CustomerFilter {
	return CustomerFilter{
		FirstName: provided(params.Get("first_name")),
		LastName:  provided(params.Get("last_name")),
		MinRating: provided(params.Get("ratings")),
	}
}

// provided drops "" and "0". Any other value, "false" included, is a filter.
func provided(v string) string {
	if v == "0" {
		return ""
	}
	return v
}

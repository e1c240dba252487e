package models

// Activity is one entry inside a day plan. All fields are free text as
// produced by the upstream model; Cost may be absent.
type Activity struct {
	Time     string `json:"time"`
	Place    string `json:"place"`
	Activity string `json:"activity"`
	Cost     string `json:"cost,omitempty"`
}

// DayPlan is one day's ordered list of activities within a package.
// Day is a 1-based sequence number; Date is optional free text in
// "YYYY-MM-DD" form as emitted by the model.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"`
	Activities []Activity `json:"activities"`
}

// Package is one complete candidate itinerary.
//
// TotalCostEstimate and the accommodation values are deliberately untyped
// text: the upstream model emits human-readable amounts ("$500") and the
// system performs no numeric computation on them.
type Package struct {
	PackageID         string         `json:"package_id"`
	Title             string         `json:"title"`
	Days              []DayPlan      `json:"days"`
	TotalCostEstimate string         `json:"total_cost_estimate,omitempty"`
	Accommodation     map[string]any `json:"accommodation,omitempty"`
	LocalTransport    []string       `json:"local_transport,omitempty"`
	VisaRequired      bool           `json:"visa_required"`
	Notes             string         `json:"notes,omitempty"`
}

// PackageResponse is the exact shape the generation pipeline must produce:
// an ordered list of candidate packages.
type PackageResponse struct {
	Packages []Package `json:"packages"`
}

// PromptRequest asks for packages generated from unstructured free text.
type PromptRequest struct {
	UserID string `json:"user_id"`
	Prompt string `json:"prompt"`
}

// FilterRequest asks for packages generated from structured trip parameters.
// TravelType defaults to "flexible" when empty.
type FilterRequest struct {
	UserID      string `json:"user_id"`
	FromDate    Date   `json:"from_date"`
	ToDate      Date   `json:"to_date"`
	Destination string `json:"destination"`
	Budget      string `json:"budget"`
	TravelType  string `json:"travel_type"`
}

// SaveItineraryRequest stores one chosen package for a user.
type SaveItineraryRequest struct {
	UserID          string  `json:"user_id"`
	SelectedPackage Package `json:"selected_package"`
}

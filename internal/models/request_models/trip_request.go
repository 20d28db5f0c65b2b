package request_models

// CreateTripRequest is the trip submission payload. Budget defaults to
// "medium" and currency to "INR" when omitted; dates are YYYY-MM-DD.
type CreateTripRequest struct {
	Destination string   `json:"destination"`
	Budget      string   `json:"budget"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Interests   []string `json:"interests"`
	Currency    string   `json:"currency"`
}

// UpdateTripRequest carries explicit field updates. Nil pointers leave
// the stored value untouched. The itinerary itself is not patchable.
type UpdateTripRequest struct {
	Destination *string   `json:"destination"`
	Budget      *string   `json:"budget"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	Interests   *[]string `json:"interests"`
	Currency    *string   `json:"currency"`
}

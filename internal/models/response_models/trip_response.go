package response_models

// Photo is one gallery entry with its Unsplash attribution.
type Photo struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	AltDescription string `json:"alt_description"`
	AuthorName     string `json:"author_name"`
}

// TripDetailResponse is the joined result of the photo search and the
// itinerary generation. SaveAllowed is false on the regeneration path.
type TripDetailResponse struct {
	Destination  string  `json:"destination"`
	Days         int     `json:"days"`
	Budget       string  `json:"budget"`
	TravelWith   string  `json:"travel_with"`
	Photos       []Photo `json:"photos"`
	TripPlan     string  `json:"trip_plan"`      // raw markdown as returned by the model
	TripPlanHTML string  `json:"trip_plan_html"` // sanitized rendering of TripPlan
	SaveAllowed  bool    `json:"save_allowed"`
}

type TripResponse struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      string   `json:"budget"`
	TravelWith  string   `json:"travel_with"`
	TripPlan    string   `json:"trip_plan"`
	PhotoURLs   []string `json:"photo_urls,omitempty"`
	CreatedAt   int64    `json:"created_at"`
}

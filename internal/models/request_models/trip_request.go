package request_models

// Budget tiers and companion categories offered by the trip form. The label
// strings are what gets flattened into a saved trip.
const (
	BudgetCheap    = "Cheap"
	BudgetModerate = "Moderate"
	BudgetLuxury   = "Luxury"

	TravelSolo    = "Solo"
	TravelCouple  = "Couple"
	TravelFamily  = "Family"
	TravelFriends = "Friends"
)

type GenerateTripRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
	Budget      string `json:"budget" binding:"required,oneof=Cheap Moderate Luxury"`
	TravelWith  string `json:"travel_with" binding:"required,oneof=Solo Couple Family Friends"`
}

type SaveTripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1,max=30"`
	Budget      string   `json:"budget" binding:"required,oneof=Cheap Moderate Luxury"`
	TravelWith  string   `json:"travel_with" binding:"required,oneof=Solo Couple Family Friends"`
	TripPlan    string   `json:"trip_plan" binding:"required"`
	PhotoURLs   []string `json:"photo_urls"`
}

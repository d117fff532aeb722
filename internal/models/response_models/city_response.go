package response_models

import "fmt"

type CitySuggestion struct {
	ID      int    `json:"id"`
	City    string `json:"city"`
	Country string `json:"country"`
	Label   string `json:"label"` // canonical "City, Country" form
}

func NewCitySuggestion(id int, city, country string) CitySuggestion {
	return CitySuggestion{
		ID:      id,
		City:    city,
		Country: country,
		Label:   fmt.Sprintf("%s, %s", city, country),
	}
}

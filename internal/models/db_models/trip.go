package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Trip is a saved itinerary. Records are write-once: regeneration creates a
// new row instead of amending an existing one.
type Trip struct {
	BaseModel
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Destination string         `gorm:"not null"`
	Days        int            `gorm:"not null"`
	Budget      string         `gorm:"not null"`
	TravelWith  string         `gorm:"not null"`
	TripPlan    string         `gorm:"type:text;not null"`
	PhotoURLs   pq.StringArray `gorm:"type:text[]"`
}

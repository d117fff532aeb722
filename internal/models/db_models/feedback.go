package db_models

// Feedback is append-only; there is no edit or delete path.
type Feedback struct {
	BaseModel
	UserID      string `gorm:"not null;default:'anonymous'"` // account id or the anonymous marker
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Rating      int    `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Feedback    string `gorm:"type:text;not null"`
	Suggestions string `gorm:"type:text"`
}

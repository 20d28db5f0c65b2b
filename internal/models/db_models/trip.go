package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Trip is one persisted itinerary. Days (and activities within a day)
// carry an explicit order column so the chronological order produced by
// generation survives storage.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	Budget      string         `gorm:"size:16"`
	StartDate   string         `gorm:"size:10"` // YYYY-MM-DD
	EndDate     string         `gorm:"size:10"`
	Interests   pq.StringArray `gorm:"type:text[]"`
	Currency    string         `gorm:"size:8"`
	ShareID     string         `gorm:"uniqueIndex;size:32"`

	Days []TripDay `gorm:"constraint:OnDelete:CASCADE"`
}

type TripDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index"`
	Date      string    `gorm:"size:10"`
	DayNumber int

	Activities []TripActivity `gorm:"constraint:OnDelete:CASCADE"`
}

// TripActivity holds the generation-time fields plus the optional
// enrichment fields. Enrichment never rewrites a generation field, it
// only fills the nullable columns.
type TripActivity struct {
	BaseModel
	TripDayID uuid.UUID `gorm:"type:uuid;index"`
	Position  int

	Time          string `gorm:"size:5"` // HH:MM
	Title         string
	Description   string
	Category      string `gorm:"size:32"`
	SuggestedArea string

	PlaceID    *string
	Address    *string
	Lat        *float64
	Lng        *float64
	Rating     *float64
	PriceLevel *int
	ImageURL   *string
}

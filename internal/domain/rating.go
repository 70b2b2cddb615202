package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a user-submitted score and optional comment tied to an office.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	OfficeID  uuid.UUID `json:"office_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRating creates a new Rating for the given office.
// It generates the rating ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewRating(officeID uuid.UUID, score int, comment string) (*Rating, error) {
	rating := &Rating{
		ID:        uuid.New(),
		OfficeID:  officeID,
		Score:     score,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := rating.Validate(); err != nil {
		return nil, err
	}

	return rating, nil
}

// Validate checks the Rating invariants.
func (r *Rating) Validate() error {
	if r.OfficeID == uuid.Nil {
		return ErrEmptyRatingOfficeID
	}
	if r.Score < 0 || r.Score > 5 {
		return ErrInvalidScore
	}
	if len(r.Comment) > 500 {
		return ErrCommentTooLong
	}
	return nil
}

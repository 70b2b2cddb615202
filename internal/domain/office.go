package domain

import (
	"time"

	"github.com/google/uuid"
)

// Office represents a rentable workspace. It is the aggregate root for its
// add-on services: removing an office removes its services and ratings.
type Office struct {
	ID          uuid.UUID       `json:"id"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Capacity    int             `json:"capacity"`
	CostPerDay  int             `json:"cost_per_day"`
	Available   bool            `json:"available"`
	IsActive    bool            `json:"is_active"`
	Services    []OfficeService `json:"services"`
	CreatedAt   time.Time       `json:"created_at"`
	ModifiedAt  *time.Time      `json:"modified_at,omitempty"`
	CreatedBy   uuid.UUID       `json:"created_by"`
	UpdatedBy   *uuid.UUID      `json:"updated_by,omitempty"`
}

// NewOffice creates a new active Office attributed to the given actor.
// It generates the office ID and sets the creation timestamp.
// Returns an error if any invariant fails.
func NewOffice(
	location, description, imageURL string,
	capacity, costPerDay int,
	available bool,
	actorID uuid.UUID,
) (*Office, error) {
	office := &Office{
		ID:          uuid.New(),
		Location:    location,
		Description: description,
		ImageURL:    imageURL,
		Capacity:    capacity,
		CostPerDay:  costPerDay,
		Available:   available,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   actorID,
	}

	if err := office.Validate(); err != nil {
		return nil, err
	}

	return office, nil
}

// Validate checks the Office invariants.
// Returns an error if any field fails validation.
func (o *Office) Validate() error {
	if o.ID == uuid.Nil {
		return ErrEmptyOfficeID
	}
	if o.Location == "" {
		return ErrEmptyLocation
	}
	if len(o.Location) > 200 {
		return ErrLocationTooLong
	}
	if o.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if o.Capacity > 1000 {
		return ErrCapacityTooLarge
	}
	if o.CostPerDay <= 0 {
		return ErrInvalidCostPerDay
	}
	if o.CostPerDay >= 100000 {
		return ErrCostPerDayTooLarge
	}
	return nil
}

// AttachService adds an add-on service owned by this office.
// Returns an error if the service data is invalid.
func (o *Office) AttachService(name, description string, cost int) error {
	svc, err := NewOfficeService(o.ID, name, description, cost)
	if err != nil {
		return err
	}
	o.Services = append(o.Services, *svc)
	return nil
}

// ApplyUpdate overwrites the mutable office fields and stamps the
// modification metadata. Temporal edit rules are enforced by the
// command service before this is called.
func (o *Office) ApplyUpdate(
	location, description, imageURL string,
	capacity, costPerDay int,
	available bool,
	actorID uuid.UUID,
) error {
	prev := *o

	o.Location = location
	o.Description = description
	o.ImageURL = imageURL
	o.Capacity = capacity
	o.CostPerDay = costPerDay
	o.Available = available

	if err := o.Validate(); err != nil {
		*o = prev
		return err
	}

	now := time.Now().UTC()
	o.ModifiedAt = &now
	o.UpdatedBy = &actorID
	return nil
}

// Deactivate soft-deletes the office. Inactive is a terminal state;
// there is no transition back.
func (o *Office) Deactivate(actorID uuid.UUID) {
	now := time.Now().UTC()
	o.IsActive = false
	o.ModifiedAt = &now
	o.UpdatedBy = &actorID
}

// LastTouchedAt returns the reference time for the location-change
// cooldown: the last modification time, or the creation time when the
// office has never been modified.
func (o *Office) LastTouchedAt() time.Time {
	if o.ModifiedAt != nil {
		return *o.ModifiedAt
	}
	return o.CreatedAt
}

// OfficeService is an add-on amenity owned by exactly one office,
// for example Wi-Fi or parking.
type OfficeService struct {
	ID          uuid.UUID `json:"id"`
	OfficeID    uuid.UUID `json:"office_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewOfficeService creates a new add-on service for the given office.
// Returns an error if validation fails.
func NewOfficeService(officeID uuid.UUID, name, description string, cost int) (*OfficeService, error) {
	svc := &OfficeService{
		ID:          uuid.New(),
		OfficeID:    officeID,
		Name:        name,
		Description: description,
		Cost:        cost,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := svc.Validate(); err != nil {
		return nil, err
	}

	return svc, nil
}

// Validate checks the OfficeService invariants.
func (s *OfficeService) Validate() error {
	if s.OfficeID == uuid.Nil {
		return ErrEmptyOfficeID
	}
	if s.Name == "" {
		return ErrEmptyServiceName
	}
	if len(s.Name) > 100 {
		return ErrServiceNameTooLong
	}
	if s.Cost < 0 {
		return ErrNegativeServiceCost
	}
	return nil
}

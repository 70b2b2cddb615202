package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// UserRole identifies what a user does on the platform.
type UserRole int

// Defined user roles.
const (
	RoleSeeker UserRole = 1
	RoleLessor UserRole = 2
)

// IsValid reports whether the role is one of the defined enum values.
func (r UserRole) IsValid() bool {
	return r == RoleSeeker || r == RoleLessor
}

// String returns the role name for logging and token claims.
func (r UserRole) String() string {
	switch r {
	case RoleSeeker:
		return "Seeker"
	case RoleLessor:
		return "Lessor"
	default:
		return "Unknown"
	}
}

var (
	phoneNumberRe = regexp.MustCompile(`^\d{9}$`)
	emailRe       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// User represents a registered account, either a seeker looking for an
// office or a lessor renting one out. The password is stored only as a
// bcrypt hash; plaintext never reaches this struct.
type User struct {
	ID             uuid.UUID  `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Dni            string     `json:"dni"`
	PhoneNumber    string     `json:"phone_number"`
	Email          string     `json:"email"`
	Role           UserRole   `json:"role"`
	HashedPassword string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	ModifiedAt     *time.Time `json:"modified_at,omitempty"`
}

// NewUser creates a new User with an already-hashed password.
// It generates the user ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewUser(
	firstName, lastName, dni, phoneNumber, email string,
	role UserRole,
	hashedPassword string,
) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		FirstName:      firstName,
		LastName:       lastName,
		Dni:            dni,
		PhoneNumber:    phoneNumber,
		Email:          email,
		Role:           role,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User invariants.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if u.LastName == "" {
		return ErrEmptyLastName
	}
	if len(u.FirstName) > 100 || len(u.LastName) > 100 {
		return ErrNameTooLong
	}
	if len(u.Dni) != 8 {
		return ErrInvalidDni
	}
	if !phoneNumberRe.MatchString(u.PhoneNumber) {
		return ErrInvalidPhoneNumber
	}
	if !emailRe.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// FullName returns the display name used in token claims.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ApplyUpdate overwrites the mutable user fields and stamps the
// modification time. The name-change cooldown and uniqueness checks are
// enforced by the command service before this is called.
func (u *User) ApplyUpdate(firstName, lastName, phoneNumber, email string) error {
	prev := *u

	u.FirstName = firstName
	u.LastName = lastName
	u.PhoneNumber = phoneNumber
	u.Email = email

	if err := u.Validate(); err != nil {
		*u = prev
		return err
	}

	now := time.Now().UTC()
	u.ModifiedAt = &now
	return nil
}

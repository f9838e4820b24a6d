// Package profile validates and normalizes role-bearing user profiles.
package profile

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
)

const (
	maxFullNameLength = 64
	maxBioLength      = 280
)

// Role describes the platform role attached to a profile.
//
// RoleUnknown is a deliberate state: a viewer whose profile is missing or
// unreadable must never be silently treated as a patient.
type Role string

const (
	RoleUnknown Role = ""
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ParseRole maps stored or user-supplied role strings onto the tagged variant.
func ParseRole(value string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(RoleDoctor):
		return RoleDoctor, true
	case string(RolePatient):
		return RolePatient, true
	default:
		return RoleUnknown, false
	}
}

// String returns the persisted role value.
func (r Role) String() string {
	return string(r)
}

var (
	// ErrEmptyFullName indicates a missing display name.
	ErrEmptyFullName = apperrors.New(apperrors.CodeProfileNameEmpty, "full name is required")
	// ErrInvalidRole indicates a role outside the doctor/patient set.
	ErrInvalidRole = apperrors.New(apperrors.CodeProfileInvalidRole, "role must be doctor or patient")
)

// Profile is the public, role-bearing record describing one identity.
type Profile struct {
	UserID            string
	FullName          string
	Role              Role
	Specialization    string
	YearsOfExperience int
	Bio               string
	AvatarURL         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateProfileInput describes the metadata collected at sign-up.
type CreateProfileInput struct {
	UserID            string
	FullName          string
	Role              string
	Specialization    string
	YearsOfExperience int
	Bio               string
	AvatarURL         string
}

// NewProfile normalizes and validates sign-up input into a durable profile.
//
// The role is set exactly once here; this system offers no later role change.
// Doctor-only attributes are dropped for patients, mirroring the sign-up form.
func NewProfile(input CreateProfileInput, now func() time.Time) (Profile, error) {
	if now == nil {
		now = time.Now
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return Profile{}, apperrors.New(apperrors.CodeUnknown, "user id is required")
	}

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return Profile{}, ErrEmptyFullName
	}
	if utf8.RuneCountInString(fullName) > maxFullNameLength {
		return Profile{}, apperrors.WithMetadata(
			apperrors.CodeProfileNameEmpty,
			"full name is too long",
			map[string]string{"Max": "64"},
		)
	}

	role, ok := ParseRole(input.Role)
	if !ok {
		return Profile{}, ErrInvalidRole
	}

	bio := strings.TrimSpace(input.Bio)
	if utf8.RuneCountInString(bio) > maxBioLength {
		bio = string([]rune(bio)[:maxBioLength])
	}

	specialization := strings.TrimSpace(input.Specialization)
	years := input.YearsOfExperience
	if role != RoleDoctor {
		specialization = ""
		years = 0
	}
	if years < 0 {
		years = 0
	}

	createdAt := now().UTC()
	return Profile{
		UserID:            userID,
		FullName:          fullName,
		Role:              role,
		Specialization:    specialization,
		YearsOfExperience: years,
		Bio:               bio,
		AvatarURL:         strings.TrimSpace(input.AvatarURL),
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}, nil
}

// DisplayName returns the profile name with the doctor honorific applied.
func (p Profile) DisplayName() string {
	if p.Role == RoleDoctor {
		return "Dr. " + p.FullName
	}
	return p.FullName
}

// Initials returns a short avatar fallback derived from the full name.
func Initials(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "?"
	}
	first := []rune(fields[0])
	if len(fields) == 1 {
		return strings.ToUpper(string(first[0]))
	}
	last := []rune(fields[len(fields)-1])
	return strings.ToUpper(string(first[0]) + string(last[0]))
}

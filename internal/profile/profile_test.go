package profile

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{"doctor", RoleDoctor, true},
		{"patient", RolePatient, true},
		{" Doctor ", RoleDoctor, true},
		{"PATIENT", RolePatient, true},
		{"", RoleUnknown, false},
		{"nurse", RoleUnknown, false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNewProfileDoctorKeepsSpecialization(t *testing.T) {
	got, err := NewProfile(CreateProfileInput{
		UserID:            "user-1",
		FullName:          "  Alice Chen  ",
		Role:              "doctor",
		Specialization:    "Cardiology",
		YearsOfExperience: 12,
		Bio:               "Care first.",
	}, fixedNow)
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	if got.FullName != "Alice Chen" {
		t.Fatalf("FullName = %q, want %q", got.FullName, "Alice Chen")
	}
	if got.Role != RoleDoctor {
		t.Fatalf("Role = %q, want %q", got.Role, RoleDoctor)
	}
	if got.Specialization != "Cardiology" {
		t.Fatalf("Specialization = %q, want %q", got.Specialization, "Cardiology")
	}
	if got.YearsOfExperience != 12 {
		t.Fatalf("YearsOfExperience = %d, want 12", got.YearsOfExperience)
	}
	if !got.CreatedAt.Equal(fixedNow()) || !got.UpdatedAt.Equal(fixedNow()) {
		t.Fatalf("timestamps = %v/%v, want %v", got.CreatedAt, got.UpdatedAt, fixedNow())
	}
}

func TestNewProfilePatientDropsDoctorFields(t *testing.T) {
	got, err := NewProfile(CreateProfileInput{
		UserID:            "user-2",
		FullName:          "Bob Ortiz",
		Role:              "patient",
		Specialization:    "Cardiology",
		YearsOfExperience: 3,
	}, fixedNow)
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	if got.Specialization != "" {
		t.Fatalf("Specialization = %q, want empty for patient", got.Specialization)
	}
	if got.YearsOfExperience != 0 {
		t.Fatalf("YearsOfExperience = %d, want 0 for patient", got.YearsOfExperience)
	}
}

func TestNewProfileRejectsEmptyName(t *testing.T) {
	_, err := NewProfile(CreateProfileInput{UserID: "user-3", FullName: "   ", Role: "patient"}, fixedNow)
	if !errors.Is(err, ErrEmptyFullName) {
		t.Fatalf("err = %v, want ErrEmptyFullName", err)
	}
}

func TestNewProfileRejectsUnknownRole(t *testing.T) {
	_, err := NewProfile(CreateProfileInput{UserID: "user-4", FullName: "Cara", Role: "admin"}, fixedNow)
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestNewProfileTruncatesLongBio(t *testing.T) {
	got, err := NewProfile(CreateProfileInput{
		UserID:   "user-5",
		FullName: "Dana",
		Role:     "patient",
		Bio:      strings.Repeat("x", 400),
	}, fixedNow)
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	if len(got.Bio) != 280 {
		t.Fatalf("bio length = %d, want 280", len(got.Bio))
	}
}

func TestDisplayNameHonorific(t *testing.T) {
	doctor := Profile{FullName: "Alice Chen", Role: RoleDoctor}
	if got := doctor.DisplayName(); got != "Dr. Alice Chen" {
		t.Fatalf("DisplayName = %q, want %q", got, "Dr. Alice Chen")
	}
	patient := Profile{FullName: "Bob Ortiz", Role: RolePatient}
	if got := patient.DisplayName(); got != "Bob Ortiz" {
		t.Fatalf("DisplayName = %q, want %q", got, "Bob Ortiz")
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice Chen", "AC"},
		{"Maria da Silva", "MS"},
		{"bo", "B"},
		{"x", "X"},
		{"  ", "?"},
	}
	for _, tc := range cases {
		if got := Initials(tc.in); got != tc.want {
			t.Fatalf("Initials(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package models

import (
	"strings"
	"time"
)

// listSeparator joins set-like list fields (interests, preferred languages)
// into the single string column the users table stores them in.
const listSeparator = ","

// User represents a registered account together with its travel profile.
// It is the persistence-layer shape of the "users" table; sensitive fields
// (PasswordHash) must never cross the HTTP boundary.
type User struct {
	// UserID is the canonical string identity of the account.
	// It is derived from the email at registration time and used as the
	// primary key for every lookup.
	UserID string `json:"user_id"`

	// Username is a unique display handle. The registration flow sets it
	// to the email; profile updates may not change it.
	Username string `json:"username"`

	// Email is the unique contact address used for login.
	Email string `json:"email"`

	Name               string `json:"name"`
	Nationality        string `json:"nationality"`
	CountryOfResidence string `json:"country_of_residence"`
	PassportNumber     string `json:"passport_number"`
	PassportExpiry     *Date  `json:"passport_expiry,omitempty"`
	HasVisa            bool   `json:"has_visa"`
	VisaExpiry         *Date  `json:"visa_expiry,omitempty"`

	// TravelPersona describes the user's travel style
	// (e.g. "relaxed", "adventurous"). Defaults to "flexible".
	TravelPersona string `json:"travel_persona"`

	// Interests and PreferredLanguages are stored comma-joined; use
	// Profile and ApplyProfile to convert to and from list form.
	Interests          string `json:"-"`
	PreferredLanguages string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserProfile is the API-boundary view of a user: the User row minus auth
// fields, with the set-like columns expanded into true lists.
type UserProfile struct {
	UserID             string   `json:"user_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Nationality        string   `json:"nationality"`
	CountryOfResidence string   `json:"country_of_residence"`
	PassportNumber     string   `json:"passport_number"`
	PassportExpiry     *Date    `json:"passport_expiry,omitempty"`
	HasVisa            bool     `json:"has_visa"`
	VisaExpiry         *Date    `json:"visa_expiry,omitempty"`
	TravelPersona      string   `json:"travel_persona"`
	Interests          []string `json:"interests"`
	PreferredLanguages []string `json:"preferred_languages"`
}

// Profile converts the persisted user row into its API-boundary profile view.
func (u User) Profile() UserProfile {
	return UserProfile{
		UserID:             u.UserID,
		Name:               u.Name,
		Email:              u.Email,
		Nationality:        u.Nationality,
		CountryOfResidence: u.CountryOfResidence,
		PassportNumber:     u.PassportNumber,
		PassportExpiry:     u.PassportExpiry,
		HasVisa:            u.HasVisa,
		VisaExpiry:         u.VisaExpiry,
		TravelPersona:      u.TravelPersona,
		Interests:          SplitList(u.Interests),
		PreferredLanguages: SplitList(u.PreferredLanguages),
	}
}

// ApplyProfile copies the profile fields onto the user row, joining the list
// fields back into their column form. Identity and auth fields are untouched.
func (u *User) ApplyProfile(p UserProfile) {
	u.Name = p.Name
	u.Nationality = p.Nationality
	u.CountryOfResidence = p.CountryOfResidence
	u.PassportNumber = p.PassportNumber
	u.PassportExpiry = p.PassportExpiry
	u.HasVisa = p.HasVisa
	u.VisaExpiry = p.VisaExpiry
	u.TravelPersona = p.TravelPersona
	u.Interests = JoinList(p.Interests)
	u.PreferredLanguages = JoinList(p.PreferredLanguages)
}

// JoinList joins list values into the comma-separated column form.
// The conversion is reversible for values that do not contain the separator.
func JoinList(values []string) string {
	return strings.Join(values, listSeparator)
}

// SplitList expands a comma-joined column value back into a list.
// An empty column yields an empty (non-nil) list.
func SplitList(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, listSeparator)
}

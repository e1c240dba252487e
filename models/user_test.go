package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinSplitList_RoundTrip(t *testing.T) {
	values := []string{"hiking", "food", "museums"}

	joined := JoinList(values)
	assert.Equal(t, "hiking,food,museums", joined)
	assert.Equal(t, values, SplitList(joined))
}

func TestSplitList_Empty(t *testing.T) {
	got := SplitList("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestJoinList_Empty(t *testing.T) {
	assert.Equal(t, "", JoinList(nil))
	assert.Equal(t, "", JoinList([]string{}))
}

func TestUser_ProfileProjection(t *testing.T) {
	expiry := NewDate(2030, time.June, 15)
	user := User{
		UserID:             "alice@example.com",
		Username:           "alice@example.com",
		Email:              "alice@example.com",
		Name:               "Alice",
		Nationality:        "Portuguese",
		CountryOfResidence: "Portugal",
		PassportNumber:     "P1234567",
		PassportExpiry:     &expiry,
		HasVisa:            true,
		TravelPersona:      "luxury",
		Interests:          "museums,food",
		PreferredLanguages: "pt,en",
		PasswordHash:       "bcrypt-hash",
	}

	profile := user.Profile()

	assert.Equal(t, "alice@example.com", profile.UserID)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, []string{"museums", "food"}, profile.Interests)
	assert.Equal(t, []string{"pt", "en"}, profile.PreferredLanguages)
	require.NotNil(t, profile.PassportExpiry)
	assert.Equal(t, "2030-06-15", profile.PassportExpiry.String())
}

func TestUser_ApplyProfile(t *testing.T) {
	user := User{
		UserID:       "alice@example.com",
		Username:     "alice@example.com",
		Email:        "alice@example.com",
		PasswordHash: "bcrypt-hash",
		CreatedAt:    time.Now(),
	}

	user.ApplyProfile(UserProfile{
		UserID:        "spoofed@example.com",
		Name:          "Alice",
		Nationality:   "Portuguese",
		TravelPersona: "adventure",
		Interests:     []string{"surf"},
	})

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "adventure", user.TravelPersona)
	assert.Equal(t, "surf", user.Interests)

	// identity and credentials are never touched by a profile write
	assert.Equal(t, "alice@example.com", user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "bcrypt-hash", user.PasswordHash)
}

func TestUser_TableName(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
}

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/moizlokhandwala/aitravelagent/models"
)

// userColumns lists every column of the users table in scan order.
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"name",
	"nationality",
	"country_of_residence",
	"passport_number",
	"passport_expiry",
	"has_visa",
	"visa_expiry",
	"travel_persona",
	"interests",
	"preferred_languages",
	"password_hash",
	"created_at",
}

// psql is the shared statement builder. Dollar placeholders are understood by
// both the pgx and sqlite3 drivers.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertUser(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns(
			"user_id", "username", "email", "name", "nationality",
			"country_of_residence", "passport_number", "passport_expiry",
			"has_visa", "visa_expiry", "travel_persona", "interests",
			"preferred_languages", "password_hash",
		).
		Values(
			user.UserID, user.Username, user.Email, user.Name, user.Nationality,
			user.CountryOfResidence, user.PassportNumber, dateValue(user.PassportExpiry),
			user.HasVisa, dateValue(user.VisaExpiry), user.TravelPersona, user.Interests,
			user.PreferredLanguages, user.PasswordHash,
		).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildSelectUserByEmail(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByID(userID string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateProfile(user models.User) (string, []any, error) {
	return psql.
		Update(user.TableName()).
		Set("name", user.Name).
		Set("nationality", user.Nationality).
		Set("country_of_residence", user.CountryOfResidence).
		Set("passport_number", user.PassportNumber).
		Set("passport_expiry", dateValue(user.PassportExpiry)).
		Set("has_visa", user.HasVisa).
		Set("visa_expiry", dateValue(user.VisaExpiry)).
		Set("travel_persona", user.TravelPersona).
		Set("interests", user.Interests).
		Set("preferred_languages", user.PreferredLanguages).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
}

// dateValue converts an optional date into its driver representation,
// mapping nil onto SQL NULL.
func dateValue(d *models.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time
}

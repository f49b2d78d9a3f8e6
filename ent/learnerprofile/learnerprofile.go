// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerprofile type in the database.
	Label = "learner_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWeakDomains holds the string denoting the weak_domains field in the database.
	FieldWeakDomains = "weak_domains"
	// FieldStrengthDomains holds the string denoting the strength_domains field in the database.
	FieldStrengthDomains = "strength_domains"
	// FieldDailyMinutes holds the string denoting the daily_minutes field in the database.
	FieldDailyMinutes = "daily_minutes"
	// FieldScoreLow holds the string denoting the score_low field in the database.
	FieldScoreLow = "score_low"
	// FieldScoreHigh holds the string denoting the score_high field in the database.
	FieldScoreHigh = "score_high"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnerprofile in the database.
	Table = "learner_profiles"
)

// Columns holds all SQL columns for learnerprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldWeakDomains,
	FieldStrengthDomains,
	FieldDailyMinutes,
	FieldScoreLow,
	FieldScoreHigh,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultDailyMinutes holds the default value on creation for the "daily_minutes" field.
	DefaultDailyMinutes int
	// DefaultScoreLow holds the default value on creation for the "score_low" field.
	DefaultScoreLow int
	// DefaultScoreHigh holds the default value on creation for the "score_high" field.
	DefaultScoreHigh int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDailyMinutes orders the results by the daily_minutes field.
func ByDailyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyMinutes, opts...).ToFunc()
}

// ByScoreLow orders the results by the score_low field.
func ByScoreLow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreLow, opts...).ToFunc()
}

// ByScoreHigh orders the results by the score_high field.
func ByScoreHigh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreHigh, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

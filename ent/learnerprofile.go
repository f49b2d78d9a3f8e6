// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mightyhq/prepcore/ent/learnerprofile"
)

// LearnerProfile is the model entity for the LearnerProfile schema.
type LearnerProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque user identifier
	UserID string `json:"user_id,omitempty"`
	// Weakest domains first
	WeakDomains []string `json:"weak_domains,omitempty"`
	// Strongest domains first
	StrengthDomains []string `json:"strength_domains,omitempty"`
	// Recommended daily study time
	DailyMinutes int `json:"daily_minutes,omitempty"`
	// Low end of the estimated score range
	ScoreLow int `json:"score_low,omitempty"`
	// High end of the estimated score range
	ScoreHigh int `json:"score_high,omitempty"`
	// Last diagnostic run
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldWeakDomains, learnerprofile.FieldStrengthDomains:
			values[i] = new([]byte)
		case learnerprofile.FieldID, learnerprofile.FieldDailyMinutes, learnerprofile.FieldScoreLow, learnerprofile.FieldScoreHigh:
			values[i] = new(sql.NullInt64)
		case learnerprofile.FieldUserID:
			values[i] = new(sql.NullString)
		case learnerprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerProfile fields.
func (_m *LearnerProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerprofile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learnerprofile.FieldWeakDomains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_domains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakDomains); err != nil {
					return fmt.Errorf("unmarshal field weak_domains: %w", err)
				}
			}
		case learnerprofile.FieldStrengthDomains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strength_domains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StrengthDomains); err != nil {
					return fmt.Errorf("unmarshal field strength_domains: %w", err)
				}
			}
		case learnerprofile.FieldDailyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_minutes", values[i])
			} else if value.Valid {
				_m.DailyMinutes = int(value.Int64)
			}
		case learnerprofile.FieldScoreLow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_low", values[i])
			} else if value.Valid {
				_m.ScoreLow = int(value.Int64)
			}
		case learnerprofile.FieldScoreHigh:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_high", values[i])
			} else if value.Valid {
				_m.ScoreHigh = int(value.Int64)
			}
		case learnerprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerProfile.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerProfile.
// Note that you need to call LearnerProfile.Unwrap() before calling this method if this LearnerProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerProfile) Update() *LearnerProfileUpdateOne {
	return NewLearnerProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerProfile) Unwrap() *LearnerProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerProfile) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("weak_domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakDomains))
	builder.WriteString(", ")
	builder.WriteString("strength_domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrengthDomains))
	builder.WriteString(", ")
	builder.WriteString("daily_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyMinutes))
	builder.WriteString(", ")
	builder.WriteString("score_low=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreLow))
	builder.WriteString(", ")
	builder.WriteString("score_high=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreHigh))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerProfiles is a parsable slice of LearnerProfile.
type LearnerProfiles []*LearnerProfile

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mightyhq/prepcore/ent/schema"
	"github.com/mightyhq/prepcore/ent/stressrecord"
)

// StressRecord is the model entity for the StressRecord schema.
type StressRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque user identifier from the auth layer
	UserID string `json:"user_id,omitempty"`
	// Subject the topic belongs to, e.g. sat-math
	SubjectID string `json:"subject_id,omitempty"`
	// Topic the score tracks, e.g. linear-equations
	TopicID string `json:"topic_id,omitempty"`
	// Current stress score, clamped to [0, 100]
	Level float64 `json:"level,omitempty"`
	// Time of the last mutation; drives decay
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// Most recent events, capped at 50 entries
	Events       []schema.StressEventEntry `json:"events,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StressRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stressrecord.FieldEvents:
			values[i] = new([]byte)
		case stressrecord.FieldLevel:
			values[i] = new(sql.NullFloat64)
		case stressrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case stressrecord.FieldUserID, stressrecord.FieldSubjectID, stressrecord.FieldTopicID:
			values[i] = new(sql.NullString)
		case stressrecord.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StressRecord fields.
func (_m *StressRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stressrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stressrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case stressrecord.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case stressrecord.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case stressrecord.FieldLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.Float64
			}
		case stressrecord.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		case stressrecord.FieldEvents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field events", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Events); err != nil {
					return fmt.Errorf("unmarshal field events: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StressRecord.
// This includes values selected through modifiers, order, etc.
func (_m *StressRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StressRecord.
// Note that you need to call StressRecord.Unwrap() before calling this method if this StressRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StressRecord) Update() *StressRecordUpdateOne {
	return NewStressRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StressRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StressRecord) Unwrap() *StressRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StressRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StressRecord) String() string {
	var builder strings.Builder
	builder.WriteString("StressRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("events=")
	builder.WriteString(fmt.Sprintf("%v", _m.Events))
	builder.WriteByte(')')
	return builder.String()
}

// StressRecords is a parsable slice of StressRecord.
type StressRecords []*StressRecord

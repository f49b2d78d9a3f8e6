// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mightyhq/prepcore/ent/dailyplan"
	"github.com/mightyhq/prepcore/ent/schema"
)

// DailyPlan is the model entity for the DailyPlan schema.
type DailyPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID exposed to callers
	PlanID string `json:"plan_id,omitempty"`
	// Opaque user identifier
	UserID string `json:"user_id,omitempty"`
	// Calendar day in the clock's locale, formatted 2006-01-02
	PlanDate string `json:"plan_date,omitempty"`
	// Up to three activities: warmup, core_focus, boost
	Activities []schema.ActivityEntry `json:"activities,omitempty"`
	// True iff every activity is completed
	Completed bool `json:"completed,omitempty"`
	// Set when completed flips to true
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailyplan.FieldActivities:
			values[i] = new([]byte)
		case dailyplan.FieldCompleted:
			values[i] = new(sql.NullBool)
		case dailyplan.FieldID:
			values[i] = new(sql.NullInt64)
		case dailyplan.FieldPlanID, dailyplan.FieldUserID, dailyplan.FieldPlanDate:
			values[i] = new(sql.NullString)
		case dailyplan.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyPlan fields.
func (_m *DailyPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailyplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailyplan.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case dailyplan.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case dailyplan.FieldPlanDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_date", values[i])
			} else if value.Valid {
				_m.PlanDate = value.String
			}
		case dailyplan.FieldActivities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field activities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Activities); err != nil {
					return fmt.Errorf("unmarshal field activities: %w", err)
				}
			}
		case dailyplan.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case dailyplan.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyPlan.
// This includes values selected through modifiers, order, etc.
func (_m *DailyPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyPlan.
// Note that you need to call DailyPlan.Unwrap() before calling this method if this DailyPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyPlan) Update() *DailyPlanUpdateOne {
	return NewDailyPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyPlan) Unwrap() *DailyPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyPlan) String() string {
	var builder strings.Builder
	builder.WriteString("DailyPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("plan_date=")
	builder.WriteString(_m.PlanDate)
	builder.WriteString(", ")
	builder.WriteString("activities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activities))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DailyPlans is a parsable slice of DailyPlan.
type DailyPlans []*DailyPlan

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DailyPlan is the predicate function for dailyplan builders.
type DailyPlan func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearnerProfile is the predicate function for learnerprofile builders.
type LearnerProfile func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// StressRecord is the predicate function for stressrecord builders.
type StressRecord func(*sql.Selector)

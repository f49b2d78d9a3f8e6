// Code generated by ent, DO NOT EDIT.

package dailyplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mightyhq/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldPlanID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldUserID, v))
}

// PlanDate applies equality check predicate on the "plan_date" field. It's identical to PlanDateEQ.
func PlanDate(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldPlanDate, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldCompleted, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldCompletedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldContainsFold(FieldPlanID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldContainsFold(FieldUserID, v))
}

// PlanDateEQ applies the EQ predicate on the "plan_date" field.
func PlanDateEQ(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldPlanDate, v))
}

// PlanDateNEQ applies the NEQ predicate on the "plan_date" field.
func PlanDateNEQ(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNEQ(FieldPlanDate, v))
}

// PlanDateIn applies the In predicate on the "plan_date" field.
func PlanDateIn(vs ...string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldIn(FieldPlanDate, vs...))
}

// PlanDateNotIn applies the NotIn predicate on the "plan_date" field.
func PlanDateNotIn(vs ...string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNotIn(FieldPlanDate, vs...))
}

// PlanDateGT applies the GT predicate on the "plan_date" field.
func PlanDateGT(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGT(FieldPlanDate, v))
}

// PlanDateGTE applies the GTE predicate on the "plan_date" field.
func PlanDateGTE(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGTE(FieldPlanDate, v))
}

// PlanDateLT applies the LT predicate on the "plan_date" field.
func PlanDateLT(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLT(FieldPlanDate, v))
}

// PlanDateLTE applies the LTE predicate on the "plan_date" field.
func PlanDateLTE(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLTE(FieldPlanDate, v))
}

// PlanDateContains applies the Contains predicate on the "plan_date" field.
func PlanDateContains(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldContains(FieldPlanDate, v))
}

// PlanDateHasPrefix applies the HasPrefix predicate on the "plan_date" field.
func PlanDateHasPrefix(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldHasPrefix(FieldPlanDate, v))
}

// PlanDateHasSuffix applies the HasSuffix predicate on the "plan_date" field.
func PlanDateHasSuffix(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldHasSuffix(FieldPlanDate, v))
}

// PlanDateEqualFold applies the EqualFold predicate on the "plan_date" field.
func PlanDateEqualFold(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEqualFold(FieldPlanDate, v))
}

// PlanDateContainsFold applies the ContainsFold predicate on the "plan_date" field.
func PlanDateContainsFold(v string) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldContainsFold(FieldPlanDate, v))
}

// ActivitiesIsNil applies the IsNil predicate on the "activities" field.
func ActivitiesIsNil() predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldIsNull(FieldActivities))
}

// ActivitiesNotNil applies the NotNil predicate on the "activities" field.
func ActivitiesNotNil() predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNotNull(FieldActivities))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNEQ(FieldCompleted, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DailyPlan {
	return predicate.DailyPlan(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyPlan) predicate.DailyPlan {
	return predicate.DailyPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyPlan) predicate.DailyPlan {
	return predicate.DailyPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyPlan) predicate.DailyPlan {
	return predicate.DailyPlan(sql.NotPredicates(p))
}

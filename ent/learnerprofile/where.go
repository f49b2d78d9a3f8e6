// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mightyhq/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUserID, v))
}

// DailyMinutes applies equality check predicate on the "daily_minutes" field. It's identical to DailyMinutesEQ.
func DailyMinutes(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldDailyMinutes, v))
}

// ScoreLow applies equality check predicate on the "score_low" field. It's identical to ScoreLowEQ.
func ScoreLow(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldScoreLow, v))
}

// ScoreHigh applies equality check predicate on the "score_high" field. It's identical to ScoreHighEQ.
func ScoreHigh(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldScoreHigh, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldUserID, v))
}

// WeakDomainsIsNil applies the IsNil predicate on the "weak_domains" field.
func WeakDomainsIsNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIsNull(FieldWeakDomains))
}

// WeakDomainsNotNil applies the NotNil predicate on the "weak_domains" field.
func WeakDomainsNotNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotNull(FieldWeakDomains))
}

// StrengthDomainsIsNil applies the IsNil predicate on the "strength_domains" field.
func StrengthDomainsIsNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIsNull(FieldStrengthDomains))
}

// StrengthDomainsNotNil applies the NotNil predicate on the "strength_domains" field.
func StrengthDomainsNotNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotNull(FieldStrengthDomains))
}

// DailyMinutesEQ applies the EQ predicate on the "daily_minutes" field.
func DailyMinutesEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldDailyMinutes, v))
}

// DailyMinutesNEQ applies the NEQ predicate on the "daily_minutes" field.
func DailyMinutesNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldDailyMinutes, v))
}

// DailyMinutesIn applies the In predicate on the "daily_minutes" field.
func DailyMinutesIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldDailyMinutes, vs...))
}

// DailyMinutesNotIn applies the NotIn predicate on the "daily_minutes" field.
func DailyMinutesNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldDailyMinutes, vs...))
}

// DailyMinutesGT applies the GT predicate on the "daily_minutes" field.
func DailyMinutesGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldDailyMinutes, v))
}

// DailyMinutesGTE applies the GTE predicate on the "daily_minutes" field.
func DailyMinutesGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldDailyMinutes, v))
}

// DailyMinutesLT applies the LT predicate on the "daily_minutes" field.
func DailyMinutesLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldDailyMinutes, v))
}

// DailyMinutesLTE applies the LTE predicate on the "daily_minutes" field.
func DailyMinutesLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldDailyMinutes, v))
}

// ScoreLowEQ applies the EQ predicate on the "score_low" field.
func ScoreLowEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldScoreLow, v))
}

// ScoreLowNEQ applies the NEQ predicate on the "score_low" field.
func ScoreLowNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldScoreLow, v))
}

// ScoreLowIn applies the In predicate on the "score_low" field.
func ScoreLowIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldScoreLow, vs...))
}

// ScoreLowNotIn applies the NotIn predicate on the "score_low" field.
func ScoreLowNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldScoreLow, vs...))
}

// ScoreLowGT applies the GT predicate on the "score_low" field.
func ScoreLowGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldScoreLow, v))
}

// ScoreLowGTE applies the GTE predicate on the "score_low" field.
func ScoreLowGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldScoreLow, v))
}

// ScoreLowLT applies the LT predicate on the "score_low" field.
func ScoreLowLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldScoreLow, v))
}

// ScoreLowLTE applies the LTE predicate on the "score_low" field.
func ScoreLowLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldScoreLow, v))
}

// ScoreHighEQ applies the EQ predicate on the "score_high" field.
func ScoreHighEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldScoreHigh, v))
}

// ScoreHighNEQ applies the NEQ predicate on the "score_high" field.
func ScoreHighNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldScoreHigh, v))
}

// ScoreHighIn applies the In predicate on the "score_high" field.
func ScoreHighIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldScoreHigh, vs...))
}

// ScoreHighNotIn applies the NotIn predicate on the "score_high" field.
func ScoreHighNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldScoreHigh, vs...))
}

// ScoreHighGT applies the GT predicate on the "score_high" field.
func ScoreHighGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldScoreHigh, v))
}

// ScoreHighGTE applies the GTE predicate on the "score_high" field.
func ScoreHighGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldScoreHigh, v))
}

// ScoreHighLT applies the LT predicate on the "score_high" field.
func ScoreHighLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldScoreHigh, v))
}

// ScoreHighLTE applies the LTE predicate on the "score_high" field.
func ScoreHighLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldScoreHigh, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.NotPredicates(p))
}

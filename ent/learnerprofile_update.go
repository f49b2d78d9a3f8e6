// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mightyhq/prepcore/ent/learnerprofile"
	"github.com/mightyhq/prepcore/ent/predicate"
)

// LearnerProfileUpdate is the builder for updating LearnerProfile entities.
type LearnerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdate) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearnerProfileUpdate) SetUserID(v string) *LearnerProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableUserID(v *string) *LearnerProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWeakDomains sets the "weak_domains" field.
func (_u *LearnerProfileUpdate) SetWeakDomains(v []string) *LearnerProfileUpdate {
	_u.mutation.SetWeakDomains(v)
	return _u
}

// AppendWeakDomains appends value to the "weak_domains" field.
func (_u *LearnerProfileUpdate) AppendWeakDomains(v []string) *LearnerProfileUpdate {
	_u.mutation.AppendWeakDomains(v)
	return _u
}

// ClearWeakDomains clears the value of the "weak_domains" field.
func (_u *LearnerProfileUpdate) ClearWeakDomains() *LearnerProfileUpdate {
	_u.mutation.ClearWeakDomains()
	return _u
}

// SetStrengthDomains sets the "strength_domains" field.
func (_u *LearnerProfileUpdate) SetStrengthDomains(v []string) *LearnerProfileUpdate {
	_u.mutation.SetStrengthDomains(v)
	return _u
}

// AppendStrengthDomains appends value to the "strength_domains" field.
func (_u *LearnerProfileUpdate) AppendStrengthDomains(v []string) *LearnerProfileUpdate {
	_u.mutation.AppendStrengthDomains(v)
	return _u
}

// ClearStrengthDomains clears the value of the "strength_domains" field.
func (_u *LearnerProfileUpdate) ClearStrengthDomains() *LearnerProfileUpdate {
	_u.mutation.ClearStrengthDomains()
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *LearnerProfileUpdate) SetDailyMinutes(v int) *LearnerProfileUpdate {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableDailyMinutes(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *LearnerProfileUpdate) AddDailyMinutes(v int) *LearnerProfileUpdate {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetScoreLow sets the "score_low" field.
func (_u *LearnerProfileUpdate) SetScoreLow(v int) *LearnerProfileUpdate {
	_u.mutation.ResetScoreLow()
	_u.mutation.SetScoreLow(v)
	return _u
}

// SetNillableScoreLow sets the "score_low" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableScoreLow(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetScoreLow(*v)
	}
	return _u
}

// AddScoreLow adds value to the "score_low" field.
func (_u *LearnerProfileUpdate) AddScoreLow(v int) *LearnerProfileUpdate {
	_u.mutation.AddScoreLow(v)
	return _u
}

// SetScoreHigh sets the "score_high" field.
func (_u *LearnerProfileUpdate) SetScoreHigh(v int) *LearnerProfileUpdate {
	_u.mutation.ResetScoreHigh()
	_u.mutation.SetScoreHigh(v)
	return _u
}

// SetNillableScoreHigh sets the "score_high" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableScoreHigh(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetScoreHigh(*v)
	}
	return _u
}

// AddScoreHigh adds value to the "score_high" field.
func (_u *LearnerProfileUpdate) AddScoreHigh(v int) *LearnerProfileUpdate {
	_u.mutation.AddScoreHigh(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdate) SetUpdatedAt(v time.Time) *LearnerProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdate) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerProfileUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learnerprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learnerprofile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakDomains(); ok {
		_spec.SetField(learnerprofile.FieldWeakDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldWeakDomains, value)
		})
	}
	if _u.mutation.WeakDomainsCleared() {
		_spec.ClearField(learnerprofile.FieldWeakDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.StrengthDomains(); ok {
		_spec.SetField(learnerprofile.FieldStrengthDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengthDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldStrengthDomains, value)
		})
	}
	if _u.mutation.StrengthDomainsCleared() {
		_spec.ClearField(learnerprofile.FieldStrengthDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(learnerprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(learnerprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreLow(); ok {
		_spec.SetField(learnerprofile.FieldScoreLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreLow(); ok {
		_spec.AddField(learnerprofile.FieldScoreLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreHigh(); ok {
		_spec.SetField(learnerprofile.FieldScoreHigh, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreHigh(); ok {
		_spec.AddField(learnerprofile.FieldScoreHigh, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerProfileUpdateOne is the builder for updating a single LearnerProfile entity.
type LearnerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearnerProfileUpdateOne) SetUserID(v string) *LearnerProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableUserID(v *string) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWeakDomains sets the "weak_domains" field.
func (_u *LearnerProfileUpdateOne) SetWeakDomains(v []string) *LearnerProfileUpdateOne {
	_u.mutation.SetWeakDomains(v)
	return _u
}

// AppendWeakDomains appends value to the "weak_domains" field.
func (_u *LearnerProfileUpdateOne) AppendWeakDomains(v []string) *LearnerProfileUpdateOne {
	_u.mutation.AppendWeakDomains(v)
	return _u
}

// ClearWeakDomains clears the value of the "weak_domains" field.
func (_u *LearnerProfileUpdateOne) ClearWeakDomains() *LearnerProfileUpdateOne {
	_u.mutation.ClearWeakDomains()
	return _u
}

// SetStrengthDomains sets the "strength_domains" field.
func (_u *LearnerProfileUpdateOne) SetStrengthDomains(v []string) *LearnerProfileUpdateOne {
	_u.mutation.SetStrengthDomains(v)
	return _u
}

// AppendStrengthDomains appends value to the "strength_domains" field.
func (_u *LearnerProfileUpdateOne) AppendStrengthDomains(v []string) *LearnerProfileUpdateOne {
	_u.mutation.AppendStrengthDomains(v)
	return _u
}

// ClearStrengthDomains clears the value of the "strength_domains" field.
func (_u *LearnerProfileUpdateOne) ClearStrengthDomains() *LearnerProfileUpdateOne {
	_u.mutation.ClearStrengthDomains()
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *LearnerProfileUpdateOne) SetDailyMinutes(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableDailyMinutes(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *LearnerProfileUpdateOne) AddDailyMinutes(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetScoreLow sets the "score_low" field.
func (_u *LearnerProfileUpdateOne) SetScoreLow(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetScoreLow()
	_u.mutation.SetScoreLow(v)
	return _u
}

// SetNillableScoreLow sets the "score_low" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableScoreLow(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetScoreLow(*v)
	}
	return _u
}

// AddScoreLow adds value to the "score_low" field.
func (_u *LearnerProfileUpdateOne) AddScoreLow(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddScoreLow(v)
	return _u
}

// SetScoreHigh sets the "score_high" field.
func (_u *LearnerProfileUpdateOne) SetScoreHigh(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetScoreHigh()
	_u.mutation.SetScoreHigh(v)
	return _u
}

// SetNillableScoreHigh sets the "score_high" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableScoreHigh(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetScoreHigh(*v)
	}
	return _u
}

// AddScoreHigh adds value to the "score_high" field.
func (_u *LearnerProfileUpdateOne) AddScoreHigh(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddScoreHigh(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdateOne) SetUpdatedAt(v time.Time) *LearnerProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdateOne) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdateOne) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerProfileUpdateOne) Select(field string, fields ...string) *LearnerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerProfile entity.
func (_u *LearnerProfileUpdateOne) Save(ctx context.Context) (*LearnerProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) SaveX(ctx context.Context) *LearnerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerProfileUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learnerprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerProfileUpdateOne) sqlSave(ctx context.Context) (_node *LearnerProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerprofile.FieldID)
		for _, f := range fields {
			if !learnerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learnerprofile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakDomains(); ok {
		_spec.SetField(learnerprofile.FieldWeakDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldWeakDomains, value)
		})
	}
	if _u.mutation.WeakDomainsCleared() {
		_spec.ClearField(learnerprofile.FieldWeakDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.StrengthDomains(); ok {
		_spec.SetField(learnerprofile.FieldStrengthDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengthDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldStrengthDomains, value)
		})
	}
	if _u.mutation.StrengthDomainsCleared() {
		_spec.ClearField(learnerprofile.FieldStrengthDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(learnerprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(learnerprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreLow(); ok {
		_spec.SetField(learnerprofile.FieldScoreLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreLow(); ok {
		_spec.AddField(learnerprofile.FieldScoreLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreHigh(); ok {
		_spec.SetField(learnerprofile.FieldScoreHigh, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreHigh(); ok {
		_spec.AddField(learnerprofile.FieldScoreHigh, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/mightyhq/prepcore/ent/dailyplan"
	"github.com/mightyhq/prepcore/ent/predicate"
	"github.com/mightyhq/prepcore/ent/schema"
)

// DailyPlanUpdate is the builder for updating DailyPlan entities.
type DailyPlanUpdate struct {
	config
	hooks    []Hook
	mutation *DailyPlanMutation
}

// Where appends a list predicates to the DailyPlanUpdate builder.
func (_u *DailyPlanUpdate) Where(ps ...predicate.DailyPlan) *DailyPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DailyPlanUpdate) SetUserID(v string) *DailyPlanUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyPlanUpdate) SetNillableUserID(v *string) *DailyPlanUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *DailyPlanUpdate) SetPlanDate(v string) *DailyPlanUpdate {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *DailyPlanUpdate) SetNillablePlanDate(v *string) *DailyPlanUpdate {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetActivities sets the "activities" field.
func (_u *DailyPlanUpdate) SetActivities(v []schema.ActivityEntry) *DailyPlanUpdate {
	_u.mutation.SetActivities(v)
	return _u
}

// AppendActivities appends value to the "activities" field.
func (_u *DailyPlanUpdate) AppendActivities(v []schema.ActivityEntry) *DailyPlanUpdate {
	_u.mutation.AppendActivities(v)
	return _u
}

// ClearActivities clears the value of the "activities" field.
func (_u *DailyPlanUpdate) ClearActivities() *DailyPlanUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *DailyPlanUpdate) SetCompleted(v bool) *DailyPlanUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *DailyPlanUpdate) SetNillableCompleted(v *bool) *DailyPlanUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DailyPlanUpdate) SetCompletedAt(v time.Time) *DailyPlanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DailyPlanUpdate) SetNillableCompletedAt(v *time.Time) *DailyPlanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DailyPlanUpdate) ClearCompletedAt() *DailyPlanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DailyPlanMutation object of the builder.
func (_u *DailyPlanUpdate) Mutation() *DailyPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyPlanUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := dailyplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DailyPlan.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanDate(); ok {
		if err := dailyplan.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "DailyPlan.plan_date": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyplan.Table, dailyplan.Columns, sqlgraph.NewFieldSpec(dailyplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(dailyplan.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(dailyplan.FieldPlanDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(dailyplan.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailyplan.FieldActivities, value)
		})
	}
	if _u.mutation.ActivitiesCleared() {
		_spec.ClearField(dailyplan.FieldActivities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(dailyplan.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dailyplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dailyplan.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyPlanUpdateOne is the builder for updating a single DailyPlan entity.
type DailyPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyPlanMutation
}

// SetUserID sets the "user_id" field.
func (_u *DailyPlanUpdateOne) SetUserID(v string) *DailyPlanUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyPlanUpdateOne) SetNillableUserID(v *string) *DailyPlanUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *DailyPlanUpdateOne) SetPlanDate(v string) *DailyPlanUpdateOne {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *DailyPlanUpdateOne) SetNillablePlanDate(v *string) *DailyPlanUpdateOne {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetActivities sets the "activities" field.
func (_u *DailyPlanUpdateOne) SetActivities(v []schema.ActivityEntry) *DailyPlanUpdateOne {
	_u.mutation.SetActivities(v)
	return _u
}

// AppendActivities appends value to the "activities" field.
func (_u *DailyPlanUpdateOne) AppendActivities(v []schema.ActivityEntry) *DailyPlanUpdateOne {
	_u.mutation.AppendActivities(v)
	return _u
}

// ClearActivities clears the value of the "activities" field.
func (_u *DailyPlanUpdateOne) ClearActivities() *DailyPlanUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *DailyPlanUpdateOne) SetCompleted(v bool) *DailyPlanUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *DailyPlanUpdateOne) SetNillableCompleted(v *bool) *DailyPlanUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DailyPlanUpdateOne) SetCompletedAt(v time.Time) *DailyPlanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DailyPlanUpdateOne) SetNillableCompletedAt(v *time.Time) *DailyPlanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DailyPlanUpdateOne) ClearCompletedAt() *DailyPlanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DailyPlanMutation object of the builder.
func (_u *DailyPlanUpdateOne) Mutation() *DailyPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyPlanUpdate builder.
func (_u *DailyPlanUpdateOne) Where(ps ...predicate.DailyPlan) *DailyPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyPlanUpdateOne) Select(field string, fields ...string) *DailyPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyPlan entity.
func (_u *DailyPlanUpdateOne) Save(ctx context.Context) (*DailyPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyPlanUpdateOne) SaveX(ctx context.Context) *DailyPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyPlanUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := dailyplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DailyPlan.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanDate(); ok {
		if err := dailyplan.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "DailyPlan.plan_date": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyPlanUpdateOne) sqlSave(ctx context.Context) (_node *DailyPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyplan.Table, dailyplan.Columns, sqlgraph.NewFieldSpec(dailyplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyplan.FieldID)
		for _, f := range fields {
			if !dailyplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailyplan.FieldID {
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
		_spec.SetField(dailyplan.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(dailyplan.FieldPlanDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(dailyplan.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailyplan.FieldActivities, value)
		})
	}
	if _u.mutation.ActivitiesCleared() {
		_spec.ClearField(dailyplan.FieldActivities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(dailyplan.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dailyplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dailyplan.FieldCompletedAt, field.TypeTime)
	}
	_node = &DailyPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

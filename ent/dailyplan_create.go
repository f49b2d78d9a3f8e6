// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mightyhq/prepcore/ent/dailyplan"
	"github.com/mightyhq/prepcore/ent/schema"
)

// DailyPlanCreate is the builder for creating a DailyPlan entity.
type DailyPlanCreate struct {
	config
	mutation *DailyPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *DailyPlanCreate) SetPlanID(v string) *DailyPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DailyPlanCreate) SetUserID(v string) *DailyPlanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlanDate sets the "plan_date" field.
func (_c *DailyPlanCreate) SetPlanDate(v string) *DailyPlanCreate {
	_c.mutation.SetPlanDate(v)
	return _c
}

// SetActivities sets the "activities" field.
func (_c *DailyPlanCreate) SetActivities(v []schema.ActivityEntry) *DailyPlanCreate {
	_c.mutation.SetActivities(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *DailyPlanCreate) SetCompleted(v bool) *DailyPlanCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *DailyPlanCreate) SetNillableCompleted(v *bool) *DailyPlanCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DailyPlanCreate) SetCompletedAt(v time.Time) *DailyPlanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DailyPlanCreate) SetNillableCompletedAt(v *time.Time) *DailyPlanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the DailyPlanMutation object of the builder.
func (_c *DailyPlanCreate) Mutation() *DailyPlanMutation {
	return _c.mutation
}

// Save creates the DailyPlan in the database.
func (_c *DailyPlanCreate) Save(ctx context.Context) (*DailyPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyPlanCreate) SaveX(ctx context.Context) *DailyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyPlanCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := dailyplan.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "DailyPlan.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := dailyplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "DailyPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DailyPlan.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := dailyplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DailyPlan.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanDate(); !ok {
		return &ValidationError{Name: "plan_date", err: errors.New(`ent: missing required field "DailyPlan.plan_date"`)}
	}
	if v, ok := _c.mutation.PlanDate(); ok {
		if err := dailyplan.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "DailyPlan.plan_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "DailyPlan.completed"`)}
	}
	return nil
}

func (_c *DailyPlanCreate) sqlSave(ctx context.Context) (*DailyPlan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DailyPlanCreate) createSpec() (*DailyPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailyplan.Table, sqlgraph.NewFieldSpec(dailyplan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(dailyplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(dailyplan.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PlanDate(); ok {
		_spec.SetField(dailyplan.FieldPlanDate, field.TypeString, value)
		_node.PlanDate = value
	}
	if value, ok := _c.mutation.Activities(); ok {
		_spec.SetField(dailyplan.FieldActivities, field.TypeJSON, value)
		_node.Activities = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(dailyplan.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(dailyplan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// DailyPlanCreateBulk is the builder for creating many DailyPlan entities in bulk.
type DailyPlanCreateBulk struct {
	config
	err      error
	builders []*DailyPlanCreate
}

// Save creates the DailyPlan entities in the database.
func (_c *DailyPlanCreateBulk) Save(ctx context.Context) ([]*DailyPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyPlanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DailyPlanCreateBulk) SaveX(ctx context.Context) []*DailyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

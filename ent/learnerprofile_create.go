// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mightyhq/prepcore/ent/learnerprofile"
)

// LearnerProfileCreate is the builder for creating a LearnerProfile entity.
type LearnerProfileCreate struct {
	config
	mutation *LearnerProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearnerProfileCreate) SetUserID(v string) *LearnerProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWeakDomains sets the "weak_domains" field.
func (_c *LearnerProfileCreate) SetWeakDomains(v []string) *LearnerProfileCreate {
	_c.mutation.SetWeakDomains(v)
	return _c
}

// SetStrengthDomains sets the "strength_domains" field.
func (_c *LearnerProfileCreate) SetStrengthDomains(v []string) *LearnerProfileCreate {
	_c.mutation.SetStrengthDomains(v)
	return _c
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_c *LearnerProfileCreate) SetDailyMinutes(v int) *LearnerProfileCreate {
	_c.mutation.SetDailyMinutes(v)
	return _c
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableDailyMinutes(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetDailyMinutes(*v)
	}
	return _c
}

// SetScoreLow sets the "score_low" field.
func (_c *LearnerProfileCreate) SetScoreLow(v int) *LearnerProfileCreate {
	_c.mutation.SetScoreLow(v)
	return _c
}

// SetNillableScoreLow sets the "score_low" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableScoreLow(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetScoreLow(*v)
	}
	return _c
}

// SetScoreHigh sets the "score_high" field.
func (_c *LearnerProfileCreate) SetScoreHigh(v int) *LearnerProfileCreate {
	_c.mutation.SetScoreHigh(v)
	return _c
}

// SetNillableScoreHigh sets the "score_high" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableScoreHigh(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetScoreHigh(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerProfileCreate) SetUpdatedAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableUpdatedAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_c *LearnerProfileCreate) Mutation() *LearnerProfileMutation {
	return _c.mutation
}

// Save creates the LearnerProfile in the database.
func (_c *LearnerProfileCreate) Save(ctx context.Context) (*LearnerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerProfileCreate) SaveX(ctx context.Context) *LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerProfileCreate) defaults() {
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		v := learnerprofile.DefaultDailyMinutes
		_c.mutation.SetDailyMinutes(v)
	}
	if _, ok := _c.mutation.ScoreLow(); !ok {
		v := learnerprofile.DefaultScoreLow
		_c.mutation.SetScoreLow(v)
	}
	if _, ok := _c.mutation.ScoreHigh(); !ok {
		v := learnerprofile.DefaultScoreHigh
		_c.mutation.SetScoreHigh(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearnerProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learnerprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		return &ValidationError{Name: "daily_minutes", err: errors.New(`ent: missing required field "LearnerProfile.daily_minutes"`)}
	}
	if _, ok := _c.mutation.ScoreLow(); !ok {
		return &ValidationError{Name: "score_low", err: errors.New(`ent: missing required field "LearnerProfile.score_low"`)}
	}
	if _, ok := _c.mutation.ScoreHigh(); !ok {
		return &ValidationError{Name: "score_high", err: errors.New(`ent: missing required field "LearnerProfile.score_high"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerProfile.updated_at"`)}
	}
	return nil
}

func (_c *LearnerProfileCreate) sqlSave(ctx context.Context) (*LearnerProfile, error) {
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

func (_c *LearnerProfileCreate) createSpec() (*LearnerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerprofile.Table, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learnerprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WeakDomains(); ok {
		_spec.SetField(learnerprofile.FieldWeakDomains, field.TypeJSON, value)
		_node.WeakDomains = value
	}
	if value, ok := _c.mutation.StrengthDomains(); ok {
		_spec.SetField(learnerprofile.FieldStrengthDomains, field.TypeJSON, value)
		_node.StrengthDomains = value
	}
	if value, ok := _c.mutation.DailyMinutes(); ok {
		_spec.SetField(learnerprofile.FieldDailyMinutes, field.TypeInt, value)
		_node.DailyMinutes = value
	}
	if value, ok := _c.mutation.ScoreLow(); ok {
		_spec.SetField(learnerprofile.FieldScoreLow, field.TypeInt, value)
		_node.ScoreLow = value
	}
	if value, ok := _c.mutation.ScoreHigh(); ok {
		_spec.SetField(learnerprofile.FieldScoreHigh, field.TypeInt, value)
		_node.ScoreHigh = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerProfileCreateBulk is the builder for creating many LearnerProfile entities in bulk.
type LearnerProfileCreateBulk struct {
	config
	err      error
	builders []*LearnerProfileCreate
}

// Save creates the LearnerProfile entities in the database.
func (_c *LearnerProfileCreateBulk) Save(ctx context.Context) ([]*LearnerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerProfileMutation)
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
func (_c *LearnerProfileCreateBulk) SaveX(ctx context.Context) []*LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mightyhq/prepcore/ent/schema"
	"github.com/mightyhq/prepcore/ent/stressrecord"
)

// StressRecordCreate is the builder for creating a StressRecord entity.
type StressRecordCreate struct {
	config
	mutation *StressRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StressRecordCreate) SetUserID(v string) *StressRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *StressRecordCreate) SetSubjectID(v string) *StressRecordCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *StressRecordCreate) SetTopicID(v string) *StressRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *StressRecordCreate) SetLevel(v float64) *StressRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *StressRecordCreate) SetNillableLevel(v *float64) *StressRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *StressRecordCreate) SetLastUpdated(v time.Time) *StressRecordCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *StressRecordCreate) SetNillableLastUpdated(v *time.Time) *StressRecordCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetEvents sets the "events" field.
func (_c *StressRecordCreate) SetEvents(v []schema.StressEventEntry) *StressRecordCreate {
	_c.mutation.SetEvents(v)
	return _c
}

// Mutation returns the StressRecordMutation object of the builder.
func (_c *StressRecordCreate) Mutation() *StressRecordMutation {
	return _c.mutation
}

// Save creates the StressRecord in the database.
func (_c *StressRecordCreate) Save(ctx context.Context) (*StressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StressRecordCreate) SaveX(ctx context.Context) *StressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StressRecordCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := stressrecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := stressrecord.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StressRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StressRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := stressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "StressRecord.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := stressrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "StressRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := stressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "StressRecord.level"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "StressRecord.last_updated"`)}
	}
	return nil
}

func (_c *StressRecordCreate) sqlSave(ctx context.Context) (*StressRecord, error) {
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

func (_c *StressRecordCreate) createSpec() (*StressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stressrecord.Table, sqlgraph.NewFieldSpec(stressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(stressrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(stressrecord.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(stressrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(stressrecord.FieldLevel, field.TypeFloat64, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(stressrecord.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := _c.mutation.Events(); ok {
		_spec.SetField(stressrecord.FieldEvents, field.TypeJSON, value)
		_node.Events = value
	}
	return _node, _spec
}

// StressRecordCreateBulk is the builder for creating many StressRecord entities in bulk.
type StressRecordCreateBulk struct {
	config
	err      error
	builders []*StressRecordCreate
}

// Save creates the StressRecord entities in the database.
func (_c *StressRecordCreateBulk) Save(ctx context.Context) ([]*StressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StressRecordMutation)
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
func (_c *StressRecordCreateBulk) SaveX(ctx context.Context) []*StressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

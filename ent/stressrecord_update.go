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
	"github.com/mightyhq/prepcore/ent/predicate"
	"github.com/mightyhq/prepcore/ent/schema"
	"github.com/mightyhq/prepcore/ent/stressrecord"
)

// StressRecordUpdate is the builder for updating StressRecord entities.
type StressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StressRecordMutation
}

// Where appends a list predicates to the StressRecordUpdate builder.
func (_u *StressRecordUpdate) Where(ps ...predicate.StressRecord) *StressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StressRecordUpdate) SetUserID(v string) *StressRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StressRecordUpdate) SetNillableUserID(v *string) *StressRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StressRecordUpdate) SetSubjectID(v string) *StressRecordUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StressRecordUpdate) SetNillableSubjectID(v *string) *StressRecordUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *StressRecordUpdate) SetTopicID(v string) *StressRecordUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *StressRecordUpdate) SetNillableTopicID(v *string) *StressRecordUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StressRecordUpdate) SetLevel(v float64) *StressRecordUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StressRecordUpdate) SetNillableLevel(v *float64) *StressRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *StressRecordUpdate) AddLevel(v float64) *StressRecordUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *StressRecordUpdate) SetLastUpdated(v time.Time) *StressRecordUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *StressRecordUpdate) SetNillableLastUpdated(v *time.Time) *StressRecordUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *StressRecordUpdate) SetEvents(v []schema.StressEventEntry) *StressRecordUpdate {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *StressRecordUpdate) AppendEvents(v []schema.StressEventEntry) *StressRecordUpdate {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *StressRecordUpdate) ClearEvents() *StressRecordUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// Mutation returns the StressRecordMutation object of the builder.
func (_u *StressRecordUpdate) Mutation() *StressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StressRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := stressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := stressrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := stressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stressrecord.Table, stressrecord.Columns, sqlgraph.NewFieldSpec(stressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(stressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(stressrecord.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(stressrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(stressrecord.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(stressrecord.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(stressrecord.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(stressrecord.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stressrecord.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(stressrecord.FieldEvents, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StressRecordUpdateOne is the builder for updating a single StressRecord entity.
type StressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StressRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *StressRecordUpdateOne) SetUserID(v string) *StressRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StressRecordUpdateOne) SetNillableUserID(v *string) *StressRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StressRecordUpdateOne) SetSubjectID(v string) *StressRecordUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StressRecordUpdateOne) SetNillableSubjectID(v *string) *StressRecordUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *StressRecordUpdateOne) SetTopicID(v string) *StressRecordUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *StressRecordUpdateOne) SetNillableTopicID(v *string) *StressRecordUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StressRecordUpdateOne) SetLevel(v float64) *StressRecordUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StressRecordUpdateOne) SetNillableLevel(v *float64) *StressRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *StressRecordUpdateOne) AddLevel(v float64) *StressRecordUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *StressRecordUpdateOne) SetLastUpdated(v time.Time) *StressRecordUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *StressRecordUpdateOne) SetNillableLastUpdated(v *time.Time) *StressRecordUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *StressRecordUpdateOne) SetEvents(v []schema.StressEventEntry) *StressRecordUpdateOne {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *StressRecordUpdateOne) AppendEvents(v []schema.StressEventEntry) *StressRecordUpdateOne {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *StressRecordUpdateOne) ClearEvents() *StressRecordUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// Mutation returns the StressRecordMutation object of the builder.
func (_u *StressRecordUpdateOne) Mutation() *StressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StressRecordUpdate builder.
func (_u *StressRecordUpdateOne) Where(ps ...predicate.StressRecord) *StressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StressRecordUpdateOne) Select(field string, fields ...string) *StressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StressRecord entity.
func (_u *StressRecordUpdateOne) Save(ctx context.Context) (*StressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StressRecordUpdateOne) SaveX(ctx context.Context) *StressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := stressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := stressrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := stressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "StressRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StressRecordUpdateOne) sqlSave(ctx context.Context) (_node *StressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stressrecord.Table, stressrecord.Columns, sqlgraph.NewFieldSpec(stressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stressrecord.FieldID)
		for _, f := range fields {
			if !stressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stressrecord.FieldID {
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
		_spec.SetField(stressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(stressrecord.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(stressrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(stressrecord.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(stressrecord.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(stressrecord.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(stressrecord.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stressrecord.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(stressrecord.FieldEvents, field.TypeJSON)
	}
	_node = &StressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

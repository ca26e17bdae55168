// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/userskillprogress"
)

// UserSkillProgressUpdate is the builder for updating UserSkillProgress entities.
type UserSkillProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserSkillProgressMutation
}

// Where appends a list predicates to the UserSkillProgressUpdate builder.
func (_u *UserSkillProgressUpdate) Where(ps ...predicate.UserSkillProgress) *UserSkillProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserSkillProgressUpdate) SetUserID(v string) *UserSkillProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableUserID(v *string) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *UserSkillProgressUpdate) SetExamCode(v string) *UserSkillProgressUpdate {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableExamCode(v *string) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *UserSkillProgressUpdate) SetSkill(v userskillprogress.Skill) *UserSkillProgressUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableSkill(v *userskillprogress.Skill) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *UserSkillProgressUpdate) SetCurrentLevel(v userskillprogress.CurrentLevel) *UserSkillProgressUpdate {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableCurrentLevel(v *userskillprogress.CurrentLevel) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// SetLastScorePercent sets the "last_score_percent" field.
func (_u *UserSkillProgressUpdate) SetLastScorePercent(v float64) *UserSkillProgressUpdate {
	_u.mutation.ResetLastScorePercent()
	_u.mutation.SetLastScorePercent(v)
	return _u
}

// SetNillableLastScorePercent sets the "last_score_percent" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableLastScorePercent(v *float64) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetLastScorePercent(*v)
	}
	return _u
}

// AddLastScorePercent adds value to the "last_score_percent" field.
func (_u *UserSkillProgressUpdate) AddLastScorePercent(v float64) *UserSkillProgressUpdate {
	_u.mutation.AddLastScorePercent(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UserSkillProgressUpdate) SetTotalAttempts(v int) *UserSkillProgressUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableTotalAttempts(v *int) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UserSkillProgressUpdate) AddTotalAttempts(v int) *UserSkillProgressUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserSkillProgressUpdate) SetUpdatedAt(v time.Time) *UserSkillProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserSkillProgressMutation object of the builder.
func (_u *UserSkillProgressUpdate) Mutation() *UserSkillProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserSkillProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserSkillProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserSkillProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userskillprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSkillProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userskillprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := userskillprogress.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := userskillprogress.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentLevel(); ok {
		if err := userskillprogress.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.current_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := userskillprogress.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.total_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSkillProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userskillprogress.Table, userskillprogress.Columns, sqlgraph.NewFieldSpec(userskillprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userskillprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(userskillprogress.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(userskillprogress.FieldSkill, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(userskillprogress.FieldCurrentLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastScorePercent(); ok {
		_spec.SetField(userskillprogress.FieldLastScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScorePercent(); ok {
		_spec.AddField(userskillprogress.FieldLastScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(userskillprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(userskillprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userskillprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskillprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserSkillProgressUpdateOne is the builder for updating a single UserSkillProgress entity.
type UserSkillProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserSkillProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserSkillProgressUpdateOne) SetUserID(v string) *UserSkillProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableUserID(v *string) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *UserSkillProgressUpdateOne) SetExamCode(v string) *UserSkillProgressUpdateOne {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableExamCode(v *string) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *UserSkillProgressUpdateOne) SetSkill(v userskillprogress.Skill) *UserSkillProgressUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableSkill(v *userskillprogress.Skill) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *UserSkillProgressUpdateOne) SetCurrentLevel(v userskillprogress.CurrentLevel) *UserSkillProgressUpdateOne {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableCurrentLevel(v *userskillprogress.CurrentLevel) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// SetLastScorePercent sets the "last_score_percent" field.
func (_u *UserSkillProgressUpdateOne) SetLastScorePercent(v float64) *UserSkillProgressUpdateOne {
	_u.mutation.ResetLastScorePercent()
	_u.mutation.SetLastScorePercent(v)
	return _u
}

// SetNillableLastScorePercent sets the "last_score_percent" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableLastScorePercent(v *float64) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetLastScorePercent(*v)
	}
	return _u
}

// AddLastScorePercent adds value to the "last_score_percent" field.
func (_u *UserSkillProgressUpdateOne) AddLastScorePercent(v float64) *UserSkillProgressUpdateOne {
	_u.mutation.AddLastScorePercent(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UserSkillProgressUpdateOne) SetTotalAttempts(v int) *UserSkillProgressUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableTotalAttempts(v *int) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UserSkillProgressUpdateOne) AddTotalAttempts(v int) *UserSkillProgressUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserSkillProgressUpdateOne) SetUpdatedAt(v time.Time) *UserSkillProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserSkillProgressMutation object of the builder.
func (_u *UserSkillProgressUpdateOne) Mutation() *UserSkillProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserSkillProgressUpdate builder.
func (_u *UserSkillProgressUpdateOne) Where(ps ...predicate.UserSkillProgress) *UserSkillProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserSkillProgressUpdateOne) Select(field string, fields ...string) *UserSkillProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserSkillProgress entity.
func (_u *UserSkillProgressUpdateOne) Save(ctx context.Context) (*UserSkillProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillProgressUpdateOne) SaveX(ctx context.Context) *UserSkillProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserSkillProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserSkillProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userskillprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSkillProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userskillprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := userskillprogress.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := userskillprogress.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentLevel(); ok {
		if err := userskillprogress.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.current_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := userskillprogress.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.total_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSkillProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserSkillProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userskillprogress.Table, userskillprogress.Columns, sqlgraph.NewFieldSpec(userskillprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserSkillProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userskillprogress.FieldID)
		for _, f := range fields {
			if !userskillprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userskillprogress.FieldID {
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
		_spec.SetField(userskillprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(userskillprogress.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(userskillprogress.FieldSkill, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(userskillprogress.FieldCurrentLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastScorePercent(); ok {
		_spec.SetField(userskillprogress.FieldLastScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScorePercent(); ok {
		_spec.AddField(userskillprogress.FieldLastScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(userskillprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(userskillprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userskillprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserSkillProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskillprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

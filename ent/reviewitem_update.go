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
	"github.com/abhisek/recap/ent/predicate"
	"github.com/abhisek/recap/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ReviewItemUpdate) SetSubjectID(v string) *ReviewItemUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableSubjectID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewItemUpdate) SetItemID(v string) *ReviewItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableItemID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ReviewItemUpdate) SetItemType(v string) *ReviewItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableItemType(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdate) SetIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableIntervalDays(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdate) AddIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ReviewItemUpdate) SetStreak(v int) *ReviewItemUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableStreak(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ReviewItemUpdate) AddStreak(v int) *ReviewItemUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewItemUpdate) SetEaseFactor(v float64) *ReviewItemUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableEaseFactor(v *float64) *ReviewItemUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewItemUpdate) AddEaseFactor(v float64) *ReviewItemUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ReviewItemUpdate) SetLastScore(v int) *ReviewItemUpdate {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLastScore(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ReviewItemUpdate) AddLastScore(v int) *ReviewItemUpdate {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *ReviewItemUpdate) SetLastReviewAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLastReviewAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewItemUpdate) SetDueAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableDueAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := reviewitem.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := reviewitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewitem.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := reviewitem.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastScore(); ok {
		if err := reviewitem.LastScoreValidator(v); err != nil {
			return &ValidationError{Name: "last_score", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.last_score": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(reviewitem.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(reviewitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(reviewitem.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(reviewitem.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(reviewitem.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(reviewitem.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewitem.FieldDueAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *ReviewItemUpdateOne) SetSubjectID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableSubjectID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewItemUpdateOne) SetItemID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableItemID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ReviewItemUpdateOne) SetItemType(v string) *ReviewItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableItemType(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdateOne) SetIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableIntervalDays(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdateOne) AddIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ReviewItemUpdateOne) SetStreak(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableStreak(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ReviewItemUpdateOne) AddStreak(v int) *ReviewItemUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewItemUpdateOne) SetEaseFactor(v float64) *ReviewItemUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableEaseFactor(v *float64) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewItemUpdateOne) AddEaseFactor(v float64) *ReviewItemUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ReviewItemUpdateOne) SetLastScore(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLastScore(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ReviewItemUpdateOne) AddLastScore(v int) *ReviewItemUpdateOne {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *ReviewItemUpdateOne) SetLastReviewAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLastReviewAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewItemUpdateOne) SetDueAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableDueAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := reviewitem.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := reviewitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewitem.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := reviewitem.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastScore(); ok {
		if err := reviewitem.LastScoreValidator(v); err != nil {
			return &ValidationError{Name: "last_score", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.last_score": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
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
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(reviewitem.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(reviewitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(reviewitem.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(reviewitem.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(reviewitem.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(reviewitem.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewitem.FieldDueAt, field.TypeTime, value)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

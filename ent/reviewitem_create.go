// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recap/ent/reviewitem"
)

// ReviewItemCreate is the builder for creating a ReviewItem entity.
type ReviewItemCreate struct {
	config
	mutation *ReviewItemMutation
	hooks    []Hook
}

// SetSubjectID sets the "subject_id" field.
func (_c *ReviewItemCreate) SetSubjectID(v string) *ReviewItemCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewItemCreate) SetItemID(v string) *ReviewItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *ReviewItemCreate) SetItemType(v string) *ReviewItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewItemCreate) SetIntervalDays(v int) *ReviewItemCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ReviewItemCreate) SetStreak(v int) *ReviewItemCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewItemCreate) SetEaseFactor(v float64) *ReviewItemCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetLastScore sets the "last_score" field.
func (_c *ReviewItemCreate) SetLastScore(v int) *ReviewItemCreate {
	_c.mutation.SetLastScore(v)
	return _c
}

// SetLastReviewAt sets the "last_review_at" field.
func (_c *ReviewItemCreate) SetLastReviewAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetLastReviewAt(v)
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ReviewItemCreate) SetDueAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_c *ReviewItemCreate) Mutation() *ReviewItemMutation {
	return _c.mutation
}

// Save creates the ReviewItem in the database.
func (_c *ReviewItemCreate) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewItemCreate) SaveX(ctx context.Context) *ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewItemCreate) check() error {
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "ReviewItem.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := reviewitem.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewItem.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "ReviewItem.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := reviewitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewItem.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewitem.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "ReviewItem.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := reviewitem.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewItem.ease_factor"`)}
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		return &ValidationError{Name: "last_score", err: errors.New(`ent: missing required field "ReviewItem.last_score"`)}
	}
	if v, ok := _c.mutation.LastScore(); ok {
		if err := reviewitem.LastScoreValidator(v); err != nil {
			return &ValidationError{Name: "last_score", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.last_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastReviewAt(); !ok {
		return &ValidationError{Name: "last_review_at", err: errors.New(`ent: missing required field "ReviewItem.last_review_at"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "ReviewItem.due_at"`)}
	}
	return nil
}

func (_c *ReviewItemCreate) sqlSave(ctx context.Context) (*ReviewItem, error) {
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

func (_c *ReviewItemCreate) createSpec() (*ReviewItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewitem.Table, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(reviewitem.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewitem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(reviewitem.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(reviewitem.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.LastScore(); ok {
		_spec.SetField(reviewitem.FieldLastScore, field.TypeInt, value)
		_node.LastScore = value
	}
	if value, ok := _c.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewAt, field.TypeTime, value)
		_node.LastReviewAt = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(reviewitem.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	return _node, _spec
}

// ReviewItemCreateBulk is the builder for creating many ReviewItem entities in bulk.
type ReviewItemCreateBulk struct {
	config
	err      error
	builders []*ReviewItemCreate
}

// Save creates the ReviewItem entities in the database.
func (_c *ReviewItemCreateBulk) Save(ctx context.Context) ([]*ReviewItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewItemMutation)
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
func (_c *ReviewItemCreateBulk) SaveX(ctx context.Context) []*ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

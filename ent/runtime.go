// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/recap/ent/attemptevent"
	"github.com/abhisek/recap/ent/reviewitem"
	"github.com/abhisek/recap/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventFields[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[2].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescSubjectID is the schema descriptor for subject_id field.
	attempteventDescSubjectID := attempteventFields[3].Descriptor()
	// attemptevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	attemptevent.SubjectIDValidator = attempteventDescSubjectID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[4].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescItemType is the schema descriptor for item_type field.
	attempteventDescItemType := attempteventFields[5].Descriptor()
	// attemptevent.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	attemptevent.ItemTypeValidator = attempteventDescItemType.Validators[0].(func(string) error)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[6].Descriptor()
	// attemptevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attemptevent.ScoreValidator = func() func(int) error {
		validators := attempteventDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescSubjectID is the schema descriptor for subject_id field.
	reviewitemDescSubjectID := reviewitemFields[0].Descriptor()
	// reviewitem.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	reviewitem.SubjectIDValidator = reviewitemDescSubjectID.Validators[0].(func(string) error)
	// reviewitemDescItemID is the schema descriptor for item_id field.
	reviewitemDescItemID := reviewitemFields[1].Descriptor()
	// reviewitem.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewitem.ItemIDValidator = reviewitemDescItemID.Validators[0].(func(string) error)
	// reviewitemDescItemType is the schema descriptor for item_type field.
	reviewitemDescItemType := reviewitemFields[2].Descriptor()
	// reviewitem.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	reviewitem.ItemTypeValidator = reviewitemDescItemType.Validators[0].(func(string) error)
	// reviewitemDescIntervalDays is the schema descriptor for interval_days field.
	reviewitemDescIntervalDays := reviewitemFields[3].Descriptor()
	// reviewitem.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewitem.IntervalDaysValidator = reviewitemDescIntervalDays.Validators[0].(func(int) error)
	// reviewitemDescStreak is the schema descriptor for streak field.
	reviewitemDescStreak := reviewitemFields[4].Descriptor()
	// reviewitem.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	reviewitem.StreakValidator = reviewitemDescStreak.Validators[0].(func(int) error)
	// reviewitemDescLastScore is the schema descriptor for last_score field.
	reviewitemDescLastScore := reviewitemFields[6].Descriptor()
	// reviewitem.LastScoreValidator is a validator for the "last_score" field. It is called by the builders before save.
	reviewitem.LastScoreValidator = func() func(int) error {
		validators := reviewitemDescLastScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(last_score int) error {
			for _, fn := range fns {
				if err := fn(last_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
}

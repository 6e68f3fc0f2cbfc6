package store

import (
	"context"

	"github.com/abhisek/recap/ent"
	"github.com/abhisek/recap/ent/reviewitem"
	"github.com/abhisek/recap/internal/srs"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Get(ctx context.Context, subjectID, itemID string) (*srs.ReviewItem, error) {
	row, err := r.client.ReviewItem.Query().
		Where(
			reviewitem.SubjectID(subjectID),
			reviewitem.ItemID(itemID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "get review item", Err: err}
	}
	item := entToReviewItem(row)
	return &item, nil
}

func (r *reviewRepo) Upsert(ctx context.Context, item srs.ReviewItem) error {
	return upsertReviewItem(ctx, r.client, item)
}

// upsertReviewItem writes the item's state through the given client, which
// may be transaction-bound.
func upsertReviewItem(ctx context.Context, client *ent.Client, item srs.ReviewItem) error {
	existing, err := client.ReviewItem.Query().
		Where(
			reviewitem.SubjectID(item.SubjectID),
			reviewitem.ItemID(item.ItemID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return &PersistenceError{Op: "lookup review item", Err: err}
	}

	if existing != nil {
		_, err = existing.Update().
			SetIntervalDays(item.IntervalDays).
			SetStreak(item.Streak).
			SetEaseFactor(item.EaseFactor).
			SetLastScore(item.LastScore).
			SetLastReviewAt(item.LastReviewAt).
			SetDueAt(item.DueAt).
			Save(ctx)
		if err != nil {
			return &PersistenceError{Op: "update review item", Err: err}
		}
		return nil
	}

	_, err = client.ReviewItem.Create().
		SetSubjectID(item.SubjectID).
		SetItemID(item.ItemID).
		SetItemType(string(item.ItemType)).
		SetIntervalDays(item.IntervalDays).
		SetStreak(item.Streak).
		SetEaseFactor(item.EaseFactor).
		SetLastScore(item.LastScore).
		SetLastReviewAt(item.LastReviewAt).
		SetDueAt(item.DueAt).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "create review item", Err: err}
	}
	return nil
}

func (r *reviewRepo) All(ctx context.Context) ([]srs.ReviewItem, error) {
	rows, err := r.client.ReviewItem.Query().All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list review items", Err: err}
	}

	items := make([]srs.ReviewItem, len(rows))
	for i, row := range rows {
		items[i] = entToReviewItem(row)
	}
	return items, nil
}

func (r *reviewRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.client.ReviewItem.Delete().Exec(ctx); err != nil {
		return &PersistenceError{Op: "delete review items", Err: err}
	}
	return nil
}

func entToReviewItem(row *ent.ReviewItem) srs.ReviewItem {
	return srs.ReviewItem{
		SubjectID:    row.SubjectID,
		ItemID:       row.ItemID,
		ItemType:     srs.ItemType(row.ItemType),
		IntervalDays: row.IntervalDays,
		Streak:       row.Streak,
		EaseFactor:   row.EaseFactor,
		LastScore:    row.LastScore,
		LastReviewAt: row.LastReviewAt,
		DueAt:        row.DueAt,
	}
}

package store

import (
	"context"

	"github.com/abhisek/recap/ent"
	"github.com/abhisek/recap/ent/attemptevent"
	"github.com/abhisek/recap/internal/srs"
)

// attemptRepo implements AttemptRepo using the ent client and the shared
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, attemptID string, outcome srs.AttemptOutcome) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return &PersistenceError{Op: "next sequence", Err: err}
	}
	return appendAttemptEvent(ctx, r.client, seqNum, attemptID, outcome)
}

// appendAttemptEvent inserts one log row through the given client, which
// may be transaction-bound. The sequence number is claimed by the caller.
func appendAttemptEvent(ctx context.Context, client *ent.Client, seqNum int64, attemptID string, outcome srs.AttemptOutcome) error {
	_, err := client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(outcome.Timestamp).
		SetAttemptID(attemptID).
		SetSubjectID(outcome.SubjectID).
		SetItemID(outcome.ItemID).
		SetItemType(string(outcome.ItemType)).
		SetScore(outcome.Score).
		SetPassed(outcome.Passed()).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "append attempt event", Err: err}
	}
	return nil
}

func (r *attemptRepo) All(ctx context.Context) ([]AttemptRecord, error) {
	rows, err := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list attempts", Err: err}
	}
	return entToAttemptRecords(rows), nil
}

func (r *attemptRepo) ForItem(ctx context.Context, subjectID, itemID string) ([]AttemptRecord, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.SubjectID(subjectID),
			attemptevent.ItemID(itemID),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "query attempts", Err: err}
	}
	return entToAttemptRecords(rows), nil
}

func (r *attemptRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.client.AttemptEvent.Delete().Exec(ctx); err != nil {
		return &PersistenceError{Op: "delete attempts", Err: err}
	}
	return nil
}

func entToAttemptRecords(rows []*ent.AttemptEvent) []AttemptRecord {
	records := make([]AttemptRecord, len(rows))
	for i, row := range rows {
		records[i] = AttemptRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AttemptID: row.AttemptID,
			SubjectID: row.SubjectID,
			ItemID:    row.ItemID,
			ItemType:  row.ItemType,
			Score:     row.Score,
			Passed:    row.Passed,
		}
	}
	return records
}

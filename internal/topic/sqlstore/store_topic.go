package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"quiz-topics/internal/topic"
)

const opCreate = "topic.create"

var topicColumns = []string{
	"topic_name",
	"topic_type",
	"option_a",
	"option_b",
	"option_c",
	"option_d",
	"answer",
	"explanation",
	"topic_year",
	"topic_month",
	"created_by",
	"created_at",
}

// Create inserts t in a single transaction and sets t.ID from the
// storage-assigned key. Nothing is committed when an error is returned.
func (s *Store) Create(ctx context.Context, t *topic.Topic) error {
	query, args, err := s.builder.
		Insert(topicTable).
		Columns(topicColumns...).
		Values(
			t.TopicName,
			t.TopicType,
			t.OptionA,
			t.OptionB,
			t.OptionC,
			t.OptionD,
			t.Answer,
			t.Explanation,
			t.TopicYear,
			t.TopicMonth,
			t.CreatedBy,
			t.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return mapError(opCreate, err)
	}

	var id int64
	err = s.runInTx(ctx, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return mapError(opCreate, err)
	}

	t.ID = id
	return nil
}

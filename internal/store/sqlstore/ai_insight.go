package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/innerguide/guide-api/pkg/register"
	"github.com/innerguide/guide-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.AIInsightStore = NewAIInsightStore(provider)
	})
}

type AIInsightStore struct {
	CommonFields
}

func NewAIInsightStore(provider SqlProviderAchieve) *AIInsightStore {
	repo := &AIInsightStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_AI_INSIGHT)
	repo.SetAllColumns("id", "entry_id", "sentiment", "score", "emotions", "themes", "suggestions", "reflection", "model", "created_at")
	return repo
}

// Save replaces any previous insight for the entry, regeneration is
// always allowed.
func (s *AIInsightStore) Save(ctx context.Context, data types.AIInsight) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if err := s.DeleteByEntry(ctx, data.EntryID); err != nil {
		return err
	}

	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.EntryID, data.Sentiment, data.Score, data.Emotions, data.Themes, data.Suggestions, data.Reflection, data.Model, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AIInsightStore) GetByEntry(ctx context.Context, entryID string) (*types.AIInsight, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"entry_id": entryID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.AIInsight
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *AIInsightStore) ListByEntries(ctx context.Context, entryIDs []string) ([]*types.AIInsight, error) {
	if len(entryIDs) == 0 {
		return nil, nil
	}
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"entry_id": entryIDs})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []*types.AIInsight
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *AIInsightStore) DeleteByEntry(ctx context.Context, entryID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"entry_id": entryID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AIInsightStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

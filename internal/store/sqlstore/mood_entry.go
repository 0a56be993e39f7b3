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
		provider.stores.MoodEntryStore = NewMoodEntryStore(provider)
	})
}

type MoodEntryStore struct {
	CommonFields
}

func NewMoodEntryStore(provider SqlProviderAchieve) *MoodEntryStore {
	repo := &MoodEntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_MOOD_ENTRY)
	repo.SetAllColumns("id", "mood", "label", "notes", "date", "time", "created_at")
	return repo
}

func (s *MoodEntryStore) Create(ctx context.Context, data types.MoodEntry) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.Mood, data.Label, data.Notes, data.Date, data.Time, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *MoodEntryStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *MoodEntryStore) Get(ctx context.Context, id string) (*types.MoodEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.MoodEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *MoodEntryStore) List(ctx context.Context, page, pageSize uint64) ([]*types.MoodEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		OrderBy("created_at DESC", "id DESC").
		Limit(pageSize).Offset((page - 1) * pageSize)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []*types.MoodEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *MoodEntryStore) ListAll(ctx context.Context) ([]*types.MoodEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC", "id DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []*types.MoodEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *MoodEntryStore) Total(ctx context.Context) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *MoodEntryStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

package sqlstore

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/innerguide/guide-api/pkg/register"
	"github.com/innerguide/guide-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.JournalEntryStore = NewJournalEntryStore(provider)
	})
}

type JournalEntryStore struct {
	CommonFields
}

func NewJournalEntryStore(provider SqlProviderAchieve) *JournalEntryStore {
	repo := &JournalEntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_ENTRY)
	repo.SetAllColumns("id", "title", "content", "date", "time", "mood", "tags", "city", "country", "moon_phase", "created_at", "updated_at")
	return repo
}

func (s *JournalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.Title, data.Content, data.Date, data.Time, data.Mood, data.Tags, data.City, data.Country, data.MoonPhase, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalEntryStore) Update(ctx context.Context, id string, args types.UpdateJournalArgs) error {
	query := sq.Update(s.GetTable()).
		Set("title", args.Title).
		Set("content", args.Content).
		Set("mood", args.Mood).
		Set("tags", types.Strings(args.Tags)).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	queryString, sqlArgs, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, sqlArgs...)
	return err
}

func (s *JournalEntryStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalEntryStore) Get(ctx context.Context, id string) (*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JournalEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *JournalEntryStore) List(ctx context.Context, page, pageSize uint64) ([]*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		OrderBy("created_at DESC", "id DESC").
		Limit(pageSize).Offset((page - 1) * pageSize)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []*types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalEntryStore) ListAll(ctx context.Context) ([]*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC", "id DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []*types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalEntryStore) Total(ctx context.Context) (int64, error) {
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

// Exists is the duplicate check used by the import paths: exact trimmed
// content plus exact date, deliberately no fuzzy matching.
func (s *JournalEntryStore) Exists(ctx context.Context, content, date string) (bool, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).
		Where(sq.Eq{"date": date}).
		Where("TRIM(content) = ?", strings.TrimSpace(content))

	queryString, args, err := query.ToSql()
	if err != nil {
		return false, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return false, err
	}
	return total > 0, nil
}

func (s *JournalEntryStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

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
		provider.stores.LocalCopyStore = NewLocalCopyStore(provider)
	})
}

type LocalCopyStore struct {
	CommonFields
}

func NewLocalCopyStore(provider SqlProviderAchieve) *LocalCopyStore {
	repo := &LocalCopyStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_LOCAL_COPY)
	repo.SetAllColumns("id", "file_name", "checksum", "content", "size", "imported", "duplicates", "errors", "created_at", "last_imported_at")
	return repo
}

func (s *LocalCopyStore) Create(ctx context.Context, data types.LocalCopy) error {
	now := time.Now().Unix()
	if data.CreatedAt == 0 {
		data.CreatedAt = now
	}
	if data.LastImportedAt == 0 {
		data.LastImportedAt = now
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.FileName, data.Checksum, data.Content, data.Size, data.Imported, data.Duplicates, data.Errors, data.CreatedAt, data.LastImportedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *LocalCopyStore) Get(ctx context.Context, id string) (*types.LocalCopy, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.LocalCopy
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *LocalCopyStore) GetByFingerprint(ctx context.Context, fileName, checksum string) (*types.LocalCopy, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"file_name": fileName, "checksum": checksum})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.LocalCopy
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *LocalCopyStore) List(ctx context.Context) ([]*types.LocalCopy, error) {
	query := sq.Select("id", "file_name", "checksum", "size", "imported", "duplicates", "errors", "created_at", "last_imported_at").
		From(s.GetTable()).OrderBy("last_imported_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []*types.LocalCopy
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *LocalCopyStore) TouchImport(ctx context.Context, id string, result types.ImportResult, importedAt int64) error {
	query := sq.Update(s.GetTable()).
		Set("imported", result.Imported).
		Set("duplicates", result.Duplicates).
		Set("errors", result.Errors).
		Set("last_imported_at", importedAt).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *LocalCopyStore) DeleteOlderThan(ctx context.Context, createdBefore int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Lt{"last_imported_at": createdBefore})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *LocalCopyStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

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
		provider.stores.SettingsStore = NewSettingsStore(provider)
		provider.stores.UserPreferenceStore = NewUserPreferenceStore(provider)
	})
}

// Both singletons live on a fixed row id of 1.
const singletonID = 1

type SettingsStore struct {
	CommonFields
}

func NewSettingsStore(provider SqlProviderAchieve) *SettingsStore {
	repo := &SettingsStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SETTINGS)
	repo.SetAllColumns("theme", "notifications_enabled", "auto_save_enabled", "location_enabled", "analytics_enabled", "ai_enabled", "updated_at")
	return repo
}

func (s *SettingsStore) Get(ctx context.Context) (*types.Settings, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": singletonID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Settings
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SettingsStore) Save(ctx context.Context, data types.Settings) error {
	data.UpdatedAt = time.Now().Unix()

	query := sq.Replace(s.GetTable()).
		Columns(append([]string{"id"}, s.GetAllColumns()...)...).
		Values(singletonID, data.Theme, data.NotificationsEnabled, data.AutoSaveEnabled, data.LocationEnabled, data.AnalyticsEnabled, data.AIEnabled, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SettingsStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

type UserPreferenceStore struct {
	CommonFields
}

func NewUserPreferenceStore(provider SqlProviderAchieve) *UserPreferenceStore {
	repo := &UserPreferenceStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USER_PREFERENCE)
	repo.SetAllColumns("reminder_time", "custom_tags", "weekly_goal", "daily_word_goal", "updated_at")
	return repo
}

func (s *UserPreferenceStore) Get(ctx context.Context) (*types.UserPreferences, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": singletonID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.UserPreferences
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *UserPreferenceStore) Save(ctx context.Context, data types.UserPreferences) error {
	data.UpdatedAt = time.Now().Unix()

	query := sq.Replace(s.GetTable()).
		Columns(append([]string{"id"}, s.GetAllColumns()...)...).
		Values(singletonID, data.ReminderTime, data.CustomTags, data.WeeklyGoal, data.DailyWordGoal, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UserPreferenceStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

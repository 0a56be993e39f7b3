package v1

import (
	"context"
	"database/sql"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/types"
)

type SettingsLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSettingsLogic(ctx context.Context, core *core.Core) *SettingsLogic {
	return &SettingsLogic{
		ctx:  ctx,
		core: core,
	}
}

// GetSettings returns the stored singleton, falling back to defaults
// before the first save.
func (l *SettingsLogic) GetSettings() (*types.Settings, error) {
	settings, err := l.core.Store().SettingsStore().Get(l.ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			defaults := types.DefaultSettings()
			return &defaults, nil
		}
		return nil, errors.New("SettingsLogic.GetSettings.SettingsStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return settings, nil
}

// MustGetSettings is for internal callers that can live with defaults
// when the read fails.
func (l *SettingsLogic) MustGetSettings() types.Settings {
	settings, err := l.GetSettings()
	if err != nil {
		return types.DefaultSettings()
	}
	return *settings
}

func (l *SettingsLogic) SaveSettings(settings types.Settings) error {
	if err := l.core.Store().SettingsStore().Save(l.ctx, settings); err != nil {
		return errors.New("SettingsLogic.SaveSettings.SettingsStore.Save", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *SettingsLogic) GetPreferences() (*types.UserPreferences, error) {
	prefs, err := l.core.Store().UserPreferenceStore().Get(l.ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			defaults := types.DefaultPreferences()
			return &defaults, nil
		}
		return nil, errors.New("SettingsLogic.GetPreferences.UserPreferenceStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return prefs, nil
}

func (l *SettingsLogic) SavePreferences(prefs types.UserPreferences) error {
	if err := l.core.Store().UserPreferenceStore().Save(l.ctx, prefs); err != nil {
		return errors.New("SettingsLogic.SavePreferences.UserPreferenceStore.Save", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

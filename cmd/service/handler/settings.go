package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/innerguide/guide-api/internal/logic/v1"
	"github.com/innerguide/guide-api/internal/response"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

func (s *HttpSrv) GetSettings(c *gin.Context) {
	settings, err := v1.NewSettingsLogic(c, s.Core).GetSettings()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, settings)
}

type SaveSettingsRequest struct {
	Theme                string `json:"theme" binding:"required"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	AutoSaveEnabled      bool   `json:"auto_save_enabled"`
	LocationEnabled      bool   `json:"location_enabled"`
	AnalyticsEnabled     bool   `json:"analytics_enabled"`
	AIEnabled            bool   `json:"ai_enabled"`
}

func (s *HttpSrv) SaveSettings(c *gin.Context) {
	var (
		err error
		req SaveSettingsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewSettingsLogic(c, s.Core).SaveSettings(types.Settings{
		Theme:                req.Theme,
		NotificationsEnabled: req.NotificationsEnabled,
		AutoSaveEnabled:      req.AutoSaveEnabled,
		LocationEnabled:      req.LocationEnabled,
		AnalyticsEnabled:     req.AnalyticsEnabled,
		AIEnabled:            req.AIEnabled,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) GetPreferences(c *gin.Context) {
	prefs, err := v1.NewSettingsLogic(c, s.Core).GetPreferences()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, prefs)
}

type SavePreferencesRequest struct {
	ReminderTime  string   `json:"reminder_time"`
	CustomTags    []string `json:"custom_tags"`
	WeeklyGoal    int      `json:"weekly_goal"`
	DailyWordGoal int      `json:"daily_word_goal"`
}

func (s *HttpSrv) SavePreferences(c *gin.Context) {
	var (
		err error
		req SavePreferencesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewSettingsLogic(c, s.Core).SavePreferences(types.UserPreferences{
		ReminderTime:  req.ReminderTime,
		CustomTags:    req.CustomTags,
		WeeklyGoal:    req.WeeklyGoal,
		DailyWordGoal: req.DailyWordGoal,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

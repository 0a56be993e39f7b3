package types

// Settings is a per-installation singleton, overwritten wholesale on
// every update.
type Settings struct {
	Theme                string `json:"theme" db:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled" db:"notifications_enabled"`
	AutoSaveEnabled      bool   `json:"auto_save_enabled" db:"auto_save_enabled"`
	LocationEnabled      bool   `json:"location_enabled" db:"location_enabled"`
	AnalyticsEnabled     bool   `json:"analytics_enabled" db:"analytics_enabled"`
	AIEnabled            bool   `json:"ai_enabled" db:"ai_enabled"`
	UpdatedAt            int64  `json:"updated_at" db:"updated_at"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:            "system",
		AutoSaveEnabled:  true,
		AnalyticsEnabled: true,
		AIEnabled:        true,
	}
}

// UserPreferences is the secondary singleton, same update discipline as
// Settings.
type UserPreferences struct {
	ReminderTime  string  `json:"reminder_time" db:"reminder_time"` // 15:04, empty disables the reminder
	CustomTags    Strings `json:"custom_tags" db:"custom_tags"`
	WeeklyGoal    int     `json:"weekly_goal" db:"weekly_goal"`         // entries per week
	DailyWordGoal int     `json:"daily_word_goal" db:"daily_word_goal"` // words per entry
	UpdatedAt     int64   `json:"updated_at" db:"updated_at"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		WeeklyGoal:    5,
		DailyWordGoal: 100,
	}
}

package types

type Table string

func (t Table) Name() string {
	return string(t)
}

const (
	TABLE_JOURNAL_ENTRY   Table = "guide_journal_entry"
	TABLE_MOOD_ENTRY      Table = "guide_mood_entry"
	TABLE_SETTINGS        Table = "guide_settings"
	TABLE_USER_PREFERENCE Table = "guide_user_preference"
	TABLE_AI_INSIGHT      Table = "guide_ai_insight"
	TABLE_LOCAL_COPY      Table = "guide_local_copy"
)

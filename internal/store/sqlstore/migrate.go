package sqlstore

var createTableStatements = []string{
	`CREATE TABLE IF NOT EXISTS guide_journal_entry (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		mood INTEGER NOT NULL DEFAULT 0,
		tags TEXT NOT NULL DEFAULT '[]',
		city TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		moon_phase TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entry_created ON guide_journal_entry (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entry_date ON guide_journal_entry (date)`,

	`CREATE TABLE IF NOT EXISTS guide_mood_entry (
		id TEXT PRIMARY KEY,
		mood INTEGER NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_entry_created ON guide_mood_entry (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS guide_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		theme TEXT NOT NULL DEFAULT 'system',
		notifications_enabled INTEGER NOT NULL DEFAULT 0,
		auto_save_enabled INTEGER NOT NULL DEFAULT 1,
		location_enabled INTEGER NOT NULL DEFAULT 0,
		analytics_enabled INTEGER NOT NULL DEFAULT 1,
		ai_enabled INTEGER NOT NULL DEFAULT 1,
		updated_at INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS guide_user_preference (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		reminder_time TEXT NOT NULL DEFAULT '',
		custom_tags TEXT NOT NULL DEFAULT '[]',
		weekly_goal INTEGER NOT NULL DEFAULT 0,
		daily_word_goal INTEGER NOT NULL DEFAULT 0,
		updated_at INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS guide_ai_insight (
		id TEXT PRIMARY KEY,
		entry_id TEXT NOT NULL UNIQUE,
		sentiment TEXT NOT NULL DEFAULT 'neutral',
		score REAL NOT NULL DEFAULT 0,
		emotions TEXT NOT NULL DEFAULT '[]',
		themes TEXT NOT NULL DEFAULT '[]',
		suggestions TEXT NOT NULL DEFAULT '[]',
		reflection TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS guide_local_copy (
		id TEXT PRIMARY KEY,
		file_name TEXT NOT NULL,
		checksum TEXT NOT NULL,
		content TEXT NOT NULL,
		size INTEGER NOT NULL DEFAULT 0,
		imported INTEGER NOT NULL DEFAULT 0,
		duplicates INTEGER NOT NULL DEFAULT 0,
		errors INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		last_imported_at INTEGER NOT NULL,
		UNIQUE (file_name, checksum)
	)`,
}

package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createProfileTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		bio TEXT,
		avatar_url TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE startup_profiles (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL UNIQUE,
		company_name TEXT NOT NULL,
		industry TEXT,
		stage TEXT,
		website TEXT,
		pitch_summary TEXT,
		team_size INTEGER DEFAULT 1,
		funding_goal TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE mentor_profiles (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL UNIQUE,
		expertise_tags TEXT,
		years_experience INTEGER DEFAULT 0,
		availability TEXT,
		hourly_rate TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE investor_profiles (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL UNIQUE,
		fund_name TEXT NOT NULL,
		investment_stages TEXT,
		sectors TEXT,
		ticket_min TEXT,
		ticket_max TEXT,
		portfolio_size INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createConnectionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE connections (
		id TEXT PRIMARY KEY,
		requester_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		connection_type TEXT DEFAULT 'network',
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		response_message TEXT,
		responded_at DATETIME,
		pair_key TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMentorshipRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE mentorship_requests (
		id TEXT PRIMARY KEY,
		startup_id TEXT NOT NULL,
		mentor_id TEXT NOT NULL,
		message TEXT NOT NULL,
		focus_area TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		response_message TEXT,
		responded_at DATETIME,
		pair_key TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInvestmentRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investment_requests (
		id TEXT PRIMARY KEY,
		startup_id TEXT NOT NULL,
		investor_id TEXT NOT NULL,
		message TEXT NOT NULL,
		pitch_deck_url TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		response_message TEXT,
		responded_at DATETIME,
		pair_key TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEventTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE events (
		id TEXT PRIMARY KEY,
		organizer_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		is_virtual BOOLEAN DEFAULT FALSE,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		registration_deadline DATETIME NOT NULL,
		max_participants INTEGER NOT NULL,
		requires_approval BOOLEAN DEFAULT FALSE,
		target_audience TEXT,
		status TEXT NOT NULL DEFAULT 'draft',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE event_registrations (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		reg_key TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		recipient_id TEXT NOT NULL,
		body TEXT NOT NULL,
		read_at DATETIME,
		created_at DATETIME
	);`)
}

func createNotificationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		reference_id TEXT,
		is_read BOOLEAN DEFAULT FALSE,
		dispatch TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE activity_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		action TEXT NOT NULL,
		detail TEXT,
		created_at DATETIME
	);`)
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wordrush/internal/database"
	"wordrush/internal/models"
)

// ErrProfileNotFound is returned when no profile exists with the given ID
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository handles database operations for profiles and their
// progress records (activities, items, badges, completed word sets)
type ProfileRepository struct {
	db *database.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile retrieves a profile and all of its progress records
func (r *ProfileRepository) GetProfile(id models.ProfileID) (*models.Profile, error) {
	return loadProfile(r.db, id)
}

// ListProfiles retrieves all profiles ordered by ID
func (r *ProfileRepository) ListProfiles() ([]*models.Profile, error) {
	rows, err := r.db.Query("SELECT id FROM profiles ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var ids []models.ProfileID
	for rows.Next() {
		var id models.ProfileID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan profile id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	profiles := make([]*models.Profile, 0, len(ids))
	for _, id := range ids {
		profile, err := loadProfile(r.db, id)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// SaveProfile persists a profile snapshot, replacing all of its progress
// records in a single transaction
func (r *ProfileRepository) SaveProfile(profile *models.Profile) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := saveProfileTx(tx, profile); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveProfiles persists multiple profile snapshots atomically. Used by
// save-data import so a bad file can never leave partial state behind.
func (r *ProfileRepository) SaveProfiles(profiles []*models.Profile) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, profile := range profiles {
		if err := saveProfileTx(tx, profile); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// EnsureDefaults creates the built-in profiles on first run. Existing
// profiles are left untouched.
func (r *ProfileRepository) EnsureDefaults() error {
	for _, profile := range models.DefaultProfiles() {
		_, err := loadProfile(r.db, profile.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrProfileNotFound) {
			return err
		}
		if err := r.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to seed profile %s: %w", profile.ID, err)
		}
	}
	return nil
}

func saveProfileTx(tx database.DBTX, profile *models.Profile) error {
	var lastActivity interface{}
	if profile.LastActivityAt != nil {
		lastActivity = profile.LastActivityAt.UTC()
	}

	query := tx.GetDialect().UpsertProfile()
	if _, err := tx.Exec(query,
		profile.ID,
		profile.Name,
		profile.Age,
		profile.Coins,
		profile.CurrentWordSet,
		profile.StreakDays,
		lastActivity,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", profile.ID, err)
	}

	// Replace child rows wholesale; snapshots are small and append-only
	for _, table := range []string{"activity_results", "unlocked_items", "completed_word_sets", "unlocked_badges"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE profile_id = ?", profile.ID); err != nil {
			return fmt.Errorf("failed to clear %s for %s: %w", table, profile.ID, err)
		}
	}

	for i, activity := range profile.ActivityHistory {
		var wpm, setID sql.NullInt64
		var passageID sql.NullString

		switch result := activity.(type) {
		case models.ReadingResult:
			wpm = sql.NullInt64{Int64: int64(result.WPM), Valid: true}
			passageID = sql.NullString{String: result.PassageID, Valid: true}
		case models.WordResult:
			setID = sql.NullInt64{Int64: int64(result.SetID), Valid: true}
		default:
			return fmt.Errorf("unknown activity type %q at position %d", activity.ActivityType(), i)
		}

		score, total := activityScore(activity)
		query := `INSERT INTO activity_results
			(profile_id, position, activity_type, occurred_at, coins_earned, wpm, passage_id, set_id, score, total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.Exec(query,
			profile.ID, i, activity.ActivityType(), activity.OccurredAt().UTC(),
			activity.Coins(), wpm, passageID, setID, score, total,
		); err != nil {
			return fmt.Errorf("failed to insert activity %d for %s: %w", i, profile.ID, err)
		}
	}

	for i, itemID := range profile.UnlockedItems {
		query := "INSERT INTO unlocked_items (profile_id, item_id, position) VALUES (?, ?, ?)"
		if _, err := tx.Exec(query, profile.ID, itemID, i); err != nil {
			return fmt.Errorf("failed to insert item %s for %s: %w", itemID, profile.ID, err)
		}
	}

	for i, setID := range profile.CompletedWordSets {
		query := "INSERT INTO completed_word_sets (profile_id, set_id, position) VALUES (?, ?, ?)"
		if _, err := tx.Exec(query, profile.ID, setID, i); err != nil {
			return fmt.Errorf("failed to insert completed set %d for %s: %w", setID, profile.ID, err)
		}
	}

	for i, badge := range profile.UnlockedBadges {
		query := "INSERT INTO unlocked_badges (profile_id, badge_id, unlocked_at, position) VALUES (?, ?, ?, ?)"
		if _, err := tx.Exec(query, profile.ID, badge.BadgeID, badge.UnlockedAt.UTC(), i); err != nil {
			return fmt.Errorf("failed to insert badge %s for %s: %w", badge.BadgeID, profile.ID, err)
		}
	}

	return nil
}

func loadProfile(db database.DBTX, id models.ProfileID) (*models.Profile, error) {
	profile := &models.Profile{}
	var lastActivity sql.NullTime

	query := `SELECT id, name, age, coins, current_word_set, streak_days, last_activity_at
		FROM profiles WHERE id = ?`
	err := db.QueryRow(query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Age,
		&profile.Coins,
		&profile.CurrentWordSet,
		&profile.StreakDays,
		&lastActivity,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	if lastActivity.Valid {
		t := lastActivity.Time
		profile.LastActivityAt = &t
	}

	if profile.ActivityHistory, err = loadActivities(db, id); err != nil {
		return nil, err
	}
	if profile.UnlockedItems, err = loadItems(db, id); err != nil {
		return nil, err
	}
	if profile.CompletedWordSets, err = loadCompletedSets(db, id); err != nil {
		return nil, err
	}
	if profile.UnlockedBadges, err = loadBadges(db, id); err != nil {
		return nil, err
	}

	return profile, nil
}

func loadActivities(db database.DBTX, id models.ProfileID) (models.ActivityHistory, error) {
	query := `SELECT activity_type, occurred_at, coins_earned, wpm, passage_id, set_id, score, total
		FROM activity_results WHERE profile_id = ? ORDER BY position ASC`
	rows, err := db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	history := models.ActivityHistory{}
	for rows.Next() {
		var (
			activityType models.ActivityType
			occurredAt   time.Time
			coins        int
			wpm, setID   sql.NullInt64
			passageID    sql.NullString
			score, total int
		)
		if err := rows.Scan(&activityType, &occurredAt, &coins, &wpm, &passageID, &setID, &score, &total); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		switch activityType {
		case models.ActivityReading:
			history = append(history, models.ReadingResult{
				Timestamp:      occurredAt,
				CoinsEarned:    coins,
				WPM:            int(wpm.Int64),
				Score:          score,
				TotalQuestions: total,
				PassageID:      passageID.String,
			})
		case models.ActivityWords:
			history = append(history, models.WordResult{
				Timestamp:   occurredAt,
				CoinsEarned: coins,
				SetID:       int(setID.Int64),
				Score:       score,
				TotalWords:  total,
			})
		default:
			return nil, fmt.Errorf("unknown activity type %q for profile %s", activityType, id)
		}
	}
	return history, rows.Err()
}

func loadItems(db database.DBTX, id models.ProfileID) ([]models.ItemID, error) {
	rows, err := db.Query("SELECT item_id FROM unlocked_items WHERE profile_id = ? ORDER BY position ASC", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.ItemID{}
	for rows.Next() {
		var itemID models.ItemID
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, itemID)
	}
	return items, rows.Err()
}

func loadCompletedSets(db database.DBTX, id models.ProfileID) ([]int, error) {
	rows, err := db.Query("SELECT set_id FROM completed_word_sets WHERE profile_id = ? ORDER BY position ASC", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed sets: %w", err)
	}
	defer rows.Close()

	sets := []int{}
	for rows.Next() {
		var setID int
		if err := rows.Scan(&setID); err != nil {
			return nil, fmt.Errorf("failed to scan completed set: %w", err)
		}
		sets = append(sets, setID)
	}
	return sets, rows.Err()
}

func loadBadges(db database.DBTX, id models.ProfileID) ([]models.UnlockedBadge, error) {
	rows, err := db.Query("SELECT badge_id, unlocked_at FROM unlocked_badges WHERE profile_id = ? ORDER BY position ASC", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	badges := []models.UnlockedBadge{}
	for rows.Next() {
		var badge models.UnlockedBadge
		if err := rows.Scan(&badge.BadgeID, &badge.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}

func activityScore(activity models.ActivityResult) (score, total int) {
	switch result := activity.(type) {
	case models.ReadingResult:
		return result.Score, result.TotalQuestions
	case models.WordResult:
		return result.Score, result.TotalWords
	}
	return 0, 0
}

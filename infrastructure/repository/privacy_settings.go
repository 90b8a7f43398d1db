package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adlens/ad-confidence-api/infrastructure/database/postgres"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

const (
	privacySettingsTable = "privacy_settings ps"
)

type PrivacySettingsRepository interface {
	// GetByUserID returns the stored settings, or nil when the user has never
	// touched them (callers apply the opted-in default).
	GetByUserID(userID int) (*domain.PrivacySettings, error)
	SaveOrUpdate(settings *domain.PrivacySettings) error
	// ListSharingUserIDs returns, in one query, every user currently sharing
	// aggregates. Users without a stored row count as sharing (default opt-in).
	ListSharingUserIDs() (map[int]struct{}, error)
	// ListSharingAccountIDs returns the account IDs whose owning user shares
	// aggregates. This is the single eligibility snapshot the cross-account
	// aggregation reads once per call.
	ListSharingAccountIDs() (map[string]struct{}, error)
}

type privacySettingsRepository struct {
	conn *postgres.Connection
}

func NewPrivacySettingsRepository(conn *postgres.Connection) PrivacySettingsRepository {
	return &privacySettingsRepository{
		conn: conn,
	}
}

func (r *privacySettingsRepository) GetByUserID(userID int) (*domain.PrivacySettings, error) {
	query, args, err := squirrel.
		Select("ps.user_id, ps.share_aggregates, ps.updated_at").
		From(privacySettingsTable).
		Where(squirrel.Eq{"ps.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	settings := &domain.PrivacySettings{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&settings.UserID, &settings.ShareAggregates, &settings.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning privacy settings: %w", err)
	}

	return settings, nil
}

func (r *privacySettingsRepository) SaveOrUpdate(settings *domain.PrivacySettings) error {
	query := squirrel.StatementBuilder.
		Insert("privacy_settings").
		Columns("user_id", "share_aggregates").
		Values(settings.UserID, settings.ShareAggregates).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				share_aggregates = EXCLUDED.share_aggregates,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *privacySettingsRepository) ListSharingUserIDs() (map[int]struct{}, error) {
	// Users without a privacy_settings row share by default, so the exclusion
	// set is only the explicit opt-outs.
	query, args, err := squirrel.
		Select("u.id").
		From("users u").
		LeftJoin("privacy_settings ps ON ps.user_id = u.id").
		Where(squirrel.Eq{"u.deleted": false}).
		Where(squirrel.Or{
			squirrel.Eq{"ps.share_aggregates": nil},
			squirrel.Eq{"ps.share_aggregates": true},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	sharing := make(map[int]struct{})
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("error scanning user ID: %w", err)
		}
		sharing[userID] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return sharing, nil
}

func (r *privacySettingsRepository) ListSharingAccountIDs() (map[string]struct{}, error) {
	// An account is eligible when its owner shares aggregates, including
	// owners who never stored settings (default opt-in).
	query, args, err := squirrel.
		Select("a.id").
		From("accounts a").
		LeftJoin("privacy_settings ps ON ps.user_id = a.owner_user_id").
		Where(squirrel.Or{
			squirrel.Eq{"ps.share_aggregates": nil},
			squirrel.Eq{"ps.share_aggregates": true},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	eligible := make(map[string]struct{})
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, fmt.Errorf("error scanning account ID: %w", err)
		}
		eligible[accountID] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return eligible, nil
}

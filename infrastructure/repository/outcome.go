package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adlens/ad-confidence-api/infrastructure/database/postgres"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

const (
	outcomesTable = "recommendation_outcomes ro"

	outcomeColumns = "ro.id, ro.account_id, ro.ad_id, ro.recommendation_type, ro.recommendation_text, " +
		"ro.generated_at, ro.followed, ro.followed_at, ro.baseline_cpa, ro.cpa_delta_pct, ro.resolved_at, " +
		"ro.created_at, ro.updated_at"
)

type OutcomeRepository interface {
	GetByID(outcomeID string) (*domain.OutcomeRecord, error)
	GetByAccountID(accountID string) ([]*domain.OutcomeRecord, error)
	GetByAccountIDAndMonth(accountID string, month time.Time) ([]*domain.OutcomeRecord, error)
	GetFollowedUnresolved(olderThan time.Time) ([]*domain.OutcomeRecord, error)
	GetAllGroupedByAccount() (map[string][]*domain.OutcomeRecord, error)
	Save(outcome *domain.OutcomeRecord) error
	Update(outcome *domain.OutcomeRecord) error
}

type outcomeRepository struct {
	conn *postgres.Connection
}

func NewOutcomeRepository(conn *postgres.Connection) OutcomeRepository {
	return &outcomeRepository{
		conn: conn,
	}
}

func (r *outcomeRepository) GetByID(outcomeID string) (*domain.OutcomeRecord, error) {
	query, args, err := squirrel.
		Select(outcomeColumns).
		From(outcomesTable).
		Where(squirrel.Eq{"ro.id": outcomeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	outcome, err := r.scanOutcome(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning outcome: %w", err)
	}

	return outcome, nil
}

func (r *outcomeRepository) GetByAccountID(accountID string) ([]*domain.OutcomeRecord, error) {
	query, args, err := squirrel.
		Select(outcomeColumns).
		From(outcomesTable).
		Where(squirrel.Eq{"ro.account_id": accountID}).
		OrderBy("ro.generated_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryOutcomes(query, args...)
}

// GetByAccountIDAndMonth returns the outcomes generated inside the calendar
// month containing the given instant. The filter is on generated_at: an
// outcome resolved inside the month but generated outside it does not belong
// to the month.
func (r *outcomeRepository) GetByAccountIDAndMonth(accountID string, month time.Time) ([]*domain.OutcomeRecord, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query, args, err := squirrel.
		Select(outcomeColumns).
		From(outcomesTable).
		Where(squirrel.Eq{"ro.account_id": accountID}).
		Where(squirrel.GtOrEq{"ro.generated_at": monthStart}).
		Where(squirrel.Lt{"ro.generated_at": nextMonth}).
		OrderBy("ro.generated_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryOutcomes(query, args...)
}

// GetFollowedUnresolved returns followed outcomes without a measured delta
// whose follow date is old enough for the measurement window to have elapsed.
func (r *outcomeRepository) GetFollowedUnresolved(olderThan time.Time) ([]*domain.OutcomeRecord, error) {
	query, args, err := squirrel.
		Select(outcomeColumns).
		From(outcomesTable).
		Where(squirrel.Eq{"ro.followed": true}).
		Where(squirrel.Eq{"ro.resolved_at": nil}).
		Where(squirrel.LtOrEq{"ro.followed_at": olderThan}).
		OrderBy("ro.followed_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryOutcomes(query, args...)
}

// GetAllGroupedByAccount loads every outcome keyed by account, the input
// shape the cross-account aggregation works over.
func (r *outcomeRepository) GetAllGroupedByAccount() (map[string][]*domain.OutcomeRecord, error) {
	query, args, err := squirrel.
		Select(outcomeColumns).
		From(outcomesTable).
		OrderBy("ro.account_id ASC, ro.generated_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	outcomes, err := r.queryOutcomes(query, args...)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*domain.OutcomeRecord)
	for _, outcome := range outcomes {
		grouped[outcome.AccountID] = append(grouped[outcome.AccountID], outcome)
	}

	return grouped, nil
}

func (r *outcomeRepository) Save(outcome *domain.OutcomeRecord) error {
	query := squirrel.StatementBuilder.
		Insert("recommendation_outcomes").
		Columns("id", "account_id", "ad_id", "recommendation_type", "recommendation_text", "generated_at", "followed").
		Values(
			outcome.ID,
			outcome.AccountID,
			outcome.AdID,
			outcome.RecommendationType,
			outcome.RecommendationText,
			outcome.GeneratedAt,
			outcome.Followed,
		).
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

func (r *outcomeRepository) Update(outcome *domain.OutcomeRecord) error {
	query := squirrel.StatementBuilder.
		Update("recommendation_outcomes").
		Set("followed", outcome.Followed).
		Set("followed_at", outcome.FollowedAt).
		Set("baseline_cpa", outcome.BaselineCPA).
		Set("cpa_delta_pct", outcome.CPADeltaPct).
		Set("resolved_at", outcome.ResolvedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": outcome.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *outcomeRepository) queryOutcomes(query string, args ...interface{}) ([]*domain.OutcomeRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	outcomes := make([]*domain.OutcomeRecord, 0)
	for rows.Next() {
		outcome, err := r.scanOutcomeRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning outcomes: %w", err)
		}
		outcomes = append(outcomes, outcome)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return outcomes, nil
}

func (r *outcomeRepository) scanOutcome(row *sql.Row) (*domain.OutcomeRecord, error) {
	outcome := &domain.OutcomeRecord{}

	err := row.Scan(
		&outcome.ID,
		&outcome.AccountID,
		&outcome.AdID,
		&outcome.RecommendationType,
		&outcome.RecommendationText,
		&outcome.GeneratedAt,
		&outcome.Followed,
		&outcome.FollowedAt,
		&outcome.BaselineCPA,
		&outcome.CPADeltaPct,
		&outcome.ResolvedAt,
		&outcome.CreatedAt,
		&outcome.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

func (r *outcomeRepository) scanOutcomeRows(rows *sql.Rows) (*domain.OutcomeRecord, error) {
	outcome := &domain.OutcomeRecord{}

	err := rows.Scan(
		&outcome.ID,
		&outcome.AccountID,
		&outcome.AdID,
		&outcome.RecommendationType,
		&outcome.RecommendationText,
		&outcome.GeneratedAt,
		&outcome.Followed,
		&outcome.FollowedAt,
		&outcome.BaselineCPA,
		&outcome.CPADeltaPct,
		&outcome.ResolvedAt,
		&outcome.CreatedAt,
		&outcome.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

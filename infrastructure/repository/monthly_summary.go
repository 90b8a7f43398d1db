package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adlens/ad-confidence-api/infrastructure/database/postgres"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

const (
	monthlySummariesTable = "monthly_summaries ms"
)

type MonthlySummaryRepository interface {
	GetByAccountIDAndPeriod(accountID string, period string) (*domain.MonthlySummary, error)
	SaveOrUpdate(summary *domain.MonthlySummary) error
	DeleteOlderThan(months int) (int64, error)
	GetAllPeriods() ([]string, error)
}

type monthlySummaryRepository struct {
	conn *postgres.Connection
}

func NewMonthlySummaryRepository(conn *postgres.Connection) MonthlySummaryRepository {
	return &monthlySummaryRepository{
		conn: conn,
	}
}

func (r *monthlySummaryRepository) GetByAccountIDAndPeriod(accountID string, period string) (*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select("ms.account_id, ms.period, ms.summary").
		From(monthlySummariesTable).
		Where(squirrel.Eq{"ms.account_id": accountID, "ms.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	var (
		storedAccountID string
		storedPeriod    string
		summaryJSON     []byte
	)

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&storedAccountID, &storedPeriod, &summaryJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning monthly summary: %w", err)
	}

	summary := &domain.MonthlySummary{}
	if err := json.Unmarshal(summaryJSON, summary); err != nil {
		return nil, fmt.Errorf("error deserializing summary JSON: %w", err)
	}
	summary.AccountID = storedAccountID
	summary.Period = storedPeriod

	return summary, nil
}

func (r *monthlySummaryRepository) SaveOrUpdate(summary *domain.MonthlySummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error serializing summary to JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_summaries").
		Columns("account_id", "period", "summary").
		Values(summary.AccountID, summary.Period, summaryJSON).
		Suffix(`
			ON CONFLICT (account_id, period) DO UPDATE SET
				summary = EXCLUDED.summary,
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

func (r *monthlySummaryRepository) DeleteOlderThan(months int) (int64, error) {
	cutoffTime := time.Now().AddDate(0, -months, 0)
	cutoffPeriod := domain.FormatPeriod(cutoffTime)

	query := squirrel.Delete("monthly_summaries").
		Where(squirrel.Lt{"period": cutoffPeriod}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting affected rows: %w", err)
	}

	return rowsAffected, nil
}

// GetAllPeriods returns every distinct period present, in mm-yyyy format.
func (r *monthlySummaryRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_summaries").
		OrderBy("period ASC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("error scanning period: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return periods, nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/infrastructure/database/postgres"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

const (
	accountsTable        = "accounts a"
	businessManagerTable = "business_manager bm"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	ListAccountsMap() (map[string]struct{}, error)
	SaveOrUpdate(account []*domain.AdAccount, businessManagerIDs map[string]string) error
	SaveOrUpdateBusinessManager(bms []*domain.BusinessManager) (map[string]string, error)
	UpdateAccount(account *domain.UpdateAdAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.external_id": accountExternalID})
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.vertical, a.owner_user_id, a.status, a.origin, a.business_id").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc := &domain.AdAccount{}
	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.Name,
		&acc.Nickname,
		&acc.Vertical,
		&acc.OwnerUserID,
		&acc.Status,
		&acc.Origin,
		&acc.BusinessManagerID,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.vertical, a.owner_user_id, a.status, bm.id, bm.name").
		From(accountsTable).
		Join("business_manager bm ON a.business_id = bm.id").
		OrderBy("a.nickname ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)

	for rows.Next() {
		acc := domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.ExternalID,
			&acc.Name,
			&acc.Nickname,
			&acc.Vertical,
			&acc.OwnerUserID,
			&acc.Status,
			&acc.BusinessManagerID,
			&acc.BusinessManagerName,
		); err != nil {
			return nil, err
		}

		accounts = append(accounts, &acc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	return accounts, nil
}

// ListAccountsMap returns the composite origin:external_id keys of every
// stored account, used by the sync to skip accounts that already exist.
func (a *accountRepository) ListAccountsMap() (map[string]struct{}, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.external_id, a.origin").
		From(accountsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]struct{})
	for rows.Next() {
		var externalID, origin string
		if err := rows.Scan(&externalID, &origin); err != nil {
			return nil, err
		}
		existing[fmt.Sprintf("%s:%s", origin, externalID)] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return existing, nil
}

func (r *accountRepository) SaveOrUpdate(accounts []*domain.AdAccount, businessManagerIDs map[string]string) error {
	if len(accounts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "external_id", "name", "nickname", "vertical", "owner_user_id", "origin", "business_id", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		bmKey := fmt.Sprintf("%s:%s", account.Origin, account.BusinessManagerID)

		businessID, exists := businessManagerIDs[bmKey]
		if !exists {
			logrus.Warnf("Business manager not found for key: %s", bmKey)
			continue
		}

		query = query.Values(
			account.ID,
			account.ExternalID,
			account.Name,
			account.Nickname,
			account.Vertical,
			account.OwnerUserID,
			account.Origin,
			businessID,
			account.Status,
		)
	}

	// On conflict keep any nickname an operator already set.
	query = query.Suffix(`
			ON CONFLICT (external_id, origin) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				vertical = COALESCE(accounts.vertical, EXCLUDED.vertical),
				nickname = COALESCE(accounts.nickname, EXCLUDED.nickname)
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *accountRepository) SaveOrUpdateBusinessManager(bms []*domain.BusinessManager) (map[string]string, error) {
	businessManagerIDS := make(map[string]string, 0)

	err := r.getExistingBusinessManagers(businessManagerIDS)
	if err != nil {
		return nil, fmt.Errorf("error loading existing business managers: %w", err)
	}

	for _, bm := range bms {
		compositeKey := fmt.Sprintf("%s:%s", bm.Origin, bm.ExternalID)

		if _, exists := businessManagerIDS[compositeKey]; exists {
			continue
		}

		query := squirrel.StatementBuilder.
			Insert("business_manager").
			Columns("id", "external_id", "name", "origin").
			Values(bm.ID, bm.ExternalID, bm.Name, bm.Origin).
			Suffix(`
			ON CONFLICT (external_id, origin) DO UPDATE SET
				name = EXCLUDED.name RETURNING id
		`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return businessManagerIDS, fmt.Errorf("failed to build query: %w", err)
		}

		var id string
		err = r.conn.QueryRow(sqlQuery, args...).Scan(&id)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return businessManagerIDS, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
			}
			return businessManagerIDS, fmt.Errorf("failed to execute query: %w", err)
		}

		businessManagerIDS[compositeKey] = id
	}

	return businessManagerIDS, nil
}

func (r *accountRepository) getExistingBusinessManagers(businessManagerIDS map[string]string) error {
	query, args, err := squirrel.
		Select("bm.id, bm.external_id, bm.origin").
		From(businessManagerTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, externalID, origin string
		if err := rows.Scan(&id, &externalID, &origin); err != nil {
			return err
		}
		businessManagerIDS[fmt.Sprintf("%s:%s", origin, externalID)] = id
	}

	return rows.Err()
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAdAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.Vertical != nil {
		queryBuilder = queryBuilder.Set("vertical", *account.Vertical)
	}

	if account.OwnerUserID != nil {
		queryBuilder = queryBuilder.Set("owner_user_id", *account.OwnerUserID)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("no account found with ID: %s", account.ID)
	}

	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"account_service/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AccountRepository defines the interface for account-related database operations.
type AccountRepository interface {
	CreateAccount(executor SQLExecutor, account *models.Account) (int64, error)
	GetAccountByID(executor SQLExecutor, id int64) (*models.Account, error)
	GetAccounts(executor SQLExecutor) ([]models.Account, error)
	UpdateAccount(executor SQLExecutor, account *models.Account) error
	DeleteAccount(executor SQLExecutor, id int64) error
}

type accountRepository struct{}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository() AccountRepository {
	return &accountRepository{}
}

// CreateAccount inserts a new account into the database. The id is assigned by
// the accounts_id_seq sequence and date_joined defaults to the current date
// when the caller leaves it zero.
func (r *accountRepository) CreateAccount(executor SQLExecutor, account *models.Account) (int64, error) {
	query := `INSERT INTO accounts (name, email, address, phone_number, date_joined)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, date_joined`

	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}

	err := executor.QueryRow(query,
		account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined,
	).Scan(&account.ID, &account.DateJoined)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating account: %v", ErrDatabaseError, err)
	}
	return account.ID, nil
}

// GetAccountByID retrieves an account by its ID. Returns ErrNotFound when no
// row matches; a missing id is never a database error.
func (r *accountRepository) GetAccountByID(executor SQLExecutor, id int64) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT id, name, email, address, phone_number, date_joined
	          FROM accounts WHERE id = $1`

	err := executor.QueryRow(query, id).Scan(
		&account.ID, &account.Name, &account.Email, &account.Address,
		&account.PhoneNumber, &account.DateJoined,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting account by ID %d: %v", ErrDatabaseError, id, err)
	}
	return account, nil
}

// GetAccounts retrieves every stored account ordered by id, i.e. insertion order.
func (r *accountRepository) GetAccounts(executor SQLExecutor) ([]models.Account, error) {
	accounts := []models.Account{}
	query := `SELECT id, name, email, address, phone_number, date_joined
	          FROM accounts ORDER BY id ASC`

	rows, err := executor.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying accounts: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID, &account.Name, &account.Email, &account.Address,
			&account.PhoneNumber, &account.DateJoined,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning account: %v", ErrDatabaseError, err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating account rows: %v", ErrDatabaseError, err)
	}

	return accounts, nil
}

// UpdateAccount persists the in-memory field values over the existing row.
// date_joined is deliberately absent from the SET list: it is immutable once
// assigned. Returns ErrNotFound when account.ID matches no row.
func (r *accountRepository) UpdateAccount(executor SQLExecutor, account *models.Account) error {
	query := `UPDATE accounts SET
	            name = $1, email = $2, address = $3, phone_number = $4
	          WHERE id = $5`

	result, err := executor.Exec(query,
		account.Name, account.Email, account.Address, account.PhoneNumber, account.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating account ID %d: %v", ErrDatabaseError, account.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating account ID %d: %v", ErrDatabaseError, account.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAccount removes the row matching id. Deleting a row that does not
// exist is a no-op, not an error, so deletes stay idempotent.
func (r *accountRepository) DeleteAccount(executor SQLExecutor, id int64) error {
	query := `DELETE FROM accounts WHERE id = $1`
	if _, err := executor.Exec(query, id); err != nil {
		return fmt.Errorf("%w: deleting account ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}

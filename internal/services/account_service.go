package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"account_service/internal/models"
	"account_service/internal/repositories"
	"account_service/pkg/utils"
)

// --- Custom Service Errors for Account ---
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountValidation = errors.New("account data validation error")
)

// --- Account DTOs ---

// AccountPayload is the client-supplied representation of an account.
// id and date_joined are accepted on the wire but always overwritten by the
// system, so they are not part of the payload.
type AccountPayload struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	PhoneNumber *string `json:"phone_number"`
}

// --- AccountService Interface ---
type AccountService interface {
	CreateAccount(req AccountPayload) (*models.Account, error)
	GetAccountByID(accountID int64) (*models.Account, error)
	GetAccounts() ([]models.Account, error)
	UpdateAccount(accountID int64, req AccountPayload) (*models.Account, error)
	DeleteAccount(accountID int64) error
}

// --- accountService Implementation ---
type accountService struct {
	accountRepo repositories.AccountRepository
	db          *sql.DB
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(repo repositories.AccountRepository, db *sql.DB) AccountService {
	return &accountService{
		accountRepo: repo,
		db:          db,
	}
}

// validateAccountData checks the required fields and reports every missing one.
func validateAccountData(req AccountPayload) error {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required field(s): %s", ErrAccountValidation, strings.Join(missing, ", "))
	}
	return nil
}

func payloadToAccount(req AccountPayload) models.Account {
	var phone *string
	if req.PhoneNumber != nil {
		phone = utils.NewNullString(strings.TrimSpace(*req.PhoneNumber))
	}
	return models.Account{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: phone,
	}
}

func (s *accountService) CreateAccount(req AccountPayload) (*models.Account, error) {
	if err := validateAccountData(req); err != nil {
		return nil, err
	}

	account := payloadToAccount(req)
	err := repositories.WithinTransaction(s.db, func(tx *sql.Tx) error {
		_, err := s.accountRepo.CreateAccount(tx, &account)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account in repository: %w", err)
	}
	return &account, nil
}

func (s *accountService) GetAccountByID(accountID int64) (*models.Account, error) {
	account, err := s.accountRepo.GetAccountByID(s.db, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return account, nil
}

func (s *accountService) GetAccounts() ([]models.Account, error) {
	accounts, err := s.accountRepo.GetAccounts(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount overwrites the client-settable fields of an existing account.
// The stored id and date_joined always survive the update.
func (s *accountService) UpdateAccount(accountID int64, req AccountPayload) (*models.Account, error) {
	if err := validateAccountData(req); err != nil {
		return nil, err
	}

	var updated *models.Account
	err := repositories.WithinTransaction(s.db, func(tx *sql.Tx) error {
		existing, err := s.accountRepo.GetAccountByID(tx, accountID)
		if err != nil {
			return err
		}

		incoming := payloadToAccount(req)
		existing.Name = incoming.Name
		existing.Email = incoming.Email
		existing.Address = incoming.Address
		existing.PhoneNumber = incoming.PhoneNumber

		if err := s.accountRepo.UpdateAccount(tx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account in repository: %w", err)
	}
	return updated, nil
}

// DeleteAccount removes an account. A missing id is treated as success so the
// operation stays idempotent from the caller's point of view.
func (s *accountService) DeleteAccount(accountID int64) error {
	err := repositories.WithinTransaction(s.db, func(tx *sql.Tx) error {
		return s.accountRepo.DeleteAccount(tx, accountID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

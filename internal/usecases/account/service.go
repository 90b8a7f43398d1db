package account

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/infrastructure/integrator/meta"
	"github.com/adlens/ad-confidence-api/infrastructure/repository"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/pkg/apiErrors"
	"github.com/adlens/ad-confidence-api/pkg/utils"
)

type AccountService interface {
	UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error)
	ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	SyncAccounts() (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	userRepository    repository.UserRepository
	metaService       *meta.MetaIntegrator
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	userRepository repository.UserRepository,
	metaService *meta.MetaIntegrator,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		userRepository:    userRepository,
		metaService:       metaService,
		cfg:               cfg,
	}
}

func (s *Service) ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "failed to list accounts from the database")
	}

	// Map accounts to the API response shape
	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:         account.ID,
			ExternalID: account.ExternalID,
			Name:       account.Name,
			Nickname:   account.Nickname,
			Vertical:   account.Vertical,
			Status:     account.Status,
		})
	}

	return adAccountsResponse, nil
}

func (s *Service) SyncAccounts() (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Error syncing accounts",
		Error:    true,
	}

	accounts, err := s.metaService.GetAdAccounts()
	if err != nil {
		logrus.Error("Error getting ad accounts from integrator meta:", err)
		return response, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "failed to fetch accounts from the Meta API")
	}

	existingAccounts, err := s.accountRepository.ListAccountsMap()
	if err != nil {
		logrus.WithField("error", err).Error("Error getting ad accounts from database")
		return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "failed to query existing accounts")
	}

	bms := make([]*domain.BusinessManager, 0)
	accountsToCreate := make([]*domain.AdAccount, 0)
	for _, acc := range accounts {
		externalID := strings.Split(acc.ExternalID, "_")[1]
		compositeKey := fmt.Sprintf("%s:%s", acc.Origin, externalID)

		if _, exists := existingAccounts[compositeKey]; exists {
			continue
		}

		accountID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "failed to generate an account identifier")
		}

		acc.ID = accountID
		acc.ExternalID = externalID
		acc.Status = domain.AdAccountStatusActive

		bmID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "failed to generate a business manager identifier")
		}

		accountsToCreate = append(accountsToCreate, acc)

		bms = append(bms, &domain.BusinessManager{
			ID:         bmID,
			ExternalID: acc.BusinessManagerID,
			Name:       acc.BusinessManagerName,
			Origin:     acc.Origin,
		})
	}

	businessManagerIDs, err := s.accountRepository.SaveOrUpdateBusinessManager(bms)
	if err != nil {
		return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to save business managers")
	}

	if len(accountsToCreate) > 0 {
		err = s.accountRepository.SaveOrUpdate(accountsToCreate, businessManagerIDs)
		if err != nil {
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to save accounts")
		}
	}

	quantity := len(accountsToCreate)

	logrus.Infof("%d accounts were successfully synced", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d accounts were successfully synced", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "error fetching account from the database")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "account not found")
	}

	// The owner drives cross-account aggregation eligibility, so it must
	// point at a real user.
	if request.OwnerUserID != nil {
		owner, err := s.userRepository.GetUserByID(*request.OwnerUserID)
		if err != nil {
			logrus.Error("Error getting owner user on the repository:", err)
			return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "error fetching owner user from the database")
		}

		if owner == nil {
			return nil, NewAccountErrorWithID(ErrOwnerNotFound, apiErrors.ErrInvalidRequest, request.ID, "owner user not found")
		}
	}

	err = s.accountRepository.UpdateAccount(request)
	if err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "failed to update account")
	}

	return &domain.UpdateAdAccountResponse{
		ID:          request.ID,
		Nickname:    request.Nickname,
		Vertical:    request.Vertical,
		OwnerUserID: request.OwnerUserID,
		Status:      request.Status,
	}, nil
}

package handlers

import (
	"errors"
	"net/http"

	"account_service/internal/models"
	"account_service/internal/services"
	"account_service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler holds the account service.
type AccountHandler struct {
	accountService services.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(as services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: as}
}

// CreateAccount handles POST /accounts. The media type is checked before the
// body is read, so a wrong Content-Type is rejected with 415 even when the
// body itself would be valid.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	if c.ContentType() != "application/json" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnsupportedMediaType, utils.ErrCodeUnsupportedMediaType,
			"Content-Type must be application/json", "received: "+c.ContentType()))
		return
	}

	var req services.AccountPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateAccount: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(req)
	if err != nil {
		utils.LogError(err, "CreateAccount: Error from accountService.CreateAccount")
		if errors.Is(err, services.ErrAccountValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
				"Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
				"Failed to create account.", "Internal error"))
		}
		return
	}

	c.Header("Location", "/accounts/"+utils.Int64ToStr(account.ID))
	c.JSON(http.StatusCreated, account)
}

// GetAccounts handles GET /accounts, returning every stored account.
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.accountService.GetAccounts()
	if err != nil {
		utils.LogError(err, "GetAccounts: Error from accountService.GetAccounts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch accounts.", "Internal error"))
		return
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	c.JSON(http.StatusOK, accounts)
}

// GetAccountByID handles GET /accounts/:id.
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	idStr := c.Param("id")
	accountID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid account ID format.", err.Error()))
		return
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		utils.LogError(err, "GetAccountByID: Error from accountService.GetAccountByID for ID "+idStr)
		if errors.Is(err, services.ErrAccountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound,
				"Account not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
				"Failed to fetch account.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateAccount handles PUT /accounts/:id.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	idStr := c.Param("id")
	accountID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid account ID format.", err.Error()))
		return
	}

	var req services.AccountPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateAccount: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	account, err := h.accountService.UpdateAccount(accountID, req)
	if err != nil {
		utils.LogError(err, "UpdateAccount: Error from accountService.UpdateAccount for ID "+idStr)
		if errors.Is(err, services.ErrAccountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound,
				"Account not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrAccountValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
				"Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
				"Failed to update account.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, account)
}

// DeleteAccount handles DELETE /accounts/:id. Deletes are idempotent: a
// missing account still answers 204 with an empty body.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	idStr := c.Param("id")
	accountID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid account ID format.", err.Error()))
		return
	}

	if err := h.accountService.DeleteAccount(accountID); err != nil {
		utils.LogError(err, "DeleteAccount: Error from accountService.DeleteAccount for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to delete account.", "Internal error"))
		return
	}
	c.Status(http.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/application/usecase"
)

// FinanceAccountHandler trata contas correntes e plano de contas (protegido).
type FinanceAccountHandler struct {
	uc *usecase.FinanceAccountUseCase
}

// NewFinanceAccountHandler constrói o handler.
func NewFinanceAccountHandler(uc *usecase.FinanceAccountUseCase) *FinanceAccountHandler {
	return &FinanceAccountHandler{uc: uc}
}

// CreateBankAccount godoc
// @Summary      Cadastrar conta corrente
// @Tags         finance-accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBankAccountRequest  true  "Dados da conta"
// @Success      201   {object}  dto.BankAccountResponse
// @Router       /api/bank-accounts [post]
func (h *FinanceAccountHandler) CreateBankAccount(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateBankAccount(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBankAccounts godoc
// @Summary      Listar contas correntes
// @Tags         finance-accounts
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Só contas ativas"
// @Success      200  {array}  dto.BankAccountResponse
// @Router       /api/bank-accounts [get]
func (h *FinanceAccountHandler) ListBankAccounts(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListBankAccounts(companyID, c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateBankAccount godoc
// @Summary      Atualizar conta corrente
// @Tags         finance-accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.UpdateBankAccountRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.BankAccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bank-accounts/{id} [put]
func (h *FinanceAccountHandler) UpdateBankAccount(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateBankAccount(companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteBankAccount godoc
// @Summary      Remover conta corrente
// @Tags         finance-accounts
// @Security     Bearer
// @Param        id  path  string  true  "ID da conta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bank-accounts/{id} [delete]
func (h *FinanceAccountHandler) DeleteBankAccount(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteBankAccount(companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateLedgerAccount godoc
// @Summary      Cadastrar conta contábil
// @Tags         finance-accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLedgerAccountRequest  true  "Dados da conta contábil"
// @Success      201   {object}  dto.LedgerAccountResponse
// @Router       /api/ledger-accounts [post]
func (h *FinanceAccountHandler) CreateLedgerAccount(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateLedgerAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateLedgerAccount(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLedgerAccounts godoc
// @Summary      Listar plano de contas
// @Tags         finance-accounts
// @Security     Bearer
// @Produce      json
// @Param        nature  query  string  false  "Filtro por natureza (contas_pagar | contas_receber)"
// @Param        active  query  bool    false  "Só contas ativas"
// @Success      200  {array}  dto.LedgerAccountResponse
// @Router       /api/ledger-accounts [get]
func (h *FinanceAccountHandler) ListLedgerAccounts(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListLedgerAccounts(companyID, c.Query("nature"), c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLedgerAccount godoc
// @Summary      Atualizar conta contábil
// @Tags         finance-accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta contábil"
// @Param        body  body  dto.UpdateLedgerAccountRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.LedgerAccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ledger-accounts/{id} [put]
func (h *FinanceAccountHandler) UpdateLedgerAccount(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLedgerAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateLedgerAccount(companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteLedgerAccount godoc
// @Summary      Remover conta contábil
// @Tags         finance-accounts
// @Security     Bearer
// @Param        id  path  string  true  "ID da conta contábil"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger-accounts/{id} [delete]
func (h *FinanceAccountHandler) DeleteLedgerAccount(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteLedgerAccount(companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

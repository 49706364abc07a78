package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// PayableHandler trata as requisições HTTP de títulos a pagar (protegido).
type PayableHandler struct {
	uc        *payables.PayableUseCase
	lifecycle *payables.LifecycleUseCase
}

// NewPayableHandler constrói o handler.
func NewPayableHandler(uc *payables.PayableUseCase, lifecycle *payables.LifecycleUseCase) *PayableHandler {
	return &PayableHandler{uc: uc, lifecycle: lifecycle}
}

// Create godoc
// @Summary      Criar título a pagar
// @Tags         payables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePayableRequest  true  "Dados do título"
// @Success      201   {object}  dto.PayableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payables [post]
func (h *PayableHandler) Create(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreatePayableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter título por ID
// @Tags         payables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do título"
// @Success      200  {object}  dto.PayableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payables/{id} [get]
func (h *PayableHandler) GetByID(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar títulos
// @Tags         payables
// @Security     Bearer
// @Produce      json
// @Param        supplier_id  query  string  false  "Filtro por fornecedor"
// @Param        status       query  string  false  "Filtro por status de parcela"
// @Param        due_from     query  string  false  "Vencimento a partir de (YYYY-MM-DD)"
// @Param        due_to       query  string  false  "Vencimento até (YYYY-MM-DD)"
// @Param        search       query  string  false  "Busca em código/documento/observações"
// @Param        limit        query  int     false  "Limite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PayableListResponse
// @Router       /api/payables [get]
func (h *PayableHandler) List(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	filter := repository.PayableFilter{
		SupplierID: c.Query("supplier_id"),
		Status:     entity.Status(c.Query("status")),
		Search:     c.Query("search"),
	}
	if from, ok := parseQueryDate(c, "due_from"); ok {
		filter.DueFrom = &from
	}
	if to, ok := parseQueryDate(c, "due_to"); ok {
		filter.DueTo = &to
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(companyID, filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar título
// @Tags         payables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do título"
// @Param        body  body  dto.UpdatePayableRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.PayableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payables/{id} [put]
func (h *PayableHandler) Update(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePayableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover título
// @Tags         payables
// @Security     Bearer
// @Param        id  path  string  true  "ID do título"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payables/{id} [delete]
func (h *PayableHandler) Delete(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteInstallment godoc
// @Summary      Remover parcela do cronograma
// @Description  Remove a parcela indicada, renumera as restantes e ajusta o total. A última parcela não pode ser removida.
// @Tags         payables
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID do título"
// @Param        number  path  int     true  "Número da parcela"
// @Success      200  {object}  dto.PayableResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payables/{id}/installments/{number} [delete]
func (h *PayableHandler) DeleteInstallment(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	number, err := c.ParamsInt("number")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de parcela inválido"})
	}
	out, err := h.uc.DeleteInstallment(companyID, c.Params("id"), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Alterar status de parcela
// @Description  Aplica a máquina de estados: liquidar (exige settled_at), protestar, cancelar ou reabrir.
// @Tags         payables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID do título"
// @Param        number  path  int     true  "Número da parcela"
// @Param        body    body  dto.TransitionRequest  true  "Status alvo"
// @Success      200  {object}  dto.PayableResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/payables/{id}/installments/{number}/status [patch]
func (h *PayableHandler) Transition(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	number, err := c.ParamsInt("number")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de parcela inválido"})
	}
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.lifecycle.TransitionInstallment(c.UserContext(), companyID, GetUserID(c), c.Params("id"), number, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Opções do formulário de título
// @Tags         payables
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PayableOptionsResponse
// @Router       /api/payables/options [get]
func (h *PayableHandler) Options(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Options(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseQueryDate lê um parâmetro de query no formato YYYY-MM-DD.
func parseQueryDate(c *fiber.Ctx, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

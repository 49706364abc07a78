package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/application/stock"
	"github.com/raizvet/backoffice-api/internal/application/usecase"
)

// StockHandler trata depósitos, movimentos e saldos de estoque (protegido).
type StockHandler struct {
	depotUC    *usecase.DepotUseCase
	movementUC *stock.MovementUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(depotUC *usecase.DepotUseCase, movementUC *stock.MovementUseCase) *StockHandler {
	return &StockHandler{depotUC: depotUC, movementUC: movementUC}
}

// CreateDepot godoc
// @Summary      Cadastrar depósito
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepotRequest  true  "Dados do depósito"
// @Success      201   {object}  dto.DepotResponse
// @Router       /api/stock/depots [post]
func (h *StockHandler) CreateDepot(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.depotUC.Create(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDepots godoc
// @Summary      Listar depósitos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepotResponse
// @Router       /api/stock/depots [get]
func (h *StockHandler) ListDepots(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.depotUC.List(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateDepot godoc
// @Summary      Atualizar depósito
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do depósito"
// @Param        body  body  dto.UpdateDepotRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.DepotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/depots/{id} [put]
func (h *StockHandler) UpdateDepot(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.depotUC.Update(companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimento de estoque
// @Description  IN soma, OUT subtrai sem deixar saldo negativo, ADJUSTMENT aceita delta positivo ou negativo.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterStockMovementRequest  true  "Movimento"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RegisterStockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.movementUC.Register(c.UserContext(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Movements godoc
// @Summary      Histórico de movimentos
// @Description  Lista movimentos por depósito ou por item, mais recentes primeiro. Informe exatamente um dos filtros depot_id/item_sku.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        depot_id  query  string  false  "ID do depósito"
// @Param        item_sku  query  string  false  "SKU do item"
// @Param        from      query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        to        query  string  false  "Data final (YYYY-MM-DD)"
// @Param        limit     query  int     false  "Limite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	in := dto.MovementHistoryRequest{
		DepotID: c.Query("depot_id"),
		ItemSKU: c.Query("item_sku"),
		Page:    dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)},
	}
	if from, ok := parseQueryDate(c, "from"); ok {
		in.From = &from
	}
	if to, ok := parseQueryDate(c, "to"); ok {
		in.To = &to
	}
	out, err := h.movementUC.History(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteDepot godoc
// @Summary      Remover depósito
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID do depósito"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/depots/{id} [delete]
func (h *StockHandler) DeleteDepot(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.depotUC.Delete(companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Levels godoc
// @Summary      Listar saldos do depósito
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do depósito"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/stock/depots/{id}/levels [get]
func (h *StockHandler) Levels(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.movementUC.Levels(companyID, c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ZeroDepot godoc
// @Summary      Zerar depósito
// @Description  Zera todos os saldos do depósito em uma única transação, com um ADJUSTMENT negativo por item sob o mesmo transaction_id.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do depósito"
// @Success      200   {object}  dto.ZeroDepotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/depots/{id}/zero [post]
func (h *StockHandler) ZeroDepot(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in struct {
		Reason string `json:"reason"`
	}
	// Corpo opcional: sem body, a razão padrão é aplicada.
	_ = c.BodyParser(&in)
	out, err := h.movementUC.ZeroDepot(c.UserContext(), companyID, GetUserID(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

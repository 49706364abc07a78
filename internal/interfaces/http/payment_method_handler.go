package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/application/usecase"
)

// PaymentMethodHandler trata as requisições HTTP de formas de pagamento (protegido).
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUseCase
}

// NewPaymentMethodHandler constrói o handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar forma de pagamento
// @Tags         payment-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentMethodRequest  true  "Dados da forma de pagamento"
// @Success      201   {object}  dto.PaymentMethodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment-methods [post]
func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreatePaymentMethodRequest
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
// @Summary      Obter forma de pagamento por ID
// @Tags         payment-methods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da forma de pagamento"
// @Success      200  {object}  dto.PaymentMethodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [get]
func (h *PaymentMethodHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar formas de pagamento
// @Tags         payment-methods
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar forma de pagamento
// @Tags         payment-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da forma de pagamento"
// @Param        body  body  dto.UpdatePaymentMethodRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.PaymentMethodResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePaymentMethodRequest
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
// @Summary      Remover forma de pagamento
// @Tags         payment-methods
// @Security     Bearer
// @Param        id  path  string  true  "ID da forma de pagamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

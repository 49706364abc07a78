package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/application/usecase"
)

// HospitalizationHandler trata o quadro de internação veterinária (protegido).
type HospitalizationHandler struct {
	uc *usecase.HospitalizationUseCase
}

// NewHospitalizationHandler constrói o handler.
func NewHospitalizationHandler(uc *usecase.HospitalizationUseCase) *HospitalizationHandler {
	return &HospitalizationHandler{uc: uc}
}

// Create godoc
// @Summary      Admitir paciente
// @Tags         hospitalizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStayRequest  true  "Dados da internação"
// @Success      201   {object}  dto.StayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hospitalizations [post]
func (h *HospitalizationHandler) Create(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateStayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Board godoc
// @Summary      Quadro de internações
// @Description  Internações agrupadas por coluna: admitted, observation, surgery, discharged.
// @Tags         hospitalizations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StayBoardResponse
// @Router       /api/hospitalizations/board [get]
func (h *HospitalizationHandler) Board(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Board(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter internação por ID
// @Tags         hospitalizations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da internação"
// @Success      200  {object}  dto.StayResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitalizations/{id} [get]
func (h *HospitalizationHandler) GetByID(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Atualizar internação
// @Description  Mudar o status para discharged carimba a data de alta; sair de discharged a limpa.
// @Tags         hospitalizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da internação"
// @Param        body  body  dto.UpdateStayRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.StayResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hospitalizations/{id} [put]
func (h *HospitalizationHandler) Update(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStayRequest
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
// @Summary      Remover internação
// @Tags         hospitalizations
// @Security     Bearer
// @Param        id  path  string  true  "ID da internação"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitalizations/{id} [delete]
func (h *HospitalizationHandler) Delete(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

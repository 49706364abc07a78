package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/payables"
)

// AgendaHandler trata a agenda de pagamentos e suas exportações (protegido).
type AgendaHandler struct {
	uc *payables.AgendaUseCase
}

// NewAgendaHandler constrói o handler.
func NewAgendaHandler(uc *payables.AgendaUseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

// Agenda godoc
// @Summary      Painel da agenda de pagamentos
// @Description  Itens ordenados por vencimento mais o resumo por bucket, mesclando a agregação do banco com o recálculo local.
// @Tags         agenda
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Início da janela (YYYY-MM-DD, default hoje)"
// @Param        range  query  int     false  "Dias da janela"  default(7)
// @Success      200  {object}  dto.AgendaResponse
// @Router       /api/payables/agenda [get]
func (h *AgendaHandler) Agenda(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	start, rangeDays := agendaParams(c)
	out, err := h.uc.Agenda(c.UserContext(), companyID, start, rangeDays)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar agenda em PDF
// @Tags         agenda
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  false  "Início da janela (YYYY-MM-DD)"
// @Param        range  query  int     false  "Dias da janela"  default(7)
// @Success      200  {file}  binary
// @Router       /api/payables/agenda/pdf [get]
func (h *AgendaHandler) ExportPDF(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	start, rangeDays := agendaParams(c)
	data, err := h.uc.ExportPDF(c.UserContext(), companyID, start, rangeDays)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment("agenda", "pdf"))
	return c.Send(data)
}

// ExportXLSX godoc
// @Summary      Exportar agenda em planilha XLSX
// @Tags         agenda
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start  query  string  false  "Início da janela (YYYY-MM-DD)"
// @Param        range  query  int     false  "Dias da janela"  default(7)
// @Success      200  {file}  binary
// @Router       /api/payables/agenda/xlsx [get]
func (h *AgendaHandler) ExportXLSX(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	start, rangeDays := agendaParams(c)
	data, err := h.uc.ExportXLSX(c.UserContext(), companyID, start, rangeDays)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, attachment("agenda", "xlsx"))
	return c.Send(data)
}

func agendaParams(c *fiber.Ctx) (time.Time, int) {
	start, _ := parseQueryDate(c, "start")
	return start, c.QueryInt("range", payables.DefaultAgendaRangeDays)
}

func attachment(base, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s-%s.%s"`, base, time.Now().Format("20060102"), ext)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/auth"
	"github.com/raizvet/backoffice-api/internal/application/dto"
)

// AuthHandler trata login, cadastro de usuários e bootstrap de empresa.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterUser godoc
// @Summary      Cadastrar usuário na empresa
// @Description  Cria um usuário na empresa do solicitante. Restrito a administradores.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "email, password, name, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/users [post]
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password deve ter pelo menos 8 caracteres"})
	}
	out, err := h.uc.RegisterUser(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCompany godoc
// @Summary      Obter a empresa do solicitante
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Router       /api/auth/companies/me [get]
func (h *AuthHandler) GetCompany(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetCompany(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateCompany godoc
// @Summary      Atualizar a empresa do solicitante
// @Description  Atualização parcial; trocar o CNPJ para um já usado é 409.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/companies/me [put]
func (h *AuthHandler) UpdateCompany(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateCompany(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuários da empresa
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.UserResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListUsers(companyID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateCompany godoc
// @Summary      Criar empresa (bootstrap)
// @Description  Cria a empresa e seu primeiro usuário administrador.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Dados da empresa e do admin"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/companies [post]
func (h *AuthHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.AdminPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "admin_password deve ter pelo menos 8 caracteres"})
	}
	out, err := h.uc.CreateCompany(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

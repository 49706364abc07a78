package entity

import "time"

// Papéis de usuário para o RBAC do back office.
const (
	RoleAdmin       = "admin"
	RoleFuncionario = "funcionario"
)

// User usuário do back office.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | funcionario
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

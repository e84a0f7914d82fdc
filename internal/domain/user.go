package domain

import "time"

// User representa um operador do sistema de controle de acesso.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role         UserRole  `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// IsValid informa se o papel é um dos conhecidos.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// UserRegistration representa o payload de entrada para o registro.
type UserRegistration struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate é o payload de PUT /v1/users/{id}. Campos nil não são alterados;
// Active=false desativa o usuário (a exclusão pelo painel é lógica).
type UserUpdate struct {
	Name    *string   `json:"name,omitempty"`
	Surname *string   `json:"surname,omitempty"`
	Role    *UserRole `json:"role,omitempty" swaggertype:"string" example:"user"`
	Active  *bool     `json:"active,omitempty"`
}

// IsEmpty informa se nenhum campo foi enviado.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Surname == nil && u.Role == nil && u.Active == nil
}

// UserFilter restringe a listagem de usuários.
type UserFilter struct {
	OnlyActive bool
}

// LoginResult é devolvido pelo login: o token e o usuário autenticado.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

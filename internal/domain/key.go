package domain

import "time"

// Key representa uma credencial (chave física ou lógica) emitida para um usuário.
type Key struct {
	ID          string       `json:"id"`
	UserID      *string      `json:"user_id"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Permission associa uma chave a um único dia da semana.
// Existe no máximo uma Permission por (KeyID, DayOfWeek).
type Permission struct {
	ID        string           `json:"id"`
	KeyID     string           `json:"key_id"`
	DayOfWeek DayOfWeek        `json:"day_of_week"`
	Schedules []ScheduleWindow `json:"schedules"`
}

// KeyAssociation é o payload de PUT /v1/keys/{id}.
type KeyAssociation struct {
	UserID      string `json:"user_id"`
	Description string `json:"description"`
}

// PermissionByDay indexa as permissões de uma chave pelo dia.
func PermissionByDay(perms []Permission) map[DayOfWeek]Permission {
	byDay := make(map[DayOfWeek]Permission, len(perms))
	for _, p := range perms {
		byDay[p.DayOfWeek] = p
	}
	return byDay
}

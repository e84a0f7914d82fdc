package user

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"goacesso/internal/api/respond"
	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

// UserService define o contrato para as operações de registro e login.
type UserService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, email string, password string) (domain.LoginResult, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)
}

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Email    string `json:"email" example:"porteiro@example.com"`
	Password string `json:"password" example:"segredo123"`
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterUserHandler lida com a requisição POST /v1/signup.
// @Summary Registra um novo usuário
// @Description Cria um novo usuário, hasheia a senha e salva no banco de dados.
// @Tags users
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Credenciais de registro (email e senha)"
// @Success 201 {object} domain.User "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido (JSON malformado ou campos obrigatórios ausentes)"
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /signup [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.UserRegistration
	if err := respond.Decode(r, &reg); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	newUser, err := h.Service.Register(r.Context(), reg)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	// PasswordHash não aparece na resposta (tag json:"-").
	respond.JSON(w, h.Logger, http.StatusCreated, newUser)
}

// LoginUserHandler lida com a requisição POST /v1/login.
// @Summary Autentica um usuário e retorna um JWT
// @Description Recebe email/senha e emite um JSON Web Token, também devolvido no header Authorization.
// @Tags users
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Credenciais do usuário (email e senha)"
// @Success 200 {object} domain.LoginResult "Token JWT emitido"
// @Header 200 {string} Authorization "Bearer <token>"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /login [post]
func (h *Handler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var loginReq LoginRequest
	if err := respond.Decode(r, &loginReq); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	result, err := h.Service.Login(r.Context(), loginReq.Email, loginReq.Password)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	// O cliente móvel lê o token deste header.
	w.Header().Set("Authorization", "Bearer "+result.Token)
	respond.JSON(w, h.Logger, http.StatusOK, result)
}

// ListUsersHandler lida com a requisição GET /v1/users.
// @Summary Lista os usuários
// @Description Usada na escolha do dono de uma chave. active=true omite usuários desativados.
// @Tags users
// @Produce json
// @Param active query bool false "Somente usuários ativos"
// @Success 200 {array} domain.User "Lista de usuários"
// @Failure 400 {object} domain.ErrorResponse "Filtro inválido"
// @Failure 503 {object} domain.ErrorResponse "Falha de dependência"
// @Security ApiKeyAuth
// @Router /users [get]
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	var filter domain.UserFilter
	if raw := r.URL.Query().Get("active"); raw != "" {
		onlyActive, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Error(w, r, h.Logger, apperror.NewValidationError("O filtro 'active' deve ser true ou false."))
			return
		}
		filter.OnlyActive = onlyActive
	}

	users, err := h.Service.ListUsers(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, users)
}

// UpdateUserHandler lida com a requisição PUT /v1/users/{id}.
// @Summary Atualiza um usuário
// @Description Altera nome, sobrenome, papel ou status. {"active": false} desativa o usuário.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID do Usuário"
// @Param user body domain.UserUpdate true "Campos a alterar"
// @Success 200 {object} domain.User "Usuário atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.UserUpdate
	if err := respond.Decode(r, &upd); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.UpdateUser(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, updated)
}

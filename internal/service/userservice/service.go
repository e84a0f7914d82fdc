package userservice

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

// minPasswordLength é o tamanho mínimo aceito para senhas novas.
const minPasswordLength = 8

// maxNameLength acompanha o VARCHAR(120) de users.name e users.surname.
const maxNameLength = 120

// UserRepository é o contrato de persistência de usuários.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)
}

// TokenService é o contrato da camada de token (internal/pkg/token)
type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
}

// UserService define o serviço de lógica de negócio para a entidade User.
type UserService struct {
	UserRepo UserRepository
	TokenSvc TokenService
	logger   logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o Repositório.
func NewService(repo UserRepository, tokenSvc TokenService, logger logger.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		TokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Register registra um novo usuário no sistema.
// Ele faz o hashing da senha e lida com validações básicas.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(registration.Email))

	// 1. Validação Básica
	if email == "" || registration.Password == "" {
		return domain.User{}, apperror.NewValidationError("Email e senha são obrigatórios.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, apperror.NewValidationError("Email inválido.")
	}
	if len(registration.Password) < minPasswordLength {
		return domain.User{}, apperror.NewValidationError(fmt.Sprintf("A senha deve ter pelo menos %d caracteres.", minPasswordLength))
	}
	name, surname := strings.TrimSpace(registration.Name), strings.TrimSpace(registration.Surname)
	if len(name) > maxNameLength || len(surname) > maxNameLength {
		return domain.User{}, apperror.NewValidationError(fmt.Sprintf("Nome e sobrenome aceitam até %d caracteres.", maxNameLength))
	}

	// 2. Hashing da Senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha.", err)
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	// 3. Persistência. O papel padrão é "user"; administradores são promovidos no banco.
	user, err := s.UserRepo.Save(ctx, domain.User{
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
		Active:       true,
	})
	if err != nil {
		var conflict *apperror.ConflictError
		if errors.As(err, &conflict) {
			s.logger.Warn("Tentativa de registro com email já cadastrado.", map[string]interface{}{"email": email})
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O email '%s' já está em uso.", email))
		}
		return domain.User{}, apperror.AsDependency("Falha ao registrar usuário.", err)
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// Login autentica um usuário, verifica a senha e gera um JWT.
func (s *UserService) Login(ctx context.Context, email string, password string) (domain.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return domain.LoginResult{}, apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		// NotFound vira Unauthorized para não revelar quais emails existem.
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			s.logger.Warn("Login com email desconhecido.", map[string]interface{}{"email": email})
			return domain.LoginResult{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
		}
		return domain.LoginResult{}, apperror.AsDependency("Falha ao buscar usuário.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login com senha incorreta.", map[string]interface{}{"user_id": user.ID})
		return domain.LoginResult{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// Usuário desativado pelo painel não entra, mesmo com a senha certa.
	if !user.Active {
		s.logger.Warn("Login de usuário desativado.", map[string]interface{}{"user_id": user.ID})
		return domain.LoginResult{}, apperror.NewForbiddenError("Usuário desativado.")
	}

	tokenString, err := s.TokenSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Falha ao gerar token de autenticação.", err)
		return domain.LoginResult{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return domain.LoginResult{Token: tokenString, User: user}, nil
}

// ListUsers lista os operadores, usada na escolha do dono ao associar uma chave.
func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	users, err := s.UserRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Falha ao listar usuários no repositório.", err)
		return nil, apperror.AsDependency("Falha ao listar usuários.", err)
	}
	return users, nil
}

// UpdateUser altera nome, sobrenome, papel ou status de um usuário.
func (s *UserService) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	// 1. Validação Básica
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("ID de usuário inválido fornecido para atualização.", map[string]interface{}{"id": id})
		return domain.User{}, apperror.NewValidationError("O ID do usuário deve ser um UUID válido.")
	}
	if upd.IsEmpty() {
		return domain.User{}, apperror.NewValidationError("Informe ao menos um campo para atualizar.")
	}
	for _, field := range []*string{upd.Name, upd.Surname} {
		if field == nil {
			continue
		}
		*field = strings.TrimSpace(*field)
		if *field == "" || len(*field) > maxNameLength {
			return domain.User{}, apperror.NewValidationError(fmt.Sprintf("Nome e sobrenome devem ter entre 1 e %d caracteres.", maxNameLength))
		}
	}
	if upd.Role != nil && !upd.Role.IsValid() {
		return domain.User{}, apperror.NewValidationError(fmt.Sprintf("Papel inválido: %q.", *upd.Role))
	}

	// 2. Persistência
	user, err := s.UserRepo.Update(ctx, id, upd)
	if err != nil {
		return domain.User{}, apperror.AsDependency("Falha ao atualizar usuário.", err)
	}

	s.logger.Info("Usuário atualizado.", map[string]interface{}{"user_id": user.ID, "active": user.Active})
	return user, nil
}

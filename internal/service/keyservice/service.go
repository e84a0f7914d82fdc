package keyservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

// KeyRepository é o contrato de persistência das chaves.
type KeyRepository interface {
	GetKey(ctx context.Context, id string) (domain.Key, error)
	ListKeys(ctx context.Context) ([]domain.Key, error)
	AssociateUser(ctx context.Context, id string, assoc domain.KeyAssociation) (domain.Key, error)
}

// PermissionRepository devolve as permissões já com as janelas de horário.
type PermissionRepository interface {
	ListByKey(ctx context.Context, keyID string) ([]domain.Permission, error)
}

// Service implementa a lógica de negócio das chaves.
type Service struct {
	repo   KeyRepository
	perms  PermissionRepository
	logger logger.Logger
}

// NewService cria uma nova instância do Service de chaves.
func NewService(repo KeyRepository, perms PermissionRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		perms:  perms,
		logger: logger,
	}
}

// ListKeys lista todas as chaves cadastradas.
func (s *Service) ListKeys(ctx context.Context) ([]domain.Key, error) {
	keys, err := s.repo.ListKeys(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar chaves no repositório.", err)
		return nil, apperror.AsDependency("Falha ao listar chaves.", err)
	}
	return keys, nil
}

// GetKeyDetail devolve a chave com as permissões e as janelas de cada dia.
func (s *Service) GetKeyDetail(ctx context.Context, id string) (domain.Key, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("ID de chave inválido fornecido.", map[string]interface{}{"id": id})
		return domain.Key{}, apperror.NewValidationError("O ID da chave deve ser um UUID válido.")
	}

	key, err := s.repo.GetKey(ctx, id)
	if err != nil {
		return domain.Key{}, apperror.AsDependency("Falha ao buscar chave.", err)
	}

	// As permissões do GetKey vêm sem janelas; ListByKey traz a visão completa.
	perms, err := s.perms.ListByKey(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar permissões da chave.", err)
		return domain.Key{}, apperror.AsDependency("Falha ao buscar permissões da chave.", err)
	}
	key.Permissions = perms

	return key, nil
}

// AssociateUser vincula a chave a um usuário com a descrição do acesso.
func (s *Service) AssociateUser(ctx context.Context, id string, assoc domain.KeyAssociation) (domain.Key, error) {
	// 1. Validação Básica
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("ID de chave inválido fornecido para associação.", map[string]interface{}{"id": id})
		return domain.Key{}, apperror.NewValidationError("O ID da chave deve ser um UUID válido.")
	}
	if _, err := uuid.Parse(assoc.UserID); err != nil {
		return domain.Key{}, apperror.NewValidationError("O ID do usuário deve ser um UUID válido.")
	}
	assoc.Description = strings.TrimSpace(assoc.Description)
	if assoc.Description == "" {
		return domain.Key{}, apperror.NewValidationError("A descrição do acesso não pode ser vazia.")
	}

	// 2. Persistência
	key, err := s.repo.AssociateUser(ctx, id, assoc)
	if err != nil {
		return domain.Key{}, apperror.AsDependency("Falha ao associar chave.", err)
	}

	s.logger.Info("Chave associada ao usuário.", map[string]interface{}{"id": id, "user_id": assoc.UserID})
	return key, nil
}

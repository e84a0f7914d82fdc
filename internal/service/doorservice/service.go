package doorservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

// Limites acompanham as colunas de doors.
const (
	maxIdentificationLength = 64
	maxDescriptionLength    = 255
)

// DoorRepository é o contrato de persistência das portas.
type DoorRepository interface {
	List(ctx context.Context) ([]domain.Door, error)
	Create(ctx context.Context, in domain.DoorInput) (domain.Door, error)
	Update(ctx context.Context, id string, in domain.DoorInput) (domain.Door, error)
	Delete(ctx context.Context, id string) error
}

// Service implementa o cadastro de portas.
type Service struct {
	repo   DoorRepository
	logger logger.Logger
}

// NewService cria uma nova instância do Service de portas.
func NewService(repo DoorRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListDoors lista as portas cadastradas.
func (s *Service) ListDoors(ctx context.Context) ([]domain.Door, error) {
	doors, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar portas no repositório.", err)
		return nil, apperror.AsDependency("Falha ao listar portas.", err)
	}
	return doors, nil
}

// CreateDoor cadastra uma porta nova.
func (s *Service) CreateDoor(ctx context.Context, in domain.DoorInput) (domain.Door, error) {
	// 1. Validação de Regras de Negócio
	in, err := normalizeInput(in)
	if err != nil {
		s.logger.Warn("Cadastro de porta com payload inválido.", map[string]interface{}{"error": err.Error()})
		return domain.Door{}, err
	}

	// 2. Persistência
	door, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Door{}, apperror.AsDependency("Falha ao cadastrar porta.", err)
	}

	s.logger.Info("Porta cadastrada.", map[string]interface{}{"id": door.ID, "identification": door.Identification})
	return door, nil
}

// UpdateDoor troca identificação e descrição de uma porta.
func (s *Service) UpdateDoor(ctx context.Context, id string, in domain.DoorInput) (domain.Door, error) {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de porta inválido fornecido para atualização.", map[string]interface{}{"id": id})
		return domain.Door{}, err
	}
	in, err := normalizeInput(in)
	if err != nil {
		return domain.Door{}, err
	}

	door, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return domain.Door{}, apperror.AsDependency("Falha ao atualizar porta.", err)
	}

	s.logger.Info("Porta atualizada.", map[string]interface{}{"id": id})
	return door, nil
}

// DeleteDoor remove uma porta.
func (s *Service) DeleteDoor(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de porta inválido fornecido para exclusão.", map[string]interface{}{"id": id})
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.AsDependency("Falha ao remover porta.", err)
	}

	s.logger.Info("Porta removida.", map[string]interface{}{"id": id})
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID da porta deve ser um UUID válido.")
	}
	return nil
}

// normalizeInput apara os campos; o serial é guardado em maiúsculas.
func normalizeInput(in domain.DoorInput) (domain.DoorInput, error) {
	in.Identification = strings.ToUpper(strings.TrimSpace(in.Identification))
	in.Description = strings.TrimSpace(in.Description)

	if in.Identification == "" {
		return in, apperror.NewValidationError("Informe o serial da porta.")
	}
	if in.Description == "" {
		return in, apperror.NewValidationError("Informe a descrição da porta.")
	}
	if len(in.Identification) > maxIdentificationLength {
		return in, apperror.NewValidationError(fmt.Sprintf("O serial aceita até %d caracteres.", maxIdentificationLength))
	}
	if len(in.Description) > maxDescriptionLength {
		return in, apperror.NewValidationError(fmt.Sprintf("A descrição aceita até %d caracteres.", maxDescriptionLength))
	}
	return in, nil
}

package door

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goacesso/internal/api/respond"
	"goacesso/internal/domain"
	"goacesso/internal/pkg/logger"
)

// DoorService define o contrato que o Handler espera da camada de Serviço.
type DoorService interface {
	ListDoors(ctx context.Context) ([]domain.Door, error)
	CreateDoor(ctx context.Context, in domain.DoorInput) (domain.Door, error)
	UpdateDoor(ctx context.Context, id string, in domain.DoorInput) (domain.Door, error)
	DeleteDoor(ctx context.Context, id string) error
}

// Handler agrupa os handlers de portas.
type Handler struct {
	Service DoorService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc DoorService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListDoorsHandler lida com a requisição GET /v1/doors.
// @Summary Lista as portas
// @Tags doors
// @Produce json
// @Success 200 {array} domain.Door "Lista de portas"
// @Failure 503 {object} domain.ErrorResponse "Falha de dependência"
// @Security ApiKeyAuth
// @Router /doors [get]
func (h *Handler) ListDoorsHandler(w http.ResponseWriter, r *http.Request) {
	doors, err := h.Service.ListDoors(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, doors)
}

// CreateDoorHandler lida com a requisição POST /v1/doors.
// @Summary Cadastra uma porta
// @Tags doors
// @Accept json
// @Produce json
// @Param door body domain.DoorInput true "Serial e descrição"
// @Success 201 {object} domain.Door "Porta cadastrada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Serial já cadastrado"
// @Security ApiKeyAuth
// @Router /doors [post]
func (h *Handler) CreateDoorHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.DoorInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	d, err := h.Service.CreateDoor(r.Context(), in)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusCreated, d)
}

// UpdateDoorHandler lida com a requisição PUT /v1/doors/{id}.
// @Summary Atualiza uma porta
// @Tags doors
// @Accept json
// @Produce json
// @Param id path string true "ID da Porta"
// @Param door body domain.DoorInput true "Serial e descrição"
// @Success 200 {object} domain.Door "Porta atualizada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Porta não encontrada"
// @Failure 409 {object} domain.ErrorResponse "Serial já cadastrado"
// @Security ApiKeyAuth
// @Router /doors/{id} [put]
func (h *Handler) UpdateDoorHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.DoorInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	d, err := h.Service.UpdateDoor(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, d)
}

// DeleteDoorHandler lida com a requisição DELETE /v1/doors/{id}.
// @Summary Remove uma porta
// @Tags doors
// @Param id path string true "ID da Porta"
// @Success 204 "Porta removida"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Porta não encontrada"
// @Security ApiKeyAuth
// @Router /doors/{id} [delete]
func (h *Handler) DeleteDoorHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteDoor(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

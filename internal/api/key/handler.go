package key

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goacesso/internal/api/respond"
	"goacesso/internal/domain"
	"goacesso/internal/pkg/logger"
)

// KeyService define o contrato que o Handler espera da camada de Serviço.
type KeyService interface {
	ListKeys(ctx context.Context) ([]domain.Key, error)
	GetKeyDetail(ctx context.Context, id string) (domain.Key, error)
	AssociateUser(ctx context.Context, id string, assoc domain.KeyAssociation) (domain.Key, error)
}

// Handler agrupa todos os métodos de Handler de chaves.
type Handler struct {
	Service KeyService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc KeyService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListKeysHandler lida com a requisição GET /v1/keys.
// @Summary Lista as chaves
// @Description Retorna todas as chaves cadastradas, sem as permissões.
// @Tags keys
// @Produce json
// @Success 200 {array} domain.Key "Lista de chaves"
// @Failure 503 {object} domain.ErrorResponse "Falha de dependência"
// @Security ApiKeyAuth
// @Router /keys [get]
func (h *Handler) ListKeysHandler(w http.ResponseWriter, r *http.Request) {
	keys, err := h.Service.ListKeys(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, keys)
}

// GetKeyHandler lida com a requisição GET /v1/keys/{id}.
// @Summary Obtém uma chave por ID
// @Description Retorna a chave com as permissões por dia e as janelas de horário de cada uma.
// @Tags keys
// @Produce json
// @Param id path string true "ID da Chave"
// @Success 200 {object} domain.Key "Chave encontrada"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Chave não encontrada"
// @Security ApiKeyAuth
// @Router /keys/{id} [get]
func (h *Handler) GetKeyHandler(w http.ResponseWriter, r *http.Request) {
	k, err := h.Service.GetKeyDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, k)
}

// AssociateUserHandler lida com a requisição PUT /v1/keys/{id}.
// @Summary Associa a chave a um usuário
// @Tags keys
// @Accept json
// @Produce json
// @Param id path string true "ID da Chave"
// @Param association body domain.KeyAssociation true "Usuário e descrição do acesso"
// @Success 200 {object} domain.Key "Chave atualizada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Chave não encontrada"
// @Security ApiKeyAuth
// @Router /keys/{id} [put]
func (h *Handler) AssociateUserHandler(w http.ResponseWriter, r *http.Request) {
	var assoc domain.KeyAssociation
	if err := respond.Decode(r, &assoc); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	k, err := h.Service.AssociateUser(r.Context(), chi.URLParam(r, "id"), assoc)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, k)
}

package restaurants

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/logging"
	"github.com/queroir/api/internal/restaurant/application"
	"github.com/queroir/api/internal/restaurant/domain"
	"github.com/queroir/api/internal/selection"
	"github.com/queroir/api/internal/validation"
)

// idParam returns the {id} path segment when it is a UUID. Otherwise it writes a 400.
func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if raw == "" {
		common.WriteError(w, http.StatusBadRequest, "ID do restaurante não informado")
		return "", false
	}
	if _, err := uuid.Parse(raw); err != nil {
		common.WriteError(w, http.StatusBadRequest, "ID do restaurante inválido")
		return "", false
	}
	return raw, true
}

// decode reads and validates a request body, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	return readBody(w, r, dst, false)
}

// decodeOptional is decode for endpoints where a missing body leaves dst at its zero value.
func decodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	return readBody(w, r, dst, true)
}

func readBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := common.DecodeJSON(w, r, dst)
	if err != nil && !(allowEmpty && errors.Is(err, common.ErrEmptyBody)) {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		common.WriteValidationError(w, verr)
		return false
	}
	return true
}

// writeServiceError maps domain and application errors onto HTTP statuses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		common.WriteError(w, http.StatusNotFound, "restaurante não encontrado")
	case errors.Is(err, domain.ErrDishRequiresVisit):
		common.WriteError(w, http.StatusConflict, "só é possível registrar pratos de restaurantes já visitados")
	case errors.Is(err, domain.ErrNameRequired):
		common.WriteError(w, http.StatusBadRequest, "nome é obrigatório")
	case errors.Is(err, domain.ErrAddressRequired):
		common.WriteError(w, http.StatusBadRequest, "endereço é obrigatório")
	case errors.Is(err, domain.ErrInvalidRating):
		common.WriteError(w, http.StatusBadRequest, "a nota deve estar entre 1 e 5")
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, selection.ErrInvalidCriteria):
		common.WriteError(w, http.StatusBadRequest, "status inválido: use want_to_go ou been_there")
	case errors.Is(err, application.ErrUnknownPool):
		common.WriteError(w, http.StatusBadRequest, "roleta inválida: use all, want_to_go ou favorites")
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(ctx).Error().Err(err).Str("action", action).Msg("store timeout")
		common.WriteError(w, http.StatusGatewayTimeout, "tempo esgotado ao acessar os dados")
	default:
		logging.Ctx(ctx).Error().Err(err).Str("action", action).Msg("request failed")
		common.WriteError(w, http.StatusInternalServerError, "erro interno ao processar a requisição")
	}
}

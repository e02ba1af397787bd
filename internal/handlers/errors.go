package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/logging"
	"github.com/BruksfildServices01/barberpro/internal/storage"
)

// businessStatus maps refusal codes to HTTP statuses; unlisted codes are 400.
var businessStatus = map[string]int{
	"appointment_not_found":  http.StatusNotFound,
	"client_not_found":       http.StatusNotFound,
	"not_found":              http.StatusNotFound,
	"cpf_already_registered": http.StatusConflict,
	"duplicate_cpf":          http.StatusConflict,
	"time_conflict":          http.StatusConflict,
	"invalid_state":          http.StatusConflict,
}

var businessMessage = map[string]string{
	"appointment_not_found":  "Agendamento não encontrado.",
	"client_not_found":       "Cliente não encontrado. Faça seu cadastro.",
	"not_found":              "Registro não encontrado.",
	"cpf_already_registered": "CPF já cadastrado.",
	"duplicate_cpf":          "CPF duplicado.",
	"time_conflict":          "Horário indisponível.",
	"invalid_state":          "Transição de status não permitida.",
	"invalid_cpf":            "CPF inválido.",
	"invalid_status":         "Status inválido.",
	"invalid_category":       "Categoria inválida.",
	"invalid_type":           "Tipo de cliente inválido.",
	"invalid_date":           "Data inválida.",
	"invalid_date_or_time":   "Data ou hora inválida.",
	"invalid_slot":           "Horário fora da grade de atendimento.",
	"too_soon":               "Horário inválido.",
	"service_not_found":      "Serviço não encontrado.",
	"professional_not_found": "Profissional não encontrado.",
}

// writeError renders err as the JSON error body.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		status, ok := businessStatus[code]
		if !ok {
			status = http.StatusBadRequest
		}
		msg, ok := businessMessage[code]
		if !ok {
			msg = "Dados inválidos."
		}
		httperr.Write(c, status, code, msg)
		return
	}

	_ = c.Error(err)
	if errors.Is(err, storage.ErrStorageFailure) {
		httperr.ServiceUnavailable(c, "storage_unavailable", "Armazenamento indisponível. Tente novamente.")
		return
	}

	logging.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected handler error")
	httperr.Internal(c, "internal_error", "Erro interno.")
}

func invalidRequest(c *gin.Context, err error) {
	httperr.Write(c, http.StatusBadRequest, "invalid_request", "Dados inválidos: "+err.Error())
}

func writeErrorCode(c *gin.Context, code string) {
	writeError(c, httperr.ErrBusiness(code))
}

package wizard_action_post

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	wizards Wizards
}

func New(log handlerLogger, wizards Wizards) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		wizards: wizards,
	}
}

// ServeHTTP применяет действие к черновику. Ошибка шага возвращается вместе
// с кодом 422, черновик при этом не меняется.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, respond.ErrNoActor)
		return
	}

	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidQuery)
		return
	}

	var req dto.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Action == "" {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidBody)
		return
	}

	var wz Wizard
	wz, err = h.wizards.Lookup(entities.DraftKind(vars["kind"]))
	if err != nil {
		respond.Error(w, h.log, http.StatusNotFound, err)
		return
	}

	result, err := wz.Act(r.Context(), actorID, id, req.ToEntity())
	if err != nil {
		status := respond.WizardStatus(err)
		if status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("kind", wz.Kind().String()),
				logger.NewField("action", req.Action),
				logger.NewField("error", err),
			).Error("wizard action")
		}
		respond.Error(w, h.log, status, respond.Message(status, err))
		return
	}

	if result.Intent.Kind == entities.IntentSubmitted {
		h.log.With(
			logger.NewField("kind", wz.Kind().String()),
			logger.NewField("actor", actorID),
			logger.NewField("location", result.Intent.Location),
		).Info("wizard submitted")
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromWizardResult(*result))
}

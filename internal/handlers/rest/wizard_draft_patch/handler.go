package wizard_draft_patch

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/pkg/logger"
)

// maxPatchSize форма мастера небольшая, больше не принимаем.
const maxPatchSize = 1 << 20

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

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPatchSize))
	if err != nil || !json.Valid(body) {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidBody)
		return
	}

	var wz Wizard
	wz, err = h.wizards.Lookup(entities.DraftKind(vars["kind"]))
	if err != nil {
		respond.Error(w, h.log, http.StatusNotFound, err)
		return
	}

	draft, err := wz.Patch(r.Context(), actorID, id, body)
	if err != nil {
		status := respond.WizardStatus(err)
		if status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("draft", id.String()),
				logger.NewField("error", err),
			).Error("patch wizard draft")
		}
		respond.Error(w, h.log, status, respond.Message(status, err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDraft(*draft))
}

package wizard_draft_post

import (
	"net/http"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, respond.ErrNoActor)
		return
	}

	var wz Wizard
	wz, err := h.wizards.Lookup(entities.DraftKind(mux.Vars(r)["kind"]))
	if err != nil {
		respond.Error(w, h.log, http.StatusNotFound, err)
		return
	}

	draft, err := wz.Start(r.Context(), actorID)
	if err != nil {
		h.log.With(
			logger.NewField("kind", wz.Kind().String()),
			logger.NewField("error", err),
		).Error("start wizard draft")
		status := respond.WizardStatus(err)
		respond.Error(w, h.log, status, respond.Message(status, err))
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromDraft(*draft))
}

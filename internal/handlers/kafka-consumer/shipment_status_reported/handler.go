package shipment_status_reported

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tracker/internal/entities"
	shipmentservice "tracker/internal/service/shipment"
	"tracker/pkg/logger"
)

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.status.reported: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("shipment.status.reported: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true - прервать ConsumeClaim без коммита, сообщение
// будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event reportedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("shipment.status.reported handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("serial", event.SerialNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.status.reported processing")

	change := entities.ShipmentChange{
		SerialNumber: event.SerialNumber,
		Status:       entities.ShipmentStatus(event.Status),
		Remarks:      event.Remarks,
		UpdatedBy:    event.ReportedBy,
	}

	appended, err := h.shipmentService.AppendUpdate(ctx, shipmentservice.ChannelKafka, change)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.reported handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrInvalidStatus),
			errors.Is(err, shipmentservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.reported handler rejected event")

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.reported handler unknown serial")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("shipment.status.reported handler failed to append update")
		}
		sess.MarkMessage(message, "")
		return false
	}

	version := 0
	if len(appended) > 0 {
		version = appended[0].Version
	}
	msgLog.With(
		logger.NewField("lines", len(appended)),
		logger.NewField("version", version),
	).Info("shipment.status.reported: processed")

	sess.MarkMessage(message, "")
	return false
}

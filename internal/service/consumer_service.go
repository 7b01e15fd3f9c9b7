package service

import (
	"context"
	"encoding/json"
	"time"

	"therapy-insights-be/internal/dto"
	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/pkg/logger"
	"therapy-insights-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService drains the audit topic and persists one audit log row per
// insight lifecycle event.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	auditLogRepo contract.AuditLogRepository
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditLogRepo contract.AuditLogRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		auditLogRepo: auditLogRepo,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.InsightAuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal audit message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed messages would retry forever otherwise
		return
	}

	detail := map[string]interface{}{}
	if payload.Mode != "" {
		detail["mode"] = payload.Mode
	}
	if payload.Model != "" {
		detail["model"] = payload.Model
	}
	if payload.Outcome != "" {
		detail["outcome"] = payload.Outcome
	}
	if payload.ItemCount > 0 {
		detail["itemCount"] = payload.ItemCount
	}

	log := &entity.AuditLog{
		Id:        uuid.New(),
		PatientId: payload.PatientId,
		Action:    payload.Action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}

	if err := cs.auditLogRepo.Create(ctx, log); err != nil {
		cs.logger.Error("ConsumerService", "Failed to persist audit log", map[string]interface{}{
			"patientId": payload.PatientId,
			"action":    payload.Action,
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

package service

import (
	"context"
	"encoding/json"
	"time"

	"wine-club-be/internal/dto"
	"wine-club-be/internal/entity"
	"wine-club-be/internal/pkg/logger"
	"wine-club-be/internal/repository/unitofwork"
	"wine-club-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

const scanLogModule = "SCAN_LOG"

const (
	defaultStoreRetries  = 3
	defaultStoreInterval = 200 * time.Millisecond
	maxStoreInterval     = 5 * time.Second
)

type IScanConsumerService interface {
	Consume(ctx context.Context) error
}

type scanConsumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	events     events.Publisher
	log        logger.ILogger
	retry      middleware.Retry
}

type ScanConsumerOption func(*scanConsumerService)

// WithStoreRetry bounds how often a failed scan-log write is retried before the message is dropped.
func WithStoreRetry(maxRetries int, initialInterval time.Duration) ScanConsumerOption {
	return func(cs *scanConsumerService) {
		cs.retry.MaxRetries = maxRetries
		cs.retry.InitialInterval = initialInterval
	}
}

func NewScanConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher events.Publisher,
	log logger.ILogger,
	opts ...ScanConsumerOption,
) IScanConsumerService {
	cs := &scanConsumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		events:     eventPublisher,
		log:        log,
		retry: middleware.Retry{
			MaxRetries:      defaultStoreRetries,
			InitialInterval: defaultStoreInterval,
			MaxInterval:     maxStoreInterval,
			Multiplier:      2,
			Logger:          watermill.NopLogger{},
		},
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

func (cs *scanConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	handle := cs.retry.Middleware(func(msg *message.Message) ([]*message.Message, error) {
		return nil, cs.processMessage(ctx, msg)
	})

	go func() {
		for msg := range messages {
			if _, err := handle(msg); err != nil {
				cs.log.Error(scanLogModule, "Dropping scan event after retries", map[string]interface{}{
					"message_id": msg.UUID,
					"attempts":   cs.retry.MaxRetries + 1,
					"error":      err.Error(),
				})
			}
			msg.Ack()
		}
	}()

	return nil
}

// processMessage stores one scan event. Only storage errors are returned.
func (cs *scanConsumerService) processMessage(ctx context.Context, msg *message.Message) error {
	var payload dto.ScanEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error(scanLogModule, "Failed to unmarshal scan event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return nil
	}

	result := fromWineResultResponse(payload.Result)
	scan := &entity.ScanLog{
		Id:            payload.ScanId,
		UserId:        payload.UserId,
		WineName:      payload.WineName,
		Outcome:       entity.ScanOutcome(payload.Outcome),
		CuratedStatus: entity.CuratedStatus(payload.CuratedStatus),
		DurationMs:    payload.DurationMs,
		Result:        &result,
		CreatedAt:     payload.OccurredAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ScanLogRepository().Create(ctx, scan); err != nil {
		cs.log.Error(scanLogModule, "Failed to store scan log", map[string]interface{}{
			"scan_id": payload.ScanId.String(),
			"error":   err.Error(),
		})
		return err
	}

	data := map[string]interface{}{
		"scan_id":        payload.ScanId.String(),
		"wine_name":      payload.WineName,
		"outcome":        payload.Outcome,
		"curated_status": payload.CuratedStatus,
		"duration_ms":    payload.DurationMs,
	}
	if payload.UserId != nil {
		data["user_id"] = payload.UserId.String()
	}
	if err := cs.events.Publish(ctx, events.New(events.TypeWineScanned, data)); err != nil {
		cs.log.Warn(scanLogModule, "Failed to forward scan event", map[string]interface{}{
			"scan_id": payload.ScanId.String(),
			"error":   err.Error(),
		})
	}

	cs.log.Info(scanLogModule, "Scan recorded", data)
	return nil
}

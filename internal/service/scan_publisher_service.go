package service

import (
	"context"
	"encoding/json"

	"wine-club-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IScanPublisherService interface {
	PublishScan(ctx context.Context, msg dto.ScanEventMessage) error
}

type scanPublisherService struct {
	topicName string
	publisher message.Publisher
}

func NewScanPublisherService(topicName string, publisher message.Publisher) IScanPublisherService {
	return &scanPublisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (s *scanPublisherService) PublishScan(ctx context.Context, msg dto.ScanEventMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	m := message.NewMessage(watermill.NewUUID(), payload)
	m.SetContext(ctx)
	return s.publisher.Publish(s.topicName, m)
}

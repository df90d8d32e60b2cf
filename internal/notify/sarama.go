package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/platelunch/ordercore/internal/models"
)

type SaramaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

type orderEvent struct {
	StoreID   string    `json:"store_id"`
	OrderID   string    `json:"order_id"`
	EventType string    `json:"event_type"`
	EmittedAt time.Time `json:"emitted_at"`
}

func NewSaramaNotifier(config *models.Config) (*SaramaNotifier, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(config.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return &SaramaNotifier{producer: producer, topic: config.OrderTopic}, nil
}

func (s *SaramaNotifier) NotifyOwnerNewOrder(ctx context.Context, storeID, orderID string) error {
	event := orderEvent{
		StoreID:   storeID,
		OrderID:   orderID,
		EventType: "new_order",
		EmittedAt: time.Now(),
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(storeID),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send order event to topic %s: %v", s.topic, err)
		return err
	}
	return nil
}

func (s *SaramaNotifier) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}

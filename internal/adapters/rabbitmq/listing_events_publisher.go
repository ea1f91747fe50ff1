package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEventsPublisher emits domain events to the listing_events exchange.
// Messages are persistent JSON with an event id and the request trace id in
// the headers.
type ListingEventsPublisher struct {
	publisher *rabbitmq_producer.Publisher
	logger    port.LoggerPort
}

func NewListingEventsPublisher(brokerURL string, logger port.LoggerPort, mqLogger rabbitmq_common.Logger) (*ListingEventsPublisher, error) {
	connManager, err := rabbitmq_common.GetManager(brokerURL, mqLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection manager: %w", err)
	}

	publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: brokerURL},
		ExchangeName:             constants.ListingEventsExchange,
		ExchangeType:             constants.ListingEventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   mqLogger,
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	return &ListingEventsPublisher{
		publisher: publisher,
		logger:    logger.WithFields(port.Fields{"component": "listing_events_publisher"}),
	}, nil
}

type listingEvent struct {
	ListingID int64 `json:"listing_id"`
}

type searchSavedEvent struct {
	UserID   int64 `json:"user_id"`
	SearchID int64 `json:"search_id"`
}

func (p *ListingEventsPublisher) ListingCreated(ctx context.Context, listingID int64) error {
	return p.publish(ctx, constants.ListingCreatedRoutingKey, listingEvent{ListingID: listingID})
}

func (p *ListingEventsPublisher) ListingDeleted(ctx context.Context, listingID int64) error {
	return p.publish(ctx, constants.ListingDeletedRoutingKey, listingEvent{ListingID: listingID})
}

func (p *ListingEventsPublisher) SearchSaved(ctx context.Context, userID, searchID int64) error {
	return p.publish(ctx, constants.SearchSavedRoutingKey, searchSavedEvent{
		UserID:   userID,
		SearchID: searchID,
	})
}

func (p *ListingEventsPublisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	headers := amqp.Table{
		"event_id": uuid.New().String(),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		headers["trace_id"] = traceID
	}

	err = p.publisher.Publish(ctx, routingKey, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	p.logger.Debug("event published", port.Fields{"routing_key": routingKey})
	return nil
}

func (p *ListingEventsPublisher) Close() error {
	return p.publisher.Close()
}

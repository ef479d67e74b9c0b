// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"talentflow-be/internal/model"
	"talentflow-be/internal/pkg/logger"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/events"
	pktNats "talentflow-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub. Recipients are display
// names, the same strings the engines receive as acting identities.
type NotificationDelivery interface {
	Send(recipient string, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	// Subscribe to all recruiting events with a durable consumer
	err := s.subscriber.Subscribe("talent.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to talent.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := uow.NotificationRepository().FindTypeByCode(ctx, event.EventType())
	if err != nil || config == nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Config not found for code: '%s'", event.EventType()), nil)
		return nil
	}
	if !config.IsActive {
		s.logger.Info("NotificationService", fmt.Sprintf("Notification type '%s' is inactive", event.EventType()), nil)
		return nil
	}

	// Broadcast types are push-only: nobody's inbox, everybody's screen.
	if config.TargetType == "BROADCAST" {
		notif := s.buildNotification("", config, event)
		if s.delivery != nil {
			s.delivery.Broadcast(notif)
		}
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, uow, config, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", event.EventType()), map[string]interface{}{"error": err})
		return err // NATS will retry if we return error
	}
	s.logger.Info("NotificationService", "Recipients resolved", map[string]interface{}{"count": len(recipients), "type": config.TargetType})

	for _, recipient := range recipients {
		notif := s.buildNotification(recipient, config, event)

		if err := uow.NotificationRepository().Create(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for %s", recipient), map[string]interface{}{"error": err})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(recipient, notif)
		}
	}

	return nil
}

// resolveRecipients maps a target type onto display names. There is no
// user table: "ACTOR" echoes back to whoever acted, "OWNER" looks up the
// hiring manager of the job referenced in the payload.
func (s *NotificationService) resolveRecipients(ctx context.Context, uow unitofwork.UnitOfWork, config *model.NotificationType, event events.Event) ([]string, error) {
	var recipients []string
	payload := event.Payload()

	switch config.TargetType {
	case "ACTOR":
		if actor, ok := payload["actor"].(string); ok && actor != "" {
			recipients = append(recipients, actor)
		}

	case "OWNER":
		jobId, ok := intFromPayload(payload["job_id"])
		if !ok {
			s.logger.Warn("NotificationService", fmt.Sprintf("TargetType OWNER but no job_id in payload for event %s", event.EventType()), nil)
			return nil, nil
		}
		req, err := uow.RequisitionRepository().FindOne(ctx, specification.ByID{ID: jobId})
		if err != nil {
			return nil, err
		}
		if req != nil && req.HiringManager != "" {
			recipients = append(recipients, req.HiringManager)
		}

	case "APPROVER":
		if approver, ok := payload["approver"].(string); ok && approver != "" {
			recipients = append(recipients, approver)
		}
	}

	return recipients, nil
}

// intFromPayload handles the json round-trip: numbers come back float64.
func intFromPayload(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}
	return 0, false
}

func (s *NotificationService) buildNotification(recipient string, config *model.NotificationType, event events.Event) model.Notification {
	// Simple Template Engine
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	actor, _ := payload["actor"].(string)

	entityType := ""
	entityID := ""
	if et, ok := payload["entity_type"].(string); ok {
		entityType = et
	}
	if eid, ok := payload["entity_id"].(string); ok {
		entityID = eid
	}
	// Pipeline events carry candidate/job ids instead of a generic entity ref.
	if entityType == "" {
		if candId, ok := intFromPayload(payload["candidate_id"]); ok {
			entityType = "candidate"
			entityID = strconv.Itoa(candId)
		}
	}

	// Metadata is the payload enriched with an action_url for deep linking.
	metaMap := make(map[string]interface{})
	for k, v := range payload {
		metaMap[k] = v
	}
	if entityType != "" && entityID != "" {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID)
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		Recipient:  recipient,
		Actor:      actor,
		TypeCode:   config.Code,
		EntityType: entityType,
		EntityID:   entityID,
		Title:      config.DisplayName,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// GetNotifications fetches notifications for a recipient.
func (s *NotificationService) GetNotifications(ctx context.Context, recipient string, limit, offset int) ([]*model.Notification, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().FindByRecipient(ctx, recipient, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, recipient string) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().CountUnread(ctx, recipient)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id string, recipient string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, recipient)
}

// MarkAllAsRead marks all notifications as read for a recipient.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, recipient string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, recipient)
}

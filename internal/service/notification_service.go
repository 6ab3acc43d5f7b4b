package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/events"
	"github.com/spec-kit/hospital-record-service/internal/mail"
)

// NotificationService turns domain events into outbound email. Sends run
// on detached goroutines: the HTTP response never waits for the mail
// server, and delivery failures are logged only.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
	n.dispatcher.Subscribe(events.EventEmailVerified, n.handleEmailVerified)
	n.dispatcher.Subscribe(events.EventPasswordChanged, n.handlePasswordChanged)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MailTokenPayload)
	if !ok {
		n.logger.Warn("unexpected payload for user_registered", zap.String("event_id", event.ID))
		return nil
	}
	go func() {
		if err := n.mailer.SendVerificationLink(payload.Email, payload.Token); err != nil {
			n.logger.Error("verification mail failed", zap.String("to", payload.Email), zap.Error(err))
		}
	}()
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MailTokenPayload)
	if !ok {
		n.logger.Warn("unexpected payload for password_reset_requested", zap.String("event_id", event.ID))
		return nil
	}
	go func() {
		if err := n.mailer.SendResetLink(payload.Email, payload.Token); err != nil {
			n.logger.Error("reset mail failed", zap.String("to", payload.Email), zap.Error(err))
		}
	}()
	return nil
}

func (n *NotificationService) handleEmailVerified(_ context.Context, event events.Event) error {
	n.logger.Info("email verified", zap.String("subject", event.Subject))
	return nil
}

func (n *NotificationService) handlePasswordChanged(_ context.Context, event events.Event) error {
	n.logger.Info("password changed", zap.String("subject", event.Subject))
	return nil
}

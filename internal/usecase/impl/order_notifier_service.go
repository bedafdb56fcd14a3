package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"kitchen/config"
	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"
	"kitchen/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Firebase multicast limit
const pushBatchSize = 500

type orderNotifierService struct {
	settingsRepo   repository.SettingsRepository
	deviceRepo     repository.DeviceRepository
	deliveryRepo   repository.NotificationDeliveryRepository
	smsSender      service.SMSSender
	emailSender    service.EmailSender
	pushService    service.NotificationService
	metrics        service.MetricsRecorder
	location       *time.Location
	smsConcurrency int
	signature      string
	logger         *slog.Logger
}

// OrderNotifierServiceParams holds dependencies for OrderNotifierService, injected by Fx.
type OrderNotifierServiceParams struct {
	fx.In

	Config       *config.Config
	SettingsRepo repository.SettingsRepository
	DeviceRepo   repository.DeviceRepository
	DeliveryRepo repository.NotificationDeliveryRepository
	SMSSender    service.SMSSender
	EmailSender  service.EmailSender
	PushService  service.NotificationService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewOrderNotifierService creates the order-created notifier
func NewOrderNotifierService(params OrderNotifierServiceParams) (usecase.OrderNotifierUsecase, error) {
	loc, err := params.Config.Notifier.Location()
	if err != nil {
		return nil, err
	}

	return &orderNotifierService{
		settingsRepo:   params.SettingsRepo,
		deviceRepo:     params.DeviceRepo,
		deliveryRepo:   params.DeliveryRepo,
		smsSender:      params.SMSSender,
		emailSender:    params.EmailSender,
		pushService:    params.PushService,
		metrics:        params.Metrics,
		location:       loc,
		smsConcurrency: max(params.Config.Notifier.SMSConcurrency, 1),
		signature:      params.Config.Notifier.Signature,
		logger:         params.Logger,
	}, nil
}

func (s *orderNotifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// deliveryLog collects channel outcomes from concurrent senders.
type deliveryLog struct {
	mu      sync.Mutex
	orderID uuid.UUID
	entries []*entity.NotificationDelivery
}

func (l *deliveryLog) record(channel entity.NotificationChannel, recipient, providerID string, sendErr error) {
	entry := &entity.NotificationDelivery{
		ID:                uuid.Must(uuid.NewV7()),
		OrderID:           l.orderID,
		Channel:           channel,
		Recipient:         recipient,
		Status:            entity.DeliveryStatusSent,
		ProviderMessageID: providerID,
		SentAt:            time.Now(),
	}
	if sendErr != nil {
		entry.Status = entity.DeliveryStatusFailed
		entry.ErrorMessage = sendErr.Error()
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
}

// HandleOrderCreated loads settings fresh and dispatches every enabled channel.
// Missing settings mean notifications are off. Only a settings read failure is retryable.
func (s *orderNotifierService) HandleOrderCreated(ctx context.Context, event *service.OrderEvent) error {
	if event == nil || event.Order == nil {
		return errors.New("order event carries no order")
	}
	if event.EventType != constants.EventTypeOrderCreated {
		s.log(ctx).Info("Ignoring unsupported event type", slog.String("event_type", event.EventType))

		return nil
	}

	order := event.Order
	logger := s.log(ctx).With(
		slog.String("order_id", order.ID.String()),
		slog.String("order_number", order.OrderNumber),
	)

	settings, err := s.settingsRepo.FindSettings(ctx, constants.SettingsSingletonID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		logger.Info("No notification settings found, skipping notifications")

		return nil
	}
	if err != nil {
		return domainerrors.NewRetryableError(errors.Wrap(err, "failed to load notification settings"))
	}

	msg := newOrderMessage(order, s.location)
	deliveries := &deliveryLog{orderID: order.ID}

	s.sendSMS(ctx, logger, settings, msg, deliveries)
	s.sendEmail(ctx, logger, settings, msg, deliveries)
	s.sendPush(ctx, logger, settings, order, msg, deliveries)

	s.saveDeliveries(ctx, logger, deliveries.entries)

	logger.Info("Order notifications processed", slog.Int("deliveries", len(deliveries.entries)))

	return nil
}

// sendSMS texts every configured number concurrently and waits for all of them.
func (s *orderNotifierService) sendSMS(ctx context.Context, logger *slog.Logger, settings *entity.NotificationSettings, msg *orderMessage, deliveries *deliveryLog) {
	recipients := settings.SMSRecipients()
	if len(recipients) == 0 {
		return
	}

	if !s.smsSender.Configured() {
		logger.Warn("SMS enabled but the SMS provider is not configured", slog.Int("recipients", len(recipients)))
		for _, raw := range recipients {
			deliveries.record(entity.ChannelSMS, util.NormalizePhoneNumber(raw), "", domainerrors.ErrSMSNotConfigured)
		}

		return
	}

	body := msg.smsBody(s.signature)
	logger.Info("Sending SMS notifications", slog.Int("recipients", len(recipients)))

	var g errgroup.Group
	g.SetLimit(s.smsConcurrency)

	for _, raw := range recipients {
		to := util.NormalizePhoneNumber(raw)

		g.Go(func() error {
			result, err := s.smsSender.SendSMS(ctx, to, body)
			if err != nil {
				logger.Error("SMS notification failed", slog.String("to", util.MaskPhoneNumber(to)), slog.Any("error", err))
				deliveries.record(entity.ChannelSMS, to, "", err)

				return nil
			}

			deliveries.record(entity.ChannelSMS, to, result.SID, nil)

			return nil
		})
	}

	// Senders never return errors; individual failures are recorded above.
	_ = g.Wait()
}

// sendEmail submits one message addressed to every configured recipient.
func (s *orderNotifierService) sendEmail(ctx context.Context, logger *slog.Logger, settings *entity.NotificationSettings, msg *orderMessage, deliveries *deliveryLog) {
	recipients := settings.EmailRecipients()
	if len(recipients) == 0 {
		return
	}

	recipientList := strings.Join(recipients, ",")

	html, err := msg.emailHTML(s.signature)
	if err != nil {
		logger.Error("Failed to render order email", slog.Any("error", err))
		deliveries.record(entity.ChannelEmail, recipientList, "", err)

		return
	}

	receipt, err := s.emailSender.SendEmail(ctx, &service.EmailMessage{
		To:      recipients,
		Subject: msg.emailSubject(),
		Text:    msg.emailText(s.signature),
		HTML:    html,
	})
	if err != nil {
		logger.Error("Email notification failed", slog.Int("recipients", len(recipients)), slog.Any("error", err))
		deliveries.record(entity.ChannelEmail, recipientList, "", err)

		return
	}

	logger.Info("Email notification queued",
		slog.Int("recipients", len(recipients)),
		slog.String("email_id", receipt.ID),
		slog.Bool("simulated", receipt.Simulated),
	)
	deliveries.record(entity.ChannelEmail, recipientList, receipt.ID, nil)
}

// sendPush alerts active admin devices and deactivates tokens FCM reports as invalid.
func (s *orderNotifierService) sendPush(ctx context.Context, logger *slog.Logger, settings *entity.NotificationSettings, order *entity.Order, msg *orderMessage, deliveries *deliveryLog) {
	if !settings.PushEnabled || s.pushService == nil {
		return
	}

	devices, err := s.deviceRepo.FindActiveAdminDevices(ctx)
	if err != nil {
		logger.Error("Failed to load admin devices", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, body := msg.pushContent()
	data := map[string]string{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"location":     order.Location.String(),
	}

	var invalidTokens []string
	for batch := range slices.Chunk(tokens, pushBatchSize) {
		_, _, batchInvalid, sendErr := s.pushService.SendBatchNotification(ctx, batch, title, body, data)
		if sendErr != nil {
			logger.Error("Push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", sendErr))
			for _, token := range batch {
				deliveries.record(entity.ChannelPush, tokenPrefix(token), "", sendErr)
			}

			continue
		}

		for _, token := range batch {
			var tokenErr error
			if slices.Contains(batchInvalid, token) {
				tokenErr = errors.New("invalid or unregistered token")
			}
			deliveries.record(entity.ChannelPush, tokenPrefix(token), "", tokenErr)
		}
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateDevicesByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
	}
}

func (s *orderNotifierService) saveDeliveries(ctx context.Context, logger *slog.Logger, entries []*entity.NotificationDelivery) {
	for _, entry := range entries {
		s.metrics.NotificationSent(entry.Channel, entry.Status)
	}

	if len(entries) == 0 {
		return
	}

	if err := s.deliveryRepo.BatchCreateDeliveries(ctx, entries); err != nil {
		logger.Error("Failed to record notification deliveries", slog.Any("error", err))
	}
}

func tokenPrefix(token string) string {
	return token[:min(10, len(token))]
}

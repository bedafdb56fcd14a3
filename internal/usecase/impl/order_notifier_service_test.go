package impl

import (
	"context"
	"strings"
	"testing"

	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	mockRepo "kitchen/internal/mocks/repository"
	mockSvc "kitchen/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderNotifierFixtures holds all test dependencies for order notifier tests.
type orderNotifierFixtures struct {
	service      *orderNotifierService
	settingsRepo *mockRepo.MockSettingsRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	deliveryRepo *mockRepo.MockNotificationDeliveryRepository
	smsSender    *mockSvc.MockSMSSender
	emailSender  *mockSvc.MockEmailSender
	pushService  *mockSvc.MockNotificationService
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestOrderNotifier(t *testing.T) orderNotifierFixtures {
	fx := orderNotifierFixtures{
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		deliveryRepo: mockRepo.NewMockNotificationDeliveryRepository(t),
		smsSender:    mockSvc.NewMockSMSSender(t),
		emailSender:  mockSvc.NewMockEmailSender(t),
		pushService:  mockSvc.NewMockNotificationService(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	svc, err := NewOrderNotifierService(OrderNotifierServiceParams{
		Config:       newTestConfig(),
		SettingsRepo: fx.settingsRepo,
		DeviceRepo:   fx.deviceRepo,
		DeliveryRepo: fx.deliveryRepo,
		SMSSender:    fx.smsSender,
		EmailSender:  fx.emailSender,
		PushService:  fx.pushService,
		Metrics:      fx.metrics,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)
	fx.service = svc.(*orderNotifierService)

	fx.metrics.EXPECT().NotificationSent(mock.Anything, mock.Anything).Return().Maybe()

	return fx
}

func orderCreatedEvent() *service.OrderEvent {
	return &service.OrderEvent{
		EventID:   uuid.NewString(),
		EventType: constants.EventTypeOrderCreated,
		Order:     testOrder(),
	}
}

func (fx orderNotifierFixtures) captureDeliveries() *[]*entity.NotificationDelivery {
	var saved []*entity.NotificationDelivery
	fx.deliveryRepo.EXPECT().
		BatchCreateDeliveries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, deliveries []*entity.NotificationDelivery) { saved = deliveries }).
		Return(nil)

	return &saved
}

func countByStatus(deliveries []*entity.NotificationDelivery, channel entity.NotificationChannel, status string) int {
	n := 0
	for _, d := range deliveries {
		if d.Channel == channel && d.Status == status {
			n++
		}
	}

	return n
}

func TestOrderNotifier_NoSettingsSendsNothing(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(nil, repository.ErrSettingsNotFound)

	err := fx.service.HandleOrderCreated(ctx, orderCreatedEvent())

	assert.NoError(t, err)
}

func TestOrderNotifier_SettingsReadFailureIsRetryable(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(nil, errors.New("db unavailable"))

	err := fx.service.HandleOrderCreated(ctx, orderCreatedEvent())

	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestOrderNotifier_IgnoresOtherEventTypes(t *testing.T) {
	fx := createTestOrderNotifier(t)

	event := orderCreatedEvent()
	event.EventType = "order.voided"

	assert.NoError(t, fx.service.HandleOrderCreated(context.Background(), event))
}

func TestOrderNotifier_RejectsEventWithoutOrder(t *testing.T) {
	fx := createTestOrderNotifier(t)

	err := fx.service.HandleOrderCreated(context.Background(), &service.OrderEvent{EventType: constants.EventTypeOrderCreated})

	require.Error(t, err)
	assert.False(t, domainerrors.IsRetryable(err))
}

func TestOrderNotifier_DisabledChannelsSendNothing(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(&entity.NotificationSettings{
		PhoneNumbers:   []string{"4165550100"},
		EmailAddresses: []string{"chef@example.com"},
	}, nil)

	err := fx.service.HandleOrderCreated(ctx, orderCreatedEvent())

	assert.NoError(t, err)
}

func TestOrderNotifier_SMSToEveryNormalizedNumber(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(&entity.NotificationSettings{
		PhoneNumbers: []string{"(416) 555-0100", "", "1 905 555 0199"},
		SMSEnabled:   true,
	}, nil)
	fx.smsSender.EXPECT().Configured().Return(true)
	fx.smsSender.EXPECT().
		SendSMS(mock.Anything, "+14165550100", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Order #48213")
		})).
		Return(&service.SMSResult{SID: "SM1", Status: "queued"}, nil)
	fx.smsSender.EXPECT().
		SendSMS(mock.Anything, "+19055550199", mock.Anything).
		Return(nil, errors.New("unreachable handset"))

	saved := fx.captureDeliveries()

	err := fx.service.HandleOrderCreated(ctx, orderCreatedEvent())

	require.NoError(t, err)
	require.Len(t, *saved, 2)
	assert.Equal(t, 1, countByStatus(*saved, entity.ChannelSMS, entity.DeliveryStatusSent))
	assert.Equal(t, 1, countByStatus(*saved, entity.ChannelSMS, entity.DeliveryStatusFailed))
}

func TestOrderNotifier_SMSNotConfiguredRecordsFailures(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(&entity.NotificationSettings{
		PhoneNumbers: []string{"4165550100"},
		SMSEnabled:   true,
	}, nil)
	fx.smsSender.EXPECT().Configured().Return(false)

	saved := fx.captureDeliveries()

	require.NoError(t, fx.service.HandleOrderCreated(ctx, orderCreatedEvent()))
	require.Len(t, *saved, 1)
	assert.Equal(t, entity.DeliveryStatusFailed, (*saved)[0].Status)
	assert.Equal(t, "+14165550100", (*saved)[0].Recipient)
}

func TestOrderNotifier_OneEmailForAllRecipients(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(&entity.NotificationSettings{
		EmailAddresses: []string{"chef@example.com", " ", "owner@example.com"},
		EmailEnabled:   true,
	}, nil)
	fx.emailSender.EXPECT().
		SendEmail(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool {
			return len(msg.To) == 2 &&
				msg.Subject == "🍽️ New Order #48213 - North York" &&
				msg.HTML != "" && msg.Text != ""
		})).
		Return(&service.EmailReceipt{ID: "email-1"}, nil)

	saved := fx.captureDeliveries()

	require.NoError(t, fx.service.HandleOrderCreated(ctx, orderCreatedEvent()))
	require.Len(t, *saved, 1)
	assert.Equal(t, "chef@example.com,owner@example.com", (*saved)[0].Recipient)
	assert.Equal(t, "email-1", (*saved)[0].ProviderMessageID)
}

func TestOrderNotifier_EmailFailureDoesNotFailEvent(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(&entity.NotificationSettings{
		EmailAddresses: []string{"chef@example.com"},
		EmailEnabled:   true,
	}, nil)
	fx.emailSender.EXPECT().SendEmail(ctx, mock.Anything).Return(nil, errors.New("quota exceeded"))

	saved := fx.captureDeliveries()

	require.NoError(t, fx.service.HandleOrderCreated(ctx, orderCreatedEvent()))
	assert.Equal(t, 1, countByStatus(*saved, entity.ChannelEmail, entity.DeliveryStatusFailed))
}

func TestOrderNotifier_PushDeactivatesInvalidTokens(t *testing.T) {
	fx := createTestOrderNotifier(t)

	ctx := context.Background()
	fx.settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(&entity.NotificationSettings{
		PushEnabled: true,
	}, nil)
	fx.deviceRepo.EXPECT().FindActiveAdminDevices(ctx).Return([]*entity.AdminDevice{
		{FCMToken: "token-good-0000"},
		{FCMToken: "token-stale-1111"},
	}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-good-0000", "token-stale-1111"}, "🍽️ New Order #48213", mock.Anything, mock.Anything).
		Return(1, 1, []string{"token-stale-1111"}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevicesByTokens(ctx, []string{"token-stale-1111"}).Return(nil)

	saved := fx.captureDeliveries()

	require.NoError(t, fx.service.HandleOrderCreated(ctx, orderCreatedEvent()))
	assert.Equal(t, 1, countByStatus(*saved, entity.ChannelPush, entity.DeliveryStatusSent))
	assert.Equal(t, 1, countByStatus(*saved, entity.ChannelPush, entity.DeliveryStatusFailed))
	for _, d := range *saved {
		assert.Len(t, d.Recipient, 10)
	}
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kitchen/config"
	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"
	"kitchen/internal/util"

	"go.uber.org/fx"
)

const (
	emailSentMessage      = "Email notification sent successfully"
	emailSimulatedMessage = "Email notification simulated (no API key configured)"
)

type notifyService struct {
	smsSender   service.SMSSender
	emailSender service.EmailSender
	metrics     service.MetricsRecorder
	location    *time.Location
	signature   string
	logger      *slog.Logger
	now         func() time.Time
}

// NotifyServiceParams holds dependencies for NotifyService, injected by Fx.
type NotifyServiceParams struct {
	fx.In

	Config      *config.Config
	SMSSender   service.SMSSender
	EmailSender service.EmailSender
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewNotifyService creates the service behind the direct notification endpoints
func NewNotifyService(params NotifyServiceParams) (usecase.NotifyUsecase, error) {
	loc, err := params.Config.Notifier.Location()
	if err != nil {
		return nil, err
	}

	return &notifyService{
		smsSender:   params.SMSSender,
		emailSender: params.EmailSender,
		metrics:     params.Metrics,
		location:    loc,
		signature:   params.Config.Notifier.Signature,
		logger:      params.Logger,
		now:         time.Now,
	}, nil
}

func (s *notifyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// alertMessage renders direct alerts with the short delivery date the admin panel uses.
func alertMessage(input *usecase.OrderAlertInput) *orderMessage {
	items := make([]messageItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, messageItem{Name: item.Name, Quantity: item.Quantity})
	}

	msg := &orderMessage{
		OrderNumber: input.OrderNumber,
		Location:    input.Location,
		PlacedBy:    input.PlacedBy,
		StaffNote:   strings.TrimSpace(input.StaffNote),
		Items:       items,
	}
	if !input.DeliveryDate.IsZero() {
		msg.DeliveryDate = util.FormatShortDate(input.DeliveryDate)
	}

	return msg
}

func (s *notifyService) SendOrderSMS(ctx context.Context, phoneNumber string, input *usecase.OrderAlertInput) (*service.SMSResult, error) {
	to, err := s.checkSMSRecipient(phoneNumber)
	if err != nil {
		return nil, err
	}

	body := alertMessage(input).smsBody(s.signature)

	return s.send(ctx, to, body)
}

func (s *notifyService) SendTestSMS(ctx context.Context, phoneNumber string) (*service.SMSResult, error) {
	to, err := s.checkSMSRecipient(phoneNumber)
	if err != nil {
		return nil, err
	}

	body := "🧪 TEST MESSAGE from " + s.signature + "\n\n" +
		"This is a test SMS to verify the SMS integration is working.\n\n" +
		"Time: " + s.now().In(s.location).Format("1/2/2006, 3:04:05 PM") + "\n\n" +
		"If you received this, SMS is working! 🎉"

	return s.send(ctx, to, body)
}

func (s *notifyService) checkSMSRecipient(phoneNumber string) (string, error) {
	trimmed := strings.TrimSpace(phoneNumber)
	if trimmed == "" {
		return "", domainerrors.ErrPhoneNumberRequired
	}
	if !util.IsPlausiblePhoneNumber(trimmed) {
		return "", domainerrors.ErrInvalidPhoneNumber
	}
	if !s.smsSender.Configured() {
		return "", domainerrors.ErrSMSNotConfigured
	}

	return util.NormalizePhoneNumber(trimmed), nil
}

func (s *notifyService) send(ctx context.Context, to, body string) (*service.SMSResult, error) {
	result, err := s.smsSender.SendSMS(ctx, to, body)
	if err != nil {
		s.metrics.NotificationSent(entity.ChannelSMS, entity.DeliveryStatusFailed)
		s.log(ctx).Error("Direct SMS failed", slog.String("to", util.MaskPhoneNumber(to)), slog.Any("error", err))

		return nil, domainerrors.ErrSMSSendFailed.WithDetails(err.Error())
	}

	s.metrics.NotificationSent(entity.ChannelSMS, entity.DeliveryStatusSent)
	s.log(ctx).Info("Direct SMS sent", slog.String("to", util.MaskPhoneNumber(to)), slog.String("sid", result.SID))

	return result, nil
}

func (s *notifyService) SendOrderEmail(ctx context.Context, emailAddress string, input *usecase.OrderAlertInput) (*usecase.EmailAlertOutput, error) {
	to := strings.TrimSpace(emailAddress)
	if to == "" {
		return nil, domainerrors.ErrEmailAddressRequired
	}

	msg := alertMessage(input)
	if !input.DeliveryDate.IsZero() {
		msg.DeliveryDate = util.FormatLongDate(input.DeliveryDate)
	}

	html, err := msg.emailHTML(s.signature)
	if err != nil {
		return nil, domainerrors.ErrEmailSendFailed.WithDetails(err.Error())
	}

	receipt, err := s.emailSender.SendEmail(ctx, &service.EmailMessage{
		To:      []string{to},
		Subject: msg.emailSubject(),
		Text:    msg.emailText(s.signature),
		HTML:    html,
	})
	if err != nil {
		s.metrics.NotificationSent(entity.ChannelEmail, entity.DeliveryStatusFailed)
		s.log(ctx).Error("Direct email failed", slog.Any("error", err))

		return nil, domainerrors.ErrEmailSendFailed.WithDetails(err.Error())
	}

	s.metrics.NotificationSent(entity.ChannelEmail, entity.DeliveryStatusSent)

	output := &usecase.EmailAlertOutput{Message: emailSentMessage, EmailID: receipt.ID}
	if receipt.Simulated {
		output.Message = emailSimulatedMessage
	}

	return output, nil
}

func (s *notifyService) VerifySMSCredentials(ctx context.Context) (*service.SMSAccount, error) {
	if !s.smsSender.Configured() {
		return nil, domainerrors.ErrSMSNotConfigured
	}

	account, err := s.smsSender.VerifyCredentials(ctx)
	if err != nil {
		s.log(ctx).Warn("SMS credential check failed", slog.Any("error", err))

		return nil, domainerrors.ErrSMSNotConfigured.WithDetails(err.Error())
	}

	return account, nil
}

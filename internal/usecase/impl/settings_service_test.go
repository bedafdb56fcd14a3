package impl

import (
	"context"
	"testing"

	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	mockRepo "kitchen/internal/mocks/repository"
	"kitchen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSettingsService(t *testing.T) (usecase.SettingsUsecase, *mockRepo.MockSettingsRepository) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)

	return NewSettingsService(SettingsServiceParams{SettingsRepo: settingsRepo, Logger: newDiscardLogger()}), settingsRepo
}

func TestSettingsService_GetSettings_DefaultsBeforeFirstSave(t *testing.T) {
	service, settingsRepo := createTestSettingsService(t)

	ctx := context.Background()
	settingsRepo.EXPECT().FindSettings(ctx, constants.SettingsSingletonID).Return(nil, repository.ErrSettingsNotFound)

	settings, err := service.GetSettings(ctx)

	require.NoError(t, err)
	assert.Empty(t, settings.PhoneNumbers)
	assert.Empty(t, settings.EmailAddresses)
	assert.False(t, settings.SMSEnabled)
	assert.False(t, settings.EmailEnabled)
	assert.False(t, settings.PushEnabled)
}

func TestSettingsService_SaveSettings_DropsBlankSlots(t *testing.T) {
	service, settingsRepo := createTestSettingsService(t)

	ctx := context.Background()

	var saved *entity.NotificationSettings
	settingsRepo.EXPECT().
		UpsertSettings(ctx, mock.AnythingOfType("*entity.NotificationSettings")).
		Run(func(_ context.Context, s *entity.NotificationSettings) { saved = s }).
		Return(nil)

	settings, err := service.SaveSettings(ctx, &usecase.SaveSettingsInput{
		PhoneNumbers:   []string{"4165550100", "", "  ", " +14165550101 ", "", ""},
		EmailAddresses: []string{"", "chef@example.com"},
		SMSEnabled:     true,
		EmailEnabled:   true,
	})

	require.NoError(t, err)
	require.Same(t, saved, settings)
	assert.Equal(t, constants.SettingsSingletonID, saved.ID)
	assert.Equal(t, []string{"4165550100", "+14165550101"}, saved.PhoneNumbers)
	assert.Equal(t, []string{"chef@example.com"}, saved.EmailAddresses)
	assert.True(t, saved.SMSEnabled)
	assert.False(t, saved.PushEnabled)
}

func TestSettingsService_SaveSettings_TooManyRecipients(t *testing.T) {
	service, _ := createTestSettingsService(t)

	_, err := service.SaveSettings(context.Background(), &usecase.SaveSettingsInput{
		EmailAddresses: []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com", "f@x.com", "g@x.com"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRecipients)
}

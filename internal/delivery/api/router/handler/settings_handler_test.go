package handler

import (
	"net/http"
	"testing"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	mockUsecase "kitchen/internal/mocks/usecase"
	"kitchen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler_SaveSettings(t *testing.T) {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(SettingsHandlerParams{SettingsUC: settingsUC})

	body := `{"phoneNumbers":["4165550100",""],"emailAddresses":[],"smsEnabled":true,"pushEnabled":true}`
	c, rec := newTestContext(http.MethodPut, "/api/v1/admin/settings", body, nil)

	settingsUC.EXPECT().
		SaveSettings(mock.Anything, &usecase.SaveSettingsInput{
			PhoneNumbers:   []string{"4165550100", ""},
			EmailAddresses: []string{},
			SMSEnabled:     true,
			PushEnabled:    true,
		}).
		Return(&entity.NotificationSettings{PhoneNumbers: []string{"4165550100"}, SMSEnabled: true, PushEnabled: true}, nil)

	require.NoError(t, h.SaveSettings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var saved entity.NotificationSettings
	decodeData(t, rec, &saved)
	assert.Equal(t, []string{"4165550100"}, saved.PhoneNumbers)
}

func TestSettingsHandler_SaveSettings_TooManyRecipients(t *testing.T) {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(SettingsHandlerParams{SettingsUC: settingsUC})
	c, rec := newTestContext(http.MethodPut, "/api/v1/admin/settings", `{"phoneNumbers":["1","2","3","4","5","6","7"]}`, nil)

	settingsUC.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrTooManyRecipients)

	require.NoError(t, h.SaveSettings(c))

	assert.Equal(t, domainerrors.ErrTooManyRecipients.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrTooManyRecipients.ErrorCode(), decodeError(t, rec).Code)
}

package main

import (
	"kitchen/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.RoleAssignmentModel{},
		model.CredentialModel{},
		model.ItemModel{},
		model.OrderModel{},
		model.NotificationSettingsModel{},
		model.AdminDeviceModel{},
		model.NotificationDeliveryModel{},
		model.OutboxEventModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

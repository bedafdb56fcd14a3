package usecase

import "context"

// BootstrapUsecase seeds configured role assignments, local credentials and the starter catalog.
type BootstrapUsecase interface {
	Seed(ctx context.Context) error
}

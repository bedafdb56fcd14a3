package impl

import (
	"context"
	"testing"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	mockRepo "kitchen/internal/mocks/repository"
	"kitchen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRoleAssignmentService(t *testing.T) (usecase.RoleAssignmentUsecase, *mockRepo.MockRoleAssignmentRepository) {
	roleRepo := mockRepo.NewMockRoleAssignmentRepository(t)

	return NewRoleAssignmentService(RoleAssignmentServiceParams{RoleRepo: roleRepo, Logger: newDiscardLogger()}), roleRepo
}

func TestRoleAssignmentService_UpsertAssignment_NormalizesEmail(t *testing.T) {
	service, roleRepo := createTestRoleAssignmentService(t)

	ctx := context.Background()
	roleRepo.EXPECT().UpsertAssignment(ctx, mock.AnythingOfType("*entity.RoleAssignment")).Return(nil)

	assignment, err := service.UpsertAssignment(ctx, &usecase.UpsertRoleAssignmentInput{
		Email:             " Cook@Example.COM ",
		FullName:          " Cook ",
		Role:              entity.RoleStaff,
		AssignedLocations: entity.Locations{entity.LocationThornhill},
		IsActive:          true,
	})

	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", assignment.Email)
	assert.Equal(t, "Cook", assignment.FullName)
	assert.True(t, assignment.IsActive)
}

func TestRoleAssignmentService_UpsertAssignment_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UpsertRoleAssignmentInput
	}{
		{
			name:  "missing email",
			input: &usecase.UpsertRoleAssignmentInput{Role: entity.RoleAdmin},
		},
		{
			name:  "unknown role",
			input: &usecase.UpsertRoleAssignmentInput{Email: "a@example.com", Role: entity.Role("Owner")},
		},
		{
			name:  "staff without locations",
			input: &usecase.UpsertRoleAssignmentInput{Email: "a@example.com", Role: entity.RoleStaff},
		},
		{
			name: "unknown location",
			input: &usecase.UpsertRoleAssignmentInput{
				Email:             "a@example.com",
				Role:              entity.RoleStaff,
				AssignedLocations: entity.Locations{"Downtown"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestRoleAssignmentService(t)

			_, err := service.UpsertAssignment(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRoleAssignmentService_DeleteAssignment_NotFound(t *testing.T) {
	service, roleRepo := createTestRoleAssignmentService(t)

	ctx := context.Background()
	roleRepo.EXPECT().DeleteAssignment(ctx, "gone@example.com").Return(repository.ErrRoleAssignmentNotFound)

	err := service.DeleteAssignment(ctx, "Gone@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrRoleAssignmentNotFound)
}

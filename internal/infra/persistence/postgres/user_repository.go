package postgres

import (
	"context"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// UpsertUserByEmail materializes the user record, refreshing role data on every login.
func (repo *userRepository) UpsertUserByEmail(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.Email = entity.NormalizeEmail(userM.Email)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "role", "assigned_locations", "is_active", "updated_at"}),
		}).
		Create(userM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	// The insert may have been turned into an update, so read back the stored identity.
	stored, err := repo.FindUserByEmail(ctx, userM.Email)
	if err != nil {
		return err
	}

	user.ID = stored.ID
	user.Email = stored.Email
	user.CreatedAt = stored.CreatedAt

	return nil
}

// roleAssignmentRepository implements the repository.RoleAssignmentRepository interface.
type roleAssignmentRepository struct {
	db *gorm.DB
}

// NewRoleAssignmentRepository is the constructor for roleAssignmentRepository.
func NewRoleAssignmentRepository(db *gorm.DB) repository.RoleAssignmentRepository {
	return &roleAssignmentRepository{
		db: db,
	}
}

func (repo *roleAssignmentRepository) FindAssignmentByEmail(ctx context.Context, email string) (*entity.RoleAssignment, error) {
	var assignmentM model.RoleAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find role assignment")
	}

	return toRoleAssignmentDomain(&assignmentM), nil
}

func (repo *roleAssignmentRepository) ListAssignments(ctx context.Context) ([]*entity.RoleAssignment, error) {
	var assignmentModels []*model.RoleAssignmentModel

	if err := repo.db.WithContext(ctx).
		Order("email ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list role assignments")
	}

	assignments := make([]*entity.RoleAssignment, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toRoleAssignmentDomain(assignmentM))
	}

	return assignments, nil
}

func (repo *roleAssignmentRepository) UpsertAssignment(ctx context.Context, assignment *entity.RoleAssignment) error {
	assignmentM := fromRoleAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "role", "assigned_locations", "is_active", "updated_at"}),
		}).
		Create(assignmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save role assignment")
	}

	return nil
}

func (repo *roleAssignmentRepository) DeleteAssignment(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		Delete(&model.RoleAssignmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete role assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoleAssignmentNotFound
	}

	return nil
}

func (repo *roleAssignmentRepository) CreateAssignmentIfMissing(ctx context.Context, assignment *entity.RoleAssignment) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fromRoleAssignmentDomain(assignment))

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to seed role assignment")
	}

	return result.RowsAffected > 0, nil
}

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

func (repo *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return &entity.Credential{
		Email:        credentialM.Email,
		PasswordHash: credentialM.PasswordHash,
		CreatedAt:    credentialM.CreatedAt,
		UpdatedAt:    credentialM.UpdatedAt,
	}, nil
}

func (repo *credentialRepository) CreateCredentialIfMissing(ctx context.Context, credential *entity.Credential) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CredentialModel{
			Email:        entity.NormalizeEmail(credential.Email),
			PasswordHash: credential.PasswordHash,
			CreatedAt:    credential.CreatedAt,
			UpdatedAt:    credential.UpdatedAt,
		})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to seed credential")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		FullName:          data.FullName,
		Role:              entity.Role(data.Role),
		AssignedLocations: entity.LocationsFromStrings(data.AssignedLocations),
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Email:             data.Email,
		FullName:          data.FullName,
		Role:              data.Role.String(),
		AssignedLocations: data.AssignedLocations.ToStrings(),
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toRoleAssignmentDomain(data *model.RoleAssignmentModel) *entity.RoleAssignment {
	if data == nil {
		return nil
	}

	return &entity.RoleAssignment{
		Email:             data.Email,
		FullName:          data.FullName,
		Role:              entity.Role(data.Role),
		AssignedLocations: entity.LocationsFromStrings(data.AssignedLocations),
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromRoleAssignmentDomain(data *entity.RoleAssignment) *model.RoleAssignmentModel {
	if data == nil {
		return nil
	}

	return &model.RoleAssignmentModel{
		Email:             entity.NormalizeEmail(data.Email),
		FullName:          data.FullName,
		Role:              data.Role.String(),
		AssignedLocations: data.AssignedLocations.ToStrings(),
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

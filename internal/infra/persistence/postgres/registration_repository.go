// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	"passbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// CreateRegistration persists a new (device, pass) link.
func (repo *registrationRepository) CreateRegistration(ctx context.Context, registration *entity.Registration) error {
	registrationM := fromRegistrationDomain(registration)

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRegistration
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid device or pass reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registration")
	}

	// Update the entity with generated values
	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt

	return nil
}

// FindRegistration locates the registration joining the identified device and pass.
func (repo *registrationRepository) FindRegistration(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, serialNumber string) (*entity.Registration, error) {
	var registrationM model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN devices ON devices.id = registrations.device_id").
		Joins("JOIN passes ON passes.id = registrations.pass_id").
		Where("devices.device_library_identifier = ?", deviceLibraryIdentifier).
		Where("passes.pass_type_identifier = ? AND passes.serial_number = ?", passTypeIdentifier, serialNumber).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	return toRegistrationDomain(&registrationM), nil
}

// FindRegistrationsForPass retrieves every registration for one exact pass
// with each registration's device eagerly materialized.
func (repo *registrationRepository) FindRegistrationsForPass(ctx context.Context, passTypeIdentifier, serialNumber string) ([]*entity.Registration, error) {
	var registrationModels []*model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Preload("Device").
		Joins("JOIN passes ON passes.id = registrations.pass_id").
		Where("passes.pass_type_identifier = ? AND passes.serial_number = ?", passTypeIdentifier, serialNumber).
		Order("registrations.created_at").
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations for pass")
	}

	registrations := make([]*entity.Registration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// FindPassesForDevice retrieves the passes of one type this device is registered
// for, optionally filtered to those modified strictly after the watermark.
// Passes whose modified column is NULL never match a watermark: SQL NULL
// comparison gives exactly the "never newer than any watermark" rule.
func (repo *registrationRepository) FindPassesForDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier string, updatedSince *time.Time) ([]*entity.Pass, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PassModel{}).
		Joins("JOIN registrations ON registrations.pass_id = passes.id").
		Joins("JOIN devices ON devices.id = registrations.device_id").
		Where("devices.device_library_identifier = ?", deviceLibraryIdentifier).
		Where("passes.pass_type_identifier = ?", passTypeIdentifier)

	if updatedSince != nil {
		query = query.Where("passes.modified > ?", *updatedSince)
	}

	var passModels []*model.PassModel
	if err := query.
		Order("passes.serial_number").
		Find(&passModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find passes for device")
	}

	passes := make([]*entity.Pass, 0, len(passModels))
	for _, passM := range passModels {
		passes = append(passes, toPassDomain(passM))
	}

	return passes, nil
}

// DeleteRegistration removes a registration by its ID.
func (repo *registrationRepository) DeleteRegistration(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RegistrationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRegistrationDomain converts a GORM RegistrationModel to a domain Registration entity.
func toRegistrationDomain(data *model.RegistrationModel) *entity.Registration {
	if data == nil {
		return nil
	}

	return &entity.Registration{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		PassID:    data.PassID,
		CreatedAt: data.CreatedAt,
		Device:    toDeviceDomain(data.Device),
		Pass:      toPassDomain(data.Pass),
	}
}

// fromRegistrationDomain converts a domain Registration entity to a GORM RegistrationModel.
func fromRegistrationDomain(data *entity.Registration) *model.RegistrationModel {
	if data == nil {
		return nil
	}

	return &model.RegistrationModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		PassID:    data.PassID,
		CreatedAt: data.CreatedAt,
	}
}

package usecase

import (
	"context"
	"time"

	"vetclinic-booking/internal/converter"
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
	"vetclinic-booking/internal/domain/repository"
	"vetclinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PetUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	Update(ctx context.Context, ownerID uuid.UUID, petID uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	GetByID(ctx context.Context, ownerID uuid.UUID, petID uuid.UUID) (*dto.PetResponse, error)
	GetMyPets(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error)
}

type petUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	petRepo      repository.PetRepository
	auditService service.AuditService
}

func NewPetUsecase(db *gorm.DB, log *logrus.Logger, petRepo repository.PetRepository, auditService service.AuditService) PetUsecase {
	return &petUsecase{
		db:           db,
		log:          log,
		petRepo:      petRepo,
		auditService: auditService,
	}
}

func (u *petUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDate
	}

	pet := &entity.Pet{
		OwnerID:     ownerID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		DateOfBirth: dateOfBirth,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.petRepo.Create(tx, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &ownerID, entity.AuditActionPetCreate, "pet", pet.ID.String(), pet); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) Update(ctx context.Context, ownerID uuid.UUID, petID uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != ownerID {
		return nil, ErrNotPetOwner
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Species != "" {
		pet.Species = req.Species
	}
	if req.Breed != "" {
		pet.Breed = req.Breed
	}
	if req.DateOfBirth != "" {
		dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDate
		}
		pet.DateOfBirth = dateOfBirth
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.petRepo.Update(tx, pet); err != nil {
		u.log.Warnf("Failed to update pet: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &ownerID, entity.AuditActionPetUpdate, "pet", pet.ID.String(), nil, pet); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetByID(ctx context.Context, ownerID uuid.UUID, petID uuid.UUID) (*dto.PetResponse, error) {
	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != ownerID {
		return nil, ErrNotPetOwner
	}
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetMyPets(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to list pets: %+v", err)
		return nil, err
	}
	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

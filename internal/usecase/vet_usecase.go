package usecase

import (
	"context"

	"vetclinic-booking/internal/converter"
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
	"vetclinic-booking/internal/domain/repository"
	"vetclinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VetUsecase interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*dto.VetResponse, error)
	GetAll(ctx context.Context) (*dto.VetListResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, userID uuid.UUID, req *dto.UpdateVetRequest) (*dto.VetResponse, error)
}

type vetUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	vetProfileRepo repository.VetProfileRepository
	userRepo       repository.UserRepository
	auditService   service.AuditService
}

func NewVetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vetProfileRepo repository.VetProfileRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) VetUsecase {
	return &vetUsecase{
		db:             db,
		log:            log,
		vetProfileRepo: vetProfileRepo,
		userRepo:       userRepo,
		auditService:   auditService,
	}
}

func (u *vetUsecase) GetByID(ctx context.Context, userID uuid.UUID) (*dto.VetResponse, error) {
	profile, err := u.vetProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find vet profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrVetNotFound
	}
	return converter.VetProfileToResponse(profile), nil
}

func (u *vetUsecase) GetAll(ctx context.Context) (*dto.VetListResponse, error) {
	profiles, err := u.vetProfileRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list vet profiles: %+v", err)
		return nil, err
	}
	return &dto.VetListResponse{
		Vets:  converter.VetProfilesToResponses(profiles),
		Total: len(profiles),
	}, nil
}

func (u *vetUsecase) Update(ctx context.Context, actorID uuid.UUID, userID uuid.UUID, req *dto.UpdateVetRequest) (*dto.VetResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.vetProfileRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find vet profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrVetNotFound
	}

	if req.Specialty != "" {
		profile.Specialty = req.Specialty
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.IsActive != nil {
		profile.User.IsActive = *req.IsActive
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.vetProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update vet profile: %+v", err)
		return nil, err
	}

	if req.FullName != "" || req.IsActive != nil {
		if err := u.userRepo.Update(tx, &profile.User); err != nil {
			u.log.Warnf("Failed to update vet user: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionVetUpdate, "vet_profile", userID.String(), nil, profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VetProfileToResponse(profile), nil
}

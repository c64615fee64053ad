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

type ServiceItemUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceItemResponse, error)
	GetAll(ctx context.Context) (*dto.ServiceItemListResponse, error)
}

type serviceItemUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	serviceItemRepo repository.ServiceItemRepository
	auditService    service.AuditService
}

func NewServiceItemUsecase(db *gorm.DB, log *logrus.Logger, serviceItemRepo repository.ServiceItemRepository, auditService service.AuditService) ServiceItemUsecase {
	return &serviceItemUsecase{
		db:              db,
		log:             log,
		serviceItemRepo: serviceItemRepo,
		auditService:    auditService,
	}
}

func (u *serviceItemUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	item := &entity.ServiceItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.serviceItemRepo.Create(tx, item); err != nil {
		u.log.Warnf("Failed to create service item: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionServiceCreate, "service_item", item.ID.String(), item); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceItemToResponse(item), nil
}

func (u *serviceItemUsecase) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	db := u.db.WithContext(ctx)

	item, err := u.serviceItemRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find service item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrServiceItemNotFound
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		item.DurationMinutes = *req.DurationMinutes
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.serviceItemRepo.Update(tx, item); err != nil {
		u.log.Warnf("Failed to update service item: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionServiceUpdate, "service_item", item.ID.String(), nil, item); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceItemToResponse(item), nil
}

func (u *serviceItemUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceItemResponse, error) {
	item, err := u.serviceItemRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrServiceItemNotFound
	}
	return converter.ServiceItemToResponse(item), nil
}

func (u *serviceItemUsecase) GetAll(ctx context.Context) (*dto.ServiceItemListResponse, error) {
	items, err := u.serviceItemRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list service items: %+v", err)
		return nil, err
	}
	return &dto.ServiceItemListResponse{
		Services: converter.ServiceItemsToResponses(items),
		Total:    len(items),
	}, nil
}

package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/delivery/http/middleware"
	"vetclinic-booking/internal/usecase"
	"vetclinic-booking/pkg/response"
	"vetclinic-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ServiceItemHandler struct {
	serviceItemUsecase usecase.ServiceItemUsecase
	validator          *validator.CustomValidator
}

func NewServiceItemHandler(serviceItemUsecase usecase.ServiceItemUsecase, validator *validator.CustomValidator) *ServiceItemHandler {
	return &ServiceItemHandler{
		serviceItemUsecase: serviceItemUsecase,
		validator:          validator,
	}
}

func (h *ServiceItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceItemUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ServiceItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	item, err := h.serviceItemUsecase.GetByID(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceItemNotFound:
			response.NotFound(w, "Service item not found")
		default:
			response.InternalServerError(w, "Failed to get service item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", item)
}

func (h *ServiceItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateServiceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.serviceItemUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create service item")
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", item)
}

func (h *ServiceItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.serviceItemUsecase.Update(r.Context(), userID, serviceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceItemNotFound:
			response.NotFound(w, "Service item not found")
		default:
			response.InternalServerError(w, "Failed to update service item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", item)
}

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

type VetHandler struct {
	vetUsecase usecase.VetUsecase
	validator  *validator.CustomValidator
}

func NewVetHandler(vetUsecase usecase.VetUsecase, validator *validator.CustomValidator) *VetHandler {
	return &VetHandler{
		vetUsecase: vetUsecase,
		validator:  validator,
	}
}

func (h *VetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	vets, err := h.vetUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list vets")
		return
	}

	response.Success(w, http.StatusOK, "Vets retrieved successfully", vets)
}

func (h *VetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vetID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vet ID", nil)
		return
	}

	vet, err := h.vetUsecase.GetByID(r.Context(), vetID)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Vet not found")
		default:
			response.InternalServerError(w, "Failed to get vet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vet retrieved successfully", vet)
}

func (h *VetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	vetID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vet ID", nil)
		return
	}

	var req dto.UpdateVetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.Update(r.Context(), userID, vetID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Vet not found")
		default:
			response.InternalServerError(w, "Failed to update vet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vet updated successfully", vet)
}

package http

import (
	"net/http"

	"vetclinic-booking/internal/delivery/http/handler"
	"vetclinic-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	locationHandler     *handler.LocationHandler
	vetHandler          *handler.VetHandler
	petHandler          *handler.PetHandler
	serviceItemHandler  *handler.ServiceItemHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	locationHandler *handler.LocationHandler,
	vetHandler *handler.VetHandler,
	petHandler *handler.PetHandler,
	serviceItemHandler *handler.ServiceItemHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		locationHandler:     locationHandler,
		vetHandler:          vetHandler,
		petHandler:          petHandler,
		serviceItemHandler:  serviceItemHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterOwner).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalog routes
	api.HandleFunc("/locations", r.locationHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", r.locationHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}/hours", r.locationHandler.GetHours).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}/availability", r.availabilityHandler.GetDayAvailability).Methods(http.MethodGet)
	api.HandleFunc("/vets", r.vetHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/vets/{id}", r.vetHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/services", r.serviceItemHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.serviceItemHandler.GetByID).Methods(http.MethodGet)

	// Owner routes (protected - owner only)
	owner := api.PathPrefix("").Subrouter()
	owner.Use(r.authMiddleware.Authenticate)
	owner.Use(middleware.RequireOwner)
	owner.HandleFunc("/pets", r.petHandler.Create).Methods(http.MethodPost)
	owner.HandleFunc("/pets", r.petHandler.GetMine).Methods(http.MethodGet)
	owner.HandleFunc("/pets/{id}", r.petHandler.GetByID).Methods(http.MethodGet)
	owner.HandleFunc("/pets/{id}", r.petHandler.Update).Methods(http.MethodPut)
	owner.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	owner.HandleFunc("/appointments", r.appointmentHandler.GetMine).Methods(http.MethodGet)
	owner.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.Reschedule).Methods(http.MethodPut)

	// Cancellation is open to the owner and to staff
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPut)

	// Vet routes (protected - vet only)
	vet := api.PathPrefix("/vet").Subrouter()
	vet.Use(r.authMiddleware.Authenticate)
	vet.Use(middleware.RequireVet)
	vet.HandleFunc("/schedule", r.appointmentHandler.GetVetDaySchedule).Methods(http.MethodGet)
	vet.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/vets", r.authHandler.RegisterVet).Methods(http.MethodPost)
	admin.HandleFunc("/vets/{id}", r.vetHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/locations", r.locationHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{id}", r.locationHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/locations/{id}/hours", r.locationHandler.UpdateHours).Methods(http.MethodPut)
	admin.HandleFunc("/locations/{id}/hours", r.locationHandler.ResetHours).Methods(http.MethodDelete)
	admin.HandleFunc("/locations/{id}/capacity", r.availabilityHandler.GetCapacityReport).Methods(http.MethodGet)
	admin.HandleFunc("/services", r.serviceItemHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceItemHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecent).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

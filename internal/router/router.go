package router

import (
	"net/http"

	"github.com/lifeline-lk/blood-bank-service/internal/handlers"
)

func InitRoutes(
	inventoryHandler *handlers.InventoryHandler,
	emergencyHandler *handlers.EmergencyHandler,
	donorHandler *handlers.DonorHandler,
	hospitalHandler *handlers.HospitalHandler,
	adminHandler *handlers.HospitalAdminHandler,
	managerHandler *handlers.SystemManagerHandler,
	appointmentHandler *handlers.AppointmentHandler,
	feedbackHandler *handlers.FeedbackHandler,
	authHandler *handlers.AuthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/ping", handlers.PingHandler)

	mux.HandleFunc("GET /api/inventory", inventoryHandler.GetInventory)
	mux.HandleFunc("POST /api/inventory/new", inventoryHandler.CreateInventory)
	mux.HandleFunc("GET /api/inventory/availability", inventoryHandler.GetAvailability)
	mux.HandleFunc("GET /api/inventory/hospital/{hospitalId}", inventoryHandler.GetHospitalInventory)
	mux.HandleFunc("GET /api/inventory/{recordId}", inventoryHandler.GetInventoryById)
	mux.HandleFunc("PATCH /api/inventory/{recordId}/stock", inventoryHandler.AdjustStock)
	mux.HandleFunc("DELETE /api/inventory/{recordId}", inventoryHandler.DeleteInventory)

	mux.HandleFunc("GET /api/emergency", emergencyHandler.GetRequests)
	mux.HandleFunc("POST /api/emergency/new", emergencyHandler.CreateRequest)
	mux.HandleFunc("GET /api/emergency/{requestId}", emergencyHandler.GetRequestById)
	mux.HandleFunc("PUT /api/emergency/{requestId}/accept", emergencyHandler.AcceptRequest)
	mux.HandleFunc("PUT /api/emergency/{requestId}/decline", emergencyHandler.DeclineRequest)
	mux.HandleFunc("DELETE /api/emergency/{requestId}", emergencyHandler.DeleteRequest)

	mux.HandleFunc("GET /api/donors", donorHandler.GetDonors)
	mux.HandleFunc("POST /api/donors/signup", donorHandler.SignupDonor)
	mux.HandleFunc("GET /api/donors/{donorId}", donorHandler.GetDonorById)
	mux.HandleFunc("PUT /api/donors/{donorId}", donorHandler.UpdateDonor)
	mux.HandleFunc("PUT /api/donors/{donorId}/status", donorHandler.ToggleDonorStatus)
	mux.HandleFunc("DELETE /api/donors/{donorId}", donorHandler.DeleteDonor)

	mux.HandleFunc("GET /api/hospitals", hospitalHandler.GetHospitals)
	mux.HandleFunc("POST /api/hospitals/new", hospitalHandler.CreateHospital)
	mux.HandleFunc("GET /api/hospitals/{hospitalId}", hospitalHandler.GetHospitalById)
	mux.HandleFunc("PUT /api/hospitals/{hospitalId}", hospitalHandler.UpdateHospital)
	mux.HandleFunc("DELETE /api/hospitals/{hospitalId}", hospitalHandler.DeleteHospital)
	mux.HandleFunc("GET /api/hospitals/{hospitalId}/admins", adminHandler.GetHospitalAdminsByHospital)

	mux.HandleFunc("GET /api/hospital-admins", adminHandler.GetHospitalAdmins)
	mux.HandleFunc("POST /api/hospital-admins/new", adminHandler.CreateHospitalAdmin)
	mux.HandleFunc("GET /api/hospital-admins/{adminId}", adminHandler.GetHospitalAdminById)
	mux.HandleFunc("PUT /api/hospital-admins/{adminId}", adminHandler.UpdateHospitalAdmin)
	mux.HandleFunc("PUT /api/hospital-admins/{adminId}/status", adminHandler.ToggleHospitalAdminStatus)
	mux.HandleFunc("DELETE /api/hospital-admins/{adminId}", adminHandler.DeleteHospitalAdmin)

	mux.HandleFunc("GET /api/system-managers", managerHandler.GetSystemManagers)
	mux.HandleFunc("POST /api/system-managers/new", managerHandler.CreateSystemManager)
	mux.HandleFunc("GET /api/system-managers/{managerId}", managerHandler.GetSystemManagerById)
	mux.HandleFunc("PUT /api/system-managers/{managerId}", managerHandler.UpdateSystemManager)
	mux.HandleFunc("DELETE /api/system-managers/{managerId}", managerHandler.DeleteSystemManager)

	mux.HandleFunc("GET /api/appointments", appointmentHandler.GetAppointments)
	mux.HandleFunc("POST /api/appointments/new", appointmentHandler.CreateAppointment)
	mux.HandleFunc("GET /api/appointments/{appointmentId}", appointmentHandler.GetAppointmentById)
	mux.HandleFunc("PUT /api/appointments/{appointmentId}/datetime", appointmentHandler.RescheduleAppointment)
	mux.HandleFunc("PUT /api/appointments/{appointmentId}/accept", appointmentHandler.AcceptAppointment)
	mux.HandleFunc("PUT /api/appointments/{appointmentId}/cancel", appointmentHandler.CancelAppointment)
	mux.HandleFunc("PUT /api/appointments/{appointmentId}/arrived", appointmentHandler.MarkArrived)
	mux.HandleFunc("DELETE /api/appointments/{appointmentId}", appointmentHandler.DeleteAppointment)

	mux.HandleFunc("GET /api/feedback", feedbackHandler.GetFeedback)
	mux.HandleFunc("POST /api/feedback/new", feedbackHandler.CreateFeedback)
	mux.HandleFunc("GET /api/feedback/{feedbackId}", feedbackHandler.GetFeedbackById)
	mux.HandleFunc("DELETE /api/feedback/{feedbackId}", feedbackHandler.DeleteFeedback)

	mux.HandleFunc("POST /api/auth/donor/signin", authHandler.SigninDonor)
	mux.HandleFunc("POST /api/auth/hospital/signin", authHandler.SigninHospital)
	mux.HandleFunc("POST /api/auth/hospital-admin/signin", authHandler.SigninHospitalAdmin)
	mux.HandleFunc("POST /api/auth/system-manager/signin", authHandler.SigninSystemManager)

	return mux
}

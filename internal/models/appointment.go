package models

import "time"

type (
	ProgressStatus          string // Статус прохождения донации
	AppointmentAcceptStatus string // Статус решения по записи на донацию
)

const (
	NotStarted        ProgressStatus = "Not Started"
	InProgress        ProgressStatus = "In Progress"
	Completed         ProgressStatus = "Completed"
	CancelledProgress ProgressStatus = "Cancelled"

	PendingAppointment     AppointmentAcceptStatus = "Pending"
	RescheduledAppointment AppointmentAcceptStatus = "Re-Scheduled"
	AcceptedAppointment    AppointmentAcceptStatus = "Accepted"
	CancelledAppointment   AppointmentAcceptStatus = "Cancelled"
)

// Appointment представляет модель записи на донацию крови.
type Appointment struct {
	ID              string                  `json:"id"`
	DonorID         string                  `json:"donorId"`
	HospitalID      string                  `json:"hospitalId"`
	HospitalAdminID *string                 `json:"hospitalAdminId"`
	FeedbackStatus  bool                    `json:"feedbackStatus"`
	AppointmentDate time.Time               `json:"appointmentDate"`
	AppointmentTime string                  `json:"appointmentTime"`
	ReceiptNumber   string                  `json:"receiptNumber"`
	ProgressStatus  ProgressStatus          `json:"progressStatus"`
	AcceptStatus    AppointmentAcceptStatus `json:"acceptStatus"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// AppointmentRequest представляет структуру запроса для создания записи на донацию.
type AppointmentRequest struct {
	DonorID         string    `json:"donorId"`
	HospitalID      string    `json:"hospitalId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	ReceiptNumber   string    `json:"receiptNumber"`
}

// AppointmentDateTimeRequest представляет структуру запроса для переноса записи.
type AppointmentDateTimeRequest struct {
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
}

package models

import "time"

type Gender string // Пол донора

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// Donor представляет модель донора.
type Donor struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Gender            Gender    `json:"gender"`
	PhoneNumber       string    `json:"phoneNumber"`
	Email             string    `json:"email"`
	Password          string    `json:"-"`
	DOB               time.Time `json:"dob"`
	BloodType         BloodType `json:"bloodType"`
	Location          string    `json:"location"`
	Image             *string   `json:"image"`
	ActiveStatus      bool      `json:"activeStatus"`
	HealthStatus      bool      `json:"healthStatus"`
	AppointmentStatus bool      `json:"appointmentStatus"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DonorRequest представляет структуру запроса для регистрации или обновления донора.
type DonorRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Gender      Gender    `json:"gender"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	DOB         time.Time `json:"dob"`
	BloodType   BloodType `json:"bloodType"`
	Location    string    `json:"location"`
	Image       *string   `json:"image"`
}

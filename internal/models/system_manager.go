package models

import "time"

// SystemManager представляет модель системного менеджера.
type SystemManager struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	NIC          string    `json:"nic"`
	Address      string    `json:"address"`
	Image        *string   `json:"image"`
	DOB          time.Time `json:"dob"`
	Role         string    `json:"role"`
	ActiveStatus bool      `json:"activeStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SystemManagerRequest представляет структуру запроса для создания или обновления менеджера.
type SystemManagerRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	NIC         string    `json:"nic"`
	Address     string    `json:"address"`
	Image       *string   `json:"image"`
	DOB         time.Time `json:"dob"`
	Role        string    `json:"role"`
}

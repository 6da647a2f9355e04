package models

import "time"

// Hospital представляет модель больницы.
type Hospital struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	PhoneNumber  string    `json:"phoneNumber"`
	Address      string    `json:"address"`
	ActiveStatus bool      `json:"activeStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HospitalRequest представляет структуру запроса для создания или обновления больницы.
type HospitalRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// HospitalAdmin представляет модель администратора больницы.
type HospitalAdmin struct {
	ID           string    `json:"id"`
	HospitalID   string    `json:"hospitalId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	PhoneNumber  string    `json:"phoneNumber"`
	NIC          string    `json:"nic"`
	Image        *string   `json:"image"`
	ActiveStatus bool      `json:"activeStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HospitalAdminRequest представляет структуру запроса для создания или обновления администратора.
type HospitalAdminRequest struct {
	HospitalID  string  `json:"hospitalId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	PhoneNumber string  `json:"phoneNumber"`
	NIC         string  `json:"nic"`
	Image       *string `json:"image"`
}

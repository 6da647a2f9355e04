package models

import "time"

type BloodType string // Группа крови по системе ABO/Rh

const (
	APositive  BloodType = "A+"
	ANegative  BloodType = "A-"
	BPositive  BloodType = "B+"
	BNegative  BloodType = "B-"
	OPositive  BloodType = "O+"
	ONegative  BloodType = "O-"
	ABPositive BloodType = "AB+"
	ABNegative BloodType = "AB-"
)

// AllBloodTypes - список всех допустимых групп крови.
var AllBloodTypes = []BloodType{
	APositive, ANegative,
	BPositive, BNegative,
	OPositive, ONegative,
	ABPositive, ABNegative,
}

// IsValidBloodType проверяет, входит ли значение в допустимый набор групп крови.
func IsValidBloodType(bt BloodType) bool {
	for _, v := range AllBloodTypes {
		if v == bt {
			return true
		}
	}
	return false
}

// InventoryRecord представляет запись запаса крови больницы.
type InventoryRecord struct {
	ID              string    `json:"id"`
	HospitalID      string    `json:"hospitalId"`
	BloodType       BloodType `json:"bloodType"`
	AvailableStocks int       `json:"availableStocks"`
	ExpirationDate  time.Time `json:"expirationDate"`
	ExpiredStatus   bool      `json:"expiredStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// InventoryRequest представляет структуру запроса для создания записи запаса.
type InventoryRequest struct {
	HospitalID      string    `json:"hospitalId"`
	BloodType       BloodType `json:"bloodType"`
	AvailableStocks int       `json:"availableStocks"`
	ExpirationDate  time.Time `json:"expirationDate"`
}

// AdjustStockRequest представляет структуру запроса для пополнения или списания запаса.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// StockAvailability представляет суммарный непросроченный запас больницы по группе крови.
type StockAvailability struct {
	HospitalName   string    `json:"hospitalName"`
	BloodType      BloodType `json:"bloodType"`
	AvailableUnits int       `json:"availableUnits"`
}

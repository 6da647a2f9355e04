package models

import "time"

type (
	CriticalLevel string // Уровень срочности запроса
	ActiveStatus  string // Видимость запроса
	AcceptStatus  string // Статус решения по запросу
	ActorKind     string // Тип стороны, принявшей запрос
)

const (
	LowLevel    CriticalLevel = "Low"
	MediumLevel CriticalLevel = "Medium"
	HighLevel   CriticalLevel = "High"

	ActiveRequest   ActiveStatus = "Active"
	InactiveRequest ActiveStatus = "Inactive"

	PendingRequest  AcceptStatus = "Pending"  // Запрос ожидает решения
	AcceptedRequest AcceptStatus = "Accepted" // Запрос принят
	DeclinedRequest AcceptStatus = "Declined" // Запрос отклонён

	HospitalActor ActorKind = "Hospital" // Запрос приняла больница
	DonorActor    ActorKind = "Donor"    // Запрос принял донор
)

// DefaultDeclineReason - причина отклонения по умолчанию, если причина не указана.
const DefaultDeclineReason = "No reason provided"

// EmergencyRequest представляет модель экстренного запроса крови.
type EmergencyRequest struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	PhoneNumber    string        `json:"phoneNumber"`
	ProofOfIDNum   string        `json:"proofOfIdentificationNumber"`
	ProofDocument  *string       `json:"proofDocument"`
	PatientBlood   BloodType     `json:"patientBlood"`
	Units          int           `json:"units"`
	Reason         string        `json:"reason"`
	CriticalLevel  CriticalLevel `json:"criticalLevel"`
	WithinDate     time.Time     `json:"withinDate"`
	HospitalName   string        `json:"hospitalName"`
	Address        string        `json:"address"`
	ActiveStatus   ActiveStatus  `json:"activeStatus"`
	AcceptStatus   AcceptStatus  `json:"acceptStatus"`
	DeclineReason  *string       `json:"declineReason"`
	AcceptedBy     *string       `json:"acceptedBy"`
	AcceptedByType *ActorKind    `json:"acceptedByType"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// EmergencyRequestInput представляет структуру запроса для создания экстренного запроса.
type EmergencyRequestInput struct {
	Name          string        `json:"name"`
	PhoneNumber   string        `json:"phoneNumber"`
	ProofOfIDNum  string        `json:"proofOfIdentificationNumber"`
	ProofDocument *string       `json:"proofDocument"`
	PatientBlood  BloodType     `json:"patientBlood"`
	Units         int           `json:"units"`
	Reason        string        `json:"reason"`
	CriticalLevel CriticalLevel `json:"criticalLevel"`
	WithinDate    time.Time     `json:"withinDate"`
	HospitalName  string        `json:"hospitalName"`
	Address       string        `json:"address"`
}

// AcceptRequestInput представляет структуру запроса для принятия экстренного запроса.
type AcceptRequestInput struct {
	AcceptedBy     string    `json:"acceptedBy"`
	AcceptedByType ActorKind `json:"acceptedByType"`
}

// DeclineRequestInput представляет структуру запроса для отклонения экстренного запроса.
type DeclineRequestInput struct {
	Reason string `json:"reason"`
}

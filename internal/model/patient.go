package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Patient is a completed-visit ledger entry. Prices are whole currency units
// kept as integers so the profit split never drifts. NetProfit and the three
// shares are derived and recomputed together on every write; they are stored
// so exports and the remote sync see the same numbers the operator saw.
type Patient struct {
	ID            PatientID  `json:"id"`
	FullName      string     `json:"fullName"`
	Phone         string     `json:"phone"`
	Gender        Gender     `json:"gender"`
	BirthDate     string     `json:"birthDate"`
	Address       string     `json:"address"`
	DoctorName    string     `json:"doctorName"`
	ServiceType   string     `json:"serviceType"`
	TotalPrice    int64      `json:"totalPrice"`
	Expenses      int64      `json:"expenses"`
	NetProfit     int64      `json:"netProfit"`
	DoctorShare   int64      `json:"doctorShare"`
	ClinicShare   int64      `json:"clinicShare"`
	PlatformShare int64      `json:"platformShare"`
	BookingID     *BookingID `json:"bookingId"`
	MedicalNotes  string     `json:"medicalNotes"`
	VisitDate     string     `json:"visitDate,omitempty"`
	CreatedAt     int64      `json:"createdAt"`
}

type CreatePatientRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Gender       Gender `json:"gender" binding:"omitempty,oneof=male female"`
	BirthDate    string `json:"birthDate" binding:"omitempty,dateonly"`
	Address      string `json:"address"`
	DoctorName   string `json:"doctorName" binding:"required"`
	ServiceType  string `json:"serviceType" binding:"required"`
	TotalPrice   int64  `json:"totalPrice" binding:"min=0"`
	Expenses     int64  `json:"expenses" binding:"min=0"`
	MedicalNotes string `json:"medicalNotes"`
	VisitDate    string `json:"visitDate" binding:"omitempty,dateonly"`
}

// UpdatePatientRequest deliberately has no bookingId field: the link to a
// booking is owned by the auto-link rule and never edited directly.
type UpdatePatientRequest struct {
	FullName     *string `json:"fullName"`
	Phone        *string `json:"phone"`
	Gender       *Gender `json:"gender" binding:"omitempty,oneof=male female"`
	BirthDate    *string `json:"birthDate" binding:"omitempty,dateonly"`
	Address      *string `json:"address"`
	DoctorName   *string `json:"doctorName"`
	ServiceType  *string `json:"serviceType"`
	TotalPrice   *int64  `json:"totalPrice" binding:"omitempty,min=0"`
	Expenses     *int64  `json:"expenses" binding:"omitempty,min=0"`
	MedicalNotes *string `json:"medicalNotes"`
	VisitDate    *string `json:"visitDate" binding:"omitempty,dateonly"`
}

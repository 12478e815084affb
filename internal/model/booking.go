package model

// BookingID and PatientID are the identifiers the ledger links entities by.
// Relations are always by identifier, never by embedded records, so the
// persisted JSON stays a flat document per collection.
type (
	BookingID string
	PatientID string
)

type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCanceled  BookingStatus = "canceled"
	BookingStatusNoShow    BookingStatus = "no-show"
)

type BookingSource string

const (
	BookingSourcePhone    BookingSource = "phone"
	BookingSourceWhatsApp BookingSource = "whatsapp"
	BookingSourceWalkIn   BookingSource = "walk-in"
	BookingSourceOnline   BookingSource = "online"
)

// Booking is an appointment record, whether or not the patient ever shows up.
// LinkedPatientID is set only when a visit record was matched to this booking.
type Booking struct {
	ID              BookingID     `json:"id"`
	PatientName     string        `json:"patientName"`
	Phone           string        `json:"phone"`
	DoctorName      string        `json:"doctorName"`
	AppointmentDate string        `json:"appointmentDate"`
	AppointmentTime string        `json:"appointmentTime"`
	Status          BookingStatus `json:"status"`
	Source          BookingSource `json:"source"`
	LinkedPatientID *PatientID    `json:"linkedPatientId"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       int64         `json:"createdAt"`
}

type CreateBookingRequest struct {
	PatientName     string        `json:"patientName" binding:"required"`
	Phone           string        `json:"phone" binding:"required"`
	DoctorName      string        `json:"doctorName" binding:"required"`
	AppointmentDate string        `json:"appointmentDate" binding:"required,dateonly"`
	AppointmentTime string        `json:"appointmentTime" binding:"omitempty,clocktime"`
	Source          BookingSource `json:"source" binding:"omitempty,oneof=phone whatsapp walk-in online"`
	Notes           string        `json:"notes"`
}

type UpdateBookingRequest struct {
	PatientName     *string        `json:"patientName"`
	Phone           *string        `json:"phone"`
	DoctorName      *string        `json:"doctorName"`
	AppointmentDate *string        `json:"appointmentDate" binding:"omitempty,dateonly"`
	AppointmentTime *string        `json:"appointmentTime" binding:"omitempty,clocktime"`
	Status          *BookingStatus `json:"status" binding:"omitempty,oneof=scheduled completed canceled no-show"`
	Source          *BookingSource `json:"source" binding:"omitempty,oneof=phone whatsapp walk-in online"`
	LinkedPatientID *PatientID     `json:"linkedPatientId"`
	Notes           *string        `json:"notes"`
}

// PatientPrefill carries booking details into a registration form when the
// front desk converts a booking into a visit record.
type PatientPrefill struct {
	FullName   string    `json:"fullName"`
	Phone      string    `json:"phone"`
	DoctorName string    `json:"doctorName"`
	BookingID  BookingID `json:"bookingId"`
}

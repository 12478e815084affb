package model

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// FilterSpec narrows which bookings and patients a list or analytics query
// considers. Every field is optional; absent fields match everything and the
// present ones combine with AND. Substring search over names and phones is a
// presentation concern applied on top, not part of this contract.
type FilterSpec struct {
	Doctor   string        `json:"doctor,omitempty" form:"doctor"`
	Service  string        `json:"service,omitempty" form:"service"`
	Source   BookingSource `json:"source,omitempty" form:"source" binding:"omitempty,oneof=phone whatsapp walk-in online"`
	Gender   Gender        `json:"gender,omitempty" form:"gender" binding:"omitempty,oneof=male female"`
	Status   BookingStatus `json:"status,omitempty" form:"status" binding:"omitempty,oneof=scheduled completed canceled no-show"`
	Period   Period        `json:"period,omitempty" form:"period" binding:"omitempty,oneof=today week month"`
	DateFrom string        `json:"dateFrom,omitempty" form:"date_from" binding:"omitempty,dateonly"`
	DateTo   string        `json:"dateTo,omitempty" form:"date_to" binding:"omitempty,dateonly"`
}

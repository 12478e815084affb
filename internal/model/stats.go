package model

// StatsBundle is the full analytics snapshot for one filter window. All rates
// are whole percents rounded to the nearest integer and fall back to 0 when
// the denominator is empty.
type StatsBundle struct {
	TotalBookings     int `json:"totalBookings"`
	CompletedBookings int `json:"completedBookings"`
	NoShowBookings    int `json:"noShowBookings"`
	CanceledBookings  int `json:"canceledBookings"`
	ScheduledBookings int `json:"scheduledBookings"`

	TotalPatients     int `json:"totalPatients"`
	WalkInPatients    int `json:"walkInPatients"`
	ConvertedPatients int `json:"convertedPatients"`

	TotalRevenue   int64 `json:"totalRevenue"`
	TotalExpenses  int64 `json:"totalExpenses"`
	TotalNetProfit int64 `json:"totalNetProfit"`
	AvgProfit      int64 `json:"avgProfit"`

	AttendanceRate int `json:"attendanceRate"`
	NoShowRate     int `json:"noShowRate"`
	ConversionRate int `json:"conversionRate"`

	TopDoctor *TopDoctor `json:"topDoctor"`
	TopSource *TopSource `json:"topSource"`

	DailyData   []DailyPoint                `json:"dailyData"`
	DoctorData  map[string]*DoctorBreakdown `json:"doctorData"`
	ServiceData map[string]int              `json:"serviceData"`
	GenderData  map[Gender]int              `json:"genderData"`
	Sources     map[BookingSource]int       `json:"sources"`
}

type TopDoctor struct {
	Name   string `json:"name"`
	Profit int64  `json:"profit"`
}

type TopSource struct {
	Name  BookingSource `json:"name"`
	Count int           `json:"count"`
}

// DailyPoint is one day of the 7-day chart series, oldest day first.
type DailyPoint struct {
	Date     string `json:"date"`
	Label    string `json:"label"`
	Bookings int    `json:"bookings"`
	Patients int    `json:"patients"`
	Revenue  int64  `json:"revenue"`
}

// DoctorBreakdown merges two denominators on purpose: Revenue and Count come
// from patient records, Bookings from booking records with the same doctor
// name. A doctor with bookings but no visits still gets an entry.
type DoctorBreakdown struct {
	Revenue  int64 `json:"revenue"`
	Count    int   `json:"count"`
	Bookings int   `json:"bookings"`
}

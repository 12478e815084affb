package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/store"
)

// SeedDemo loads the demo data set used for trials and screenshots. Dates are
// relative to the store clock so the dashboard always has activity in its
// 7-day window. Existing data is overwritten.
func (s *Store) SeedDemo(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	day := func(offset int) string {
		return model.DateOnly(now.AddDate(0, 0, offset))
	}
	ago := func(d time.Duration) int64 {
		return now.Add(-d).UnixMilli()
	}

	pt := func(id model.PatientID) *model.PatientID { return &id }

	bookings := []model.Booking{
		{ID: "bk001", PatientName: "خالد محمد العنزي", Phone: "0501234567", DoctorName: "د. أحمد السالم", AppointmentDate: day(0), AppointmentTime: "09:00", Status: model.BookingStatusCompleted, Source: model.BookingSourcePhone, LinkedPatientID: pt("pt001"), CreatedAt: ago(2 * time.Hour)},
		{ID: "bk002", PatientName: "نورة عبدالله السبيعي", Phone: "0507654321", DoctorName: "د. سارة المطيري", AppointmentDate: day(0), AppointmentTime: "10:00", Status: model.BookingStatusScheduled, Source: model.BookingSourceWhatsApp, CreatedAt: ago(90 * time.Minute)},
		{ID: "bk003", PatientName: "فيصل سلمان الدوسري", Phone: "0509876543", DoctorName: "د. محمد العمري", AppointmentDate: day(0), AppointmentTime: "11:30", Status: model.BookingStatusNoShow, Source: model.BookingSourceOnline, CreatedAt: ago(time.Hour)},
		{ID: "bk004", PatientName: "منال يوسف القحطاني", Phone: "0503456789", DoctorName: "د. فاطمة الحربي", AppointmentDate: day(-1), AppointmentTime: "09:30", Status: model.BookingStatusCompleted, Source: model.BookingSourceWalkIn, LinkedPatientID: pt("pt002"), CreatedAt: ago(25 * time.Hour)},
		{ID: "bk005", PatientName: "طارق ناصر الشمري", Phone: "0506789012", DoctorName: "د. أحمد السالم", AppointmentDate: day(-1), AppointmentTime: "14:00", Status: model.BookingStatusCanceled, Source: model.BookingSourcePhone, CreatedAt: ago(24 * time.Hour)},
		{ID: "bk006", PatientName: "ريم فارس العتيبي", Phone: "0508901234", DoctorName: "د. سارة المطيري", AppointmentDate: day(-2), AppointmentTime: "10:30", Status: model.BookingStatusCompleted, Source: model.BookingSourceWhatsApp, LinkedPatientID: pt("pt003"), CreatedAt: ago(48 * time.Hour)},
		{ID: "bk007", PatientName: "عبدالرحمن بدر الحربي", Phone: "0502345678", DoctorName: "د. محمد العمري", AppointmentDate: day(-3), AppointmentTime: "11:00", Status: model.BookingStatusCompleted, Source: model.BookingSourceOnline, LinkedPatientID: pt("pt004"), CreatedAt: ago(72 * time.Hour)},
		{ID: "bk008", PatientName: "لمياء علي المنصور", Phone: "0504567890", DoctorName: "د. فاطمة الحربي", AppointmentDate: day(1), AppointmentTime: "09:00", Status: model.BookingStatusScheduled, Source: model.BookingSourcePhone, CreatedAt: ago(30 * time.Minute)},
		{ID: "bk009", PatientName: "سعود محمد البقمي", Phone: "0505678901", DoctorName: "د. أحمد السالم", AppointmentDate: day(1), AppointmentTime: "10:30", Status: model.BookingStatusScheduled, Source: model.BookingSourceWhatsApp, CreatedAt: ago(15 * time.Minute)},
		{ID: "bk010", PatientName: "هنادي خالد الزهراني", Phone: "0506543210", DoctorName: "د. سارة المطيري", AppointmentDate: day(-4), AppointmentTime: "15:00", Status: model.BookingStatusNoShow, Source: model.BookingSourceOnline, CreatedAt: ago(96 * time.Hour)},
	}

	bk := func(id model.BookingID) *model.BookingID { return &id }

	patients := []model.Patient{
		{ID: "pt001", FullName: "خالد محمد العنزي", Phone: "0501234567", Gender: model.GenderMale, BirthDate: "1988-05-15", Address: "الرياض، حي الملقا", MedicalNotes: "حساسية من البنسلين", ServiceType: "استشارة عامة", DoctorName: "د. أحمد السالم", TotalPrice: 500, Expenses: 80, NetProfit: 420, DoctorShare: 168, ClinicShare: 168, PlatformShare: 84, BookingID: bk("bk001"), CreatedAt: ago(117 * time.Minute)},
		{ID: "pt002", FullName: "منال يوسف القحطاني", Phone: "0503456789", Gender: model.GenderFemale, BirthDate: "1992-08-22", Address: "جدة، حي الروضة", ServiceType: "تحليل مخبري", DoctorName: "د. فاطمة الحربي", TotalPrice: 350, Expenses: 120, NetProfit: 230, DoctorShare: 92, ClinicShare: 92, PlatformShare: 46, BookingID: bk("bk004"), CreatedAt: ago(24*time.Hour + 43*time.Minute)},
		{ID: "pt003", FullName: "ريم فارس العتيبي", Phone: "0508901234", Gender: model.GenderFemale, BirthDate: "1995-11-03", Address: "الرياض، حي النزهة", MedicalNotes: "مريضة سكري - جرعة أنسولين يومية", ServiceType: "علاج طبيعي", DoctorName: "د. سارة المطيري", TotalPrice: 800, Expenses: 200, NetProfit: 600, DoctorShare: 240, ClinicShare: 240, PlatformShare: 120, BookingID: bk("bk006"), CreatedAt: ago(47*time.Hour + 30*time.Minute)},
		{ID: "pt004", FullName: "عبدالرحمن بدر الحربي", Phone: "0502345678", Gender: model.GenderMale, BirthDate: "1980-02-14", Address: "الدمام، حي الشاطئ", MedicalNotes: "ضغط دم مرتفع", ServiceType: "جراحة بسيطة", DoctorName: "د. محمد العمري", TotalPrice: 2500, Expenses: 600, NetProfit: 1900, DoctorShare: 760, ClinicShare: 760, PlatformShare: 380, BookingID: bk("bk007"), CreatedAt: ago(71*time.Hour + 40*time.Minute)},
		{ID: "pt005", FullName: "أحمد سلطان الغامدي", Phone: "0509011234", Gender: model.GenderMale, BirthDate: "1975-07-30", Address: "مكة، حي العزيزية", ServiceType: "أشعة سينية", DoctorName: "د. أحمد السالم", TotalPrice: 300, Expenses: 50, NetProfit: 250, DoctorShare: 100, ClinicShare: 100, PlatformShare: 50, CreatedAt: ago(120 * time.Hour)},
		{ID: "pt006", FullName: "سمية عبدالعزيز الرشيد", Phone: "0501122334", Gender: model.GenderFemale, BirthDate: "2000-01-20", Address: "الرياض، حي الورود", MedicalNotes: "أول زيارة", ServiceType: "متابعة دورية", DoctorName: "د. فاطمة الحربي", TotalPrice: 200, Expenses: 30, NetProfit: 170, DoctorShare: 68, ClinicShare: 68, PlatformShare: 34, CreatedAt: ago(144 * time.Hour)},
	}

	if err := s.save(ctx, "seed", store.KeySettings, model.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	if err := s.save(ctx, "seed", store.KeyBookings, bookings); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}
	if err := s.save(ctx, "seed", store.KeyPatients, patients); err != nil {
		return fmt.Errorf("failed to seed patients: %w", err)
	}
	return nil
}

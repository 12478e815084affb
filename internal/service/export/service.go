// Package export renders filtered ledger views as TSV documents the way the
// front desk has always shared them: UTF-8 with a BOM so spreadsheets detect
// the encoding, Arabic column headers, tabs and newlines flattened to spaces.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository"
	"github.com/clinicflow/ledger-api/internal/service/analytics"
)

type Service struct {
	bookings  repository.BookingRepository
	patients  repository.PatientRepository
	analytics *analytics.Service
	now       func() time.Time
}

func NewService(bookings repository.BookingRepository, patients repository.PatientRepository, stats *analytics.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{bookings: bookings, patients: patients, analytics: stats, now: now}
}

func (s *Service) BookingsTSV(ctx context.Context, spec model.FilterSpec) ([]byte, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	bookings := analytics.ApplyBookingFilters(all, spec, s.now())

	headers := []string{"رقم_الحجز", "الاسم", "الهاتف", "الطبيب", "التاريخ", "الوقت", "المصدر", "الحالة", "مرتبط_بمريض"}
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			string(b.ID), b.PatientName, b.Phone, b.DoctorName,
			b.AppointmentDate, b.AppointmentTime, string(b.Source), string(b.Status),
			yesNo(b.LinkedPatientID != nil),
		})
	}
	return render(headers, rows), nil
}

func (s *Service) PatientsTSV(ctx context.Context, spec model.FilterSpec) ([]byte, error) {
	all, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	patients := analytics.ApplyPatientFilters(all, spec, s.now())

	headers := []string{"رقم_المريض", "الاسم", "الهاتف", "الجنس", "الطبيب", "الخدمة", "السعر", "المصاريف", "صافي_الربح", "حصة_الطبيب", "حصة_العيادة", "حصة_المنصة", "من_حجز"}
	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		gender := "ذكر"
		if p.Gender != model.GenderMale {
			gender = "أنثى"
		}
		rows = append(rows, []string{
			string(p.ID), p.FullName, p.Phone, gender, p.DoctorName, p.ServiceType,
			strconv.FormatInt(p.TotalPrice, 10),
			strconv.FormatInt(p.Expenses, 10),
			strconv.FormatInt(p.NetProfit, 10),
			strconv.FormatInt(p.DoctorShare, 10),
			strconv.FormatInt(p.ClinicShare, 10),
			strconv.FormatInt(p.PlatformShare, 10),
			yesNo(p.BookingID != nil),
		})
	}
	return render(headers, rows), nil
}

// ReportTSV is a key-figure summary of the stats bundle for the same window.
func (s *Service) ReportTSV(ctx context.Context, spec model.FilterSpec) ([]byte, error) {
	stats, err := s.analytics.GetStats(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	headers := []string{"المؤشر", "القيمة"}
	rows := [][]string{
		{"إجمالي الحجوزات", strconv.Itoa(stats.TotalBookings)},
		{"إجمالي المراجعين", strconv.Itoa(stats.TotalPatients)},
		{"معدل الحضور", strconv.Itoa(stats.AttendanceRate) + "%"},
		{"إجمالي الإيرادات", strconv.FormatInt(stats.TotalRevenue, 10) + " د.ع"},
		{"صافي الربح", strconv.FormatInt(stats.TotalNetProfit, 10) + " د.ع"},
		{"متوسط الربح لكل مريض", strconv.FormatInt(stats.AvgProfit, 10) + " د.ع"},
	}
	return render(headers, rows), nil
}

func yesNo(b bool) string {
	if b {
		return "نعم"
	}
	return "لا"
}

func render(headers []string, rows [][]string) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	buf.WriteString(strings.Join(headers, "\t"))
	for _, row := range rows {
		buf.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				buf.WriteByte('\t')
			}
			buf.WriteString(escape(cell))
		}
	}
	return buf.Bytes()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

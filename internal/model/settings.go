package model

import "encoding/json"

// Settings is the clinic configuration record. The three percentages are
// expected to sum to 100; the store itself accepts whatever it is given and
// the save path for the profit split is the one place callers enforce the sum.
type Settings struct {
	ClinicName      string          `json:"clinicName"`
	DoctorPercent   int             `json:"doctorPercent"`
	ClinicPercent   int             `json:"clinicPercent"`
	PlatformPercent int             `json:"platformPercent"`
	DarkMode        bool            `json:"darkMode"`
	SessionTimeout  int             `json:"sessionTimeout"`
	IdleTimeout     int             `json:"idleTimeout"`
	Doctors         []string        `json:"doctors"`
	Services        []string        `json:"services"`
	SyncConnected   bool            `json:"syncConnected,omitempty"`
	SyncConfig      json.RawMessage `json:"syncConfig,omitempty"`
}

// DefaultSettings returns the configuration used before the clinic has saved
// anything, and whenever the persisted record cannot be read back.
func DefaultSettings() Settings {
	return Settings{
		ClinicName:      "ClinicFlow Pro",
		DoctorPercent:   40,
		ClinicPercent:   40,
		PlatformPercent: 20,
		DarkMode:        true,
		SessionTimeout:  60,
		IdleTimeout:     30,
		Doctors: []string{
			"د. أحمد السالم",
			"د. سارة المطيري",
			"د. محمد العمري",
			"د. فاطمة الحربي",
		},
		Services: []string{
			"استشارة عامة",
			"أشعة سينية",
			"تحليل مخبري",
			"علاج طبيعي",
			"جراحة بسيطة",
			"متابعة دورية",
		},
	}
}

type ProfitSplitRequest struct {
	DoctorPercent   int `json:"doctorPercent" binding:"min=0,max=100"`
	ClinicPercent   int `json:"clinicPercent" binding:"min=0,max=100"`
	PlatformPercent int `json:"platformPercent" binding:"min=0,max=100"`
}

type RosterRequest struct {
	Name string `json:"name" binding:"required"`
}

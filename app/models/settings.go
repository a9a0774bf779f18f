package models

// Settings is the process-wide configuration singleton. OfficeIP empty
// means the IP check is disabled. The allowed check-in window may wrap
// midnight when start > end.
type Settings struct {
	CompanyName         string `json:"company_name"`
	CompanyLogo         string `json:"company_logo"`
	OfficeIP            string `json:"office_ip"`
	AllowedCheckInStart string `json:"allowed_check_in_start"`
	AllowedCheckInEnd   string `json:"allowed_check_in_end"`
}

// DefaultSettings mirrors the configuration the system seeds on first run.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:         "THE CAFUNE",
		CompanyLogo:         "https://ui-avatars.com/api/?name=TC&background=0D8ABC&color=fff&size=128",
		OfficeIP:            "",
		AllowedCheckInStart: "00:00",
		AllowedCheckInEnd:   "23:59",
	}
}

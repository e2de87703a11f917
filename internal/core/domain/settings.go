package domain

// SystemSettings is the singleton company configuration record. TrainingFee
// is kept as a decimal string; no currency conversion happens anywhere.
type SystemSettings struct {
	CompanyName         string `json:"company_name" bson:"company_name"`
	TrainingFee         string `json:"training_fee" bson:"training_fee"`
	CutoffDate          int    `json:"cutoff_date" bson:"cutoff_date"`
	EmailNotifications  bool   `json:"email_notifications" bson:"email_notifications"`
	AutoGenerateReports bool   `json:"auto_generate_reports" bson:"auto_generate_reports"`
}

// DefaultSettings returns the settings record every fresh store starts from.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		CompanyName:         "RiderApp Management",
		TrainingFee:         "500",
		CutoffDate:          3,
		EmailNotifications:  true,
		AutoGenerateReports: true,
	}
}

package handler

import (
	"time"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type identityResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	Identity identityResponse `json:"identity"`
}

func toIdentityResponse(i domain.Identity) identityResponse {
	return identityResponse{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Role:       string(i.Role),
		EmployeeID: i.EmployeeID,
	}
}

// --- Directory ---

type addUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required"`
}

type accountResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type listUsersResponse struct {
	Items []accountResponse `json:"items"`
	Total int               `json:"total"`
}

func toAccountResponse(a domain.UserAccount) accountResponse {
	return accountResponse{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   string(a.Role),
		Status: string(a.Status),
	}
}

// --- Settings ---

// updateSettingsRequest carries a partial update: nil fields stay unchanged.
type updateSettingsRequest struct {
	CompanyName         *string `json:"company_name"`
	TrainingFee         *string `json:"training_fee"`
	CutoffDate          *int    `json:"cutoff_date" validate:"omitempty,min=1,max=31"`
	EmailNotifications  *bool   `json:"email_notifications"`
	AutoGenerateReports *bool   `json:"auto_generate_reports"`
}

type settingsResponse struct {
	CompanyName         string `json:"company_name"`
	TrainingFee         string `json:"training_fee"`
	CutoffDate          int    `json:"cutoff_date"`
	EmailNotifications  bool   `json:"email_notifications"`
	AutoGenerateReports bool   `json:"auto_generate_reports"`
}

func toSettingsResponse(s domain.SystemSettings) settingsResponse {
	return settingsResponse{
		CompanyName:         s.CompanyName,
		TrainingFee:         s.TrainingFee,
		CutoffDate:          s.CutoffDate,
		EmailNotifications:  s.EmailNotifications,
		AutoGenerateReports: s.AutoGenerateReports,
	}
}

// --- Activity / roles ---

type activityEntryResponse struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

type rolePermissionResponse struct {
	Role        string `json:"role"`
	Description string `json:"description"`
}

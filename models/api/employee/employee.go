package employeeapimodels

import (
	"github.com/pkg/errors"
	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

type EmployeeData struct {
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Password   string          `json:"password,omitempty"`
	Role       models.UserRole `json:"role"`
	JobTitle   string          `json:"job_title"`
	Department string          `json:"department"`
}

func (v EmployeeData) Validate() error {
	if v.LastName == "" {
		return errors.New("не указана фамилия")
	}
	if v.Email == "" {
		return errors.New("не указан email")
	}
	if v.Role == "" {
		return errors.New("не указана роль")
	}
	return nil
}

type EmployeeView struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	RoleHuman  string          `json:"role_human"`
	JobTitle   string          `json:"job_title"`
	Department string          `json:"department"`
	IsActive   bool            `json:"is_active"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	return EmployeeView{
		ID:         rec.ID,
		Code:       rec.Code,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		Email:      rec.Email,
		Role:       rec.Role,
		RoleHuman:  rec.Role.ToHuman(),
		JobTitle:   rec.JobTitle,
		Department: rec.Department,
		IsActive:   rec.IsActive,
	}
}

package models

type UserRole string

const (
	RoleEmployee UserRole = "EMPLOYEE"
	RoleManager  UserRole = "MANAGER"
	RoleHRAdmin  UserRole = "HR_ADMIN"
)

var roleHumanName = map[UserRole]string{
	RoleEmployee: "Сотрудник",
	RoleManager:  "Руководитель",
	RoleHRAdmin:  "Администратор HR",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsHRAdmin() bool {
	return r == RoleHRAdmin
}

const SystemUser = "Система"

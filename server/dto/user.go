package dto

type LoginRequest struct {
	Username string `json:"username" label:"[username input]" validate:"required,max=64"`
	Password string `json:"password" label:"[password input]" validate:"required,max=64"`
	Remember bool   `json:"remember"`
}

type UserForCreate struct {
	Username     string `json:"username" validate:"required,max=64"`
	Password     string `json:"password" validate:"required,min=8,max=64"`
	Nickname     string `json:"nickname" validate:"max=64"`
	Mail         string `json:"mail" validate:"omitempty,email"`
	RoleName     string `json:"roleName" validate:"required,oneof=admin manager staff"`
	DepartmentID int64  `json:"departmentId"`
}

package domain

import (
	"time"
)

type Role string

const (
	RoleEmpleado      Role = "EMPLEADO"
	RoleSupervisor    Role = "SUPERVISOR"
	RoleAdministrador Role = "ADMINISTRADOR"
)

type Employee struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

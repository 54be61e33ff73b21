package handler

type ContextKey string

var (
	RoleCtxKey       ContextKey = "role"
	SubCtxKey        ContextKey = "sub"
	MyInfoCtx        ContextKey = "myInfo"
	EmployeeCtx      ContextKey = "employee"
	ShiftTemplateCtx ContextKey = "shiftTemplate"
	AssignmentCtx    ContextKey = "assignment"
	GroupCtx         ContextKey = "group"
	OvertimeTypeCtx  ContextKey = "overtimeType"
)

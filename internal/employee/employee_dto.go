package employee

type ScheduleDTO struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreateEmployeeRequest struct {
	Email    string       `json:"email" binding:"required,email"`
	FullName string       `json:"full_name" binding:"required"`
	Role     string       `json:"role"`
	Password string       `json:"password" binding:"required,min=8"`
	Schedule *ScheduleDTO `json:"schedule"`
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
}

type UpdateScheduleRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type EmployeeResponse struct {
	ID       string      `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     string      `json:"role"`
	Schedule ScheduleDTO `json:"schedule"`
}

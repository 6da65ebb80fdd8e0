package workrole

import "time"

type CreateWorkRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateWorkRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type WorkRoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(r *WorkRole) WorkRoleResponse {
	return WorkRoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

package user

import "time"

// Identity is the claim set extracted from a verified provider token.
type Identity struct {
	ExternalID string
	Name       string
	Email      string
	Role       Role
}

type UpdateUserRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	WorkRoleID  *string `json:"work_role_id" validate:"omitempty,uuid"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,e164"`
	SMSOptIn    *bool   `json:"sms_opt_in"`
}

type SyncUserEntry struct {
	ExternalID string `json:"external_id" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Role       Role   `json:"role" validate:"required,oneof=OPERATOR EMPLOYEE"`
}

type SyncUsersRequest struct {
	Token string          `json:"token" validate:"required"`
	Users []SyncUserEntry `json:"users" validate:"required,min=1,dive"`
}

type UserResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Role         Role         `json:"role"`
	WorkRoleID   *string      `json:"work_role_id,omitempty"`
	Availability Availability `json:"availability,omitempty"`
	PhoneNumber  *string      `json:"phone_number,omitempty"`
	SMSOptIn     bool         `json:"sms_opt_in"`
	CreatedAt    time.Time    `json:"created_at"`
}

func ToResponse(u *User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		WorkRoleID:   u.WorkRoleID,
		Availability: u.Availability,
		PhoneNumber:  u.PhoneNumber,
		SMSOptIn:     u.SMSOptIn,
		CreatedAt:    u.CreatedAt,
	}
}

package workrole

import "errors"

var (
	ErrWorkRoleNotFound   = errors.New("work role not found")
	ErrWorkRoleNameExists = errors.New("work role name already exists")
)

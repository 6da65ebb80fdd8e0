package workrole

import "time"

type WorkRole struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package model

import "time"

// Employee is a row of the employees table. Rows are listed in id order.
type Employee struct {
	ID        int64
	Title     string
	CreatedAt time.Time
}

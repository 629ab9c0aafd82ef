package models

import "time"

// Appointment is a scheduled visit (table Appoint)
type Appointment struct {
	AppointID       string    `json:"appointID" db:"appointID"`
	Phonenum        string    `json:"phonenum" db:"phonenum"`
	Sex             string    `json:"sex" db:"sex"`
	AppointmentDate time.Time `json:"appointmentdate" db:"appointmentdate"`
}

package model

import "gorm.io/gorm"

// Appointment represents a booked appointment. Date and time are stored as
// the opaque strings the client sent; no calendar validation is applied.
type Appointment struct {
	gorm.Model
	DoctorID  uint   `json:"doctor_id" gorm:"column:doctor_id"`
	PatientID uint   `json:"patient_id" gorm:"column:patient_id"`
	Date      string `json:"date" gorm:"column:date" example:"2026-09-14"`
	Time      string `json:"time" gorm:"column:time" example:"10:30"`
	Message   string `json:"message" gorm:"column:message"`
	Disease   string `json:"disease" gorm:"column:disease"`
}

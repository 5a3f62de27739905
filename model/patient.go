package model

import "gorm.io/gorm"

// Patient represents a registered patient
// @Description Patient information; CNIC and email are globally unique
type Patient struct {
	gorm.Model
	PatientName string `json:"patient_name" gorm:"column:patient_name" example:"Bilal Ahmed"`
	FatherName  string `json:"father_name" gorm:"column:father_name" example:"Rashid Ahmed"`
	CNIC        string `json:"cnic" gorm:"column:cnic;uniqueIndex" example:"42101-1234567-1"`
	Email       string `json:"email" gorm:"column:email;uniqueIndex" example:"bilal@example.com"`
	Password    string `json:"-" gorm:"column:password"`
	Phone       string `json:"phone" gorm:"column:phone" example:"0333-7654321"`
	Age         int    `json:"age" gorm:"column:age" example:"30"`
	Disease     string `json:"disease" gorm:"column:disease" example:"flu"`
}

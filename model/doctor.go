package model

import "gorm.io/gorm"

// Doctor represents a doctor entity
// @Description Doctor information grouped by specialty category
type Doctor struct {
	gorm.Model
	Name       string `json:"name" gorm:"column:name" example:"Dr Zafar Iqbal"`
	Category   string `json:"category" gorm:"column:category" example:"Cardiologist"`
	Experience int    `json:"experience" gorm:"column:experience" example:"10"`
	Phone      string `json:"phone" gorm:"column:phone" example:"0301-1234567"`
}

package model

import "gorm.io/gorm"

// SymptomRecord stores a symptom submission together with the medicines
// that were suggested for it, comma-joined.
type SymptomRecord struct {
	gorm.Model
	PatientID uint   `json:"patient_id" gorm:"column:patient_id"`
	Symptoms  string `json:"symptoms" gorm:"column:symptoms" example:"fever and cough"`
	Medicines string `json:"medicines" gorm:"column:medicines" example:"Paracetamol, Cough Syrup"`
}

// TableName keeps the historical table name.
func (SymptomRecord) TableName() string {
	return "symptoms"
}

package store

import (
	"github.com/clinicware/clinic-backend/model"
	"gorm.io/gorm"
)

// defaultDoctors is the roster shipped with the clinic front end. Doctors
// are never created through the API; this seed is the out-of-band source.
var defaultDoctors = []model.Doctor{
	{Name: "Dr Munawar Siyal", Category: "Child Specialist", Experience: 10},
	{Name: "Dr Ali Akbar Siyal", Category: "Child Specialist", Experience: 8},
	{Name: "Dr Ameerul Jamali", Category: "Child Specialist", Experience: 7},
	{Name: "Dr Ali asgher Shaikh", Category: "Child Specialist", Experience: 6},
	{Name: "Dr Amber Ali Siyal", Category: "Child Specialist", Experience: 5},
	{Name: "Dr Sadiq Siyal", Category: "Child Specialist", Experience: 9},

	{Name: "Prof: Rafique Memon", Category: "Physician", Experience: 15},
	{Name: "Dr Shamsuddin Shaikh", Category: "Physician", Experience: 12},
	{Name: "Prof: Nasrullah Amir", Category: "Physician", Experience: 14},
	{Name: "Dr Anwar Ali Jamali", Category: "Physician", Experience: 10},
	{Name: "Dr Khawar Hussain", Category: "Physician", Experience: 11},

	{Name: "Dr Abdul Razaq Mari", Category: "Neurologist", Experience: 13},
	{Name: "Dr Awais Bashir Larak", Category: "Neurologist", Experience: 9},
	{Name: "Dr Noor Nabi Siyal", Category: "Neurologist", Experience: 8},

	{Name: "Dr Jagdeesh Khatri", Category: "Cardiologist", Experience: 14},
	{Name: "Dr Zafar Iqbal", Category: "Cardiologist", Experience: 10},
	{Name: "Dr Ilahi Bux", Category: "Cardiologist", Experience: 12},
	{Name: "Dr Asad Khan", Category: "Cardiologist", Experience: 11},
	{Name: "Prof Dr Tariq Mahmood", Category: "Cardiologist", Experience: 15},
}

// SeedDoctors inserts the default roster when the doctors table is empty.
// Repeated startups do not duplicate rows.
func SeedDoctors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	doctors := make([]model.Doctor, len(defaultDoctors))
	copy(doctors, defaultDoctors)
	return db.Create(&doctors).Error
}

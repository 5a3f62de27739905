// Package store holds the persistence operations of the clinic API. All
// functions take the database handle owned by the caller; the package keeps
// no connection state of its own.
package store

import (
	"errors"

	"github.com/clinicware/clinic-backend/model"
	"gorm.io/gorm"
)

// Sentinel errors so handlers can map persistence outcomes to field-specific
// responses.
var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrCNICRegistered  = errors.New("cnic already registered")
	ErrEmailRegistered = errors.New("email already registered")
)

// ListCategories returns the distinct doctor categories. Order is undefined
// here; callers needing determinism must sort.
func ListCategories(db *gorm.DB) ([]string, error) {
	var categories []string
	if err := db.Model(&model.Doctor{}).Distinct().Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListDoctorsByCategory returns all doctors whose category matches exactly.
// An unknown category yields an empty slice, not an error.
func ListDoctorsByCategory(db *gorm.DB, category string) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := db.Where("category = ?", category).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// FindDoctorID resolves a doctor by exact name and category match.
func FindDoctorID(db *gorm.DB, name, category string) (uint, error) {
	var doctor model.Doctor
	err := db.Where("name = ? AND category = ?", name, category).First(&doctor).Error
	if err == gorm.ErrRecordNotFound {
		return 0, ErrDoctorNotFound
	}
	if err != nil {
		return 0, err
	}
	return doctor.ID, nil
}

// CreateAppointment inserts a booking. The patient id is caller-supplied
// and deliberately not verified against the patients table.
func CreateAppointment(db *gorm.DB, appointment *model.Appointment) error {
	return db.Create(appointment).Error
}

// RegisterPatient inserts a new patient inside a transaction. The cnic and
// email pre-checks run within the same transaction so two concurrent
// registrations cannot both pass them; the unique indexes on the table are
// the backstop.
func RegisterPatient(db *gorm.DB, patient *model.Patient) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing model.Patient
		if err := tx.Where("cnic = ?", patient.CNIC).First(&existing).Error; err == nil {
			return ErrCNICRegistered
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := tx.Where("email = ?", patient.Email).First(&existing).Error; err == nil {
			return ErrEmailRegistered
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		return tx.Create(patient).Error
	})
}

// AuthenticatePatient resolves a patient by CNIC or phone. When a password
// hash is supplied it must match as well; an empty hash is the legacy
// identifier-only mode.
func AuthenticatePatient(db *gorm.DB, identifier, hashedPassword string) (uint, error) {
	var patient model.Patient
	query := db.Where("cnic = ? OR phone = ?", identifier, identifier)
	if hashedPassword != "" {
		query = db.Where("(cnic = ? OR phone = ?) AND password = ?", identifier, identifier, hashedPassword)
	}

	err := query.First(&patient).Error
	if err == gorm.ErrRecordNotFound {
		return 0, ErrPatientNotFound
	}
	if err != nil {
		return 0, err
	}
	return patient.ID, nil
}

// CreateSymptomRecord inserts a symptom submission. The patient id is
// caller-supplied and not verified.
func CreateSymptomRecord(db *gorm.DB, record *model.SymptomRecord) error {
	return db.Create(record).Error
}

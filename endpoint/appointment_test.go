package endpoint

import (
	"net/http"
	"testing"

	"github.com/clinicware/clinic-backend/model"
	"github.com/stretchr/testify/assert"
)

func TestBookAppointment(t *testing.T) {
	router, db := setupEndpointTest(t)
	seedEndpointDoctors(t, db)

	body := `{"doctorCategory":"Cardiologist","doctor":"Dr Zafar Iqbal","patientId":"7","date":"2026-09-14","time":"10:30","disease":"chest pain","message":"please confirm"}`
	w := performRequest(router, http.MethodPost, "/appointments", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"message":"Appointment booked successfully"}`, w.Body.String())

	var appointment model.Appointment
	if err := db.First(&appointment).Error; err != nil {
		t.Fatalf("load appointment: %v", err)
	}
	assert.EqualValues(t, 1, appointment.DoctorID)
	assert.EqualValues(t, 7, appointment.PatientID)
	assert.Equal(t, "2026-09-14", appointment.Date)
	assert.Equal(t, "10:30", appointment.Time)
	assert.Equal(t, "please confirm", appointment.Message)
	assert.Equal(t, "chest pain", appointment.Disease)
}

func TestBookAppointmentMessageDefaultsToEmpty(t *testing.T) {
	router, db := setupEndpointTest(t)
	seedEndpointDoctors(t, db)

	body := `{"doctorCategory":"Neurologist","doctor":"Dr Noor Nabi Siyal","patientId":"1","date":"2026-09-15","time":"09:00","disease":"migraine"}`
	w := performRequest(router, http.MethodPost, "/appointments", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var appointment model.Appointment
	if err := db.First(&appointment).Error; err != nil {
		t.Fatalf("load appointment: %v", err)
	}
	assert.Equal(t, "", appointment.Message)
}

func TestBookAppointmentDoctorNotFoundWritesNoRow(t *testing.T) {
	router, db := setupEndpointTest(t)
	seedEndpointDoctors(t, db)

	// the name exists under another category; exact pair match is required
	body := `{"doctorCategory":"Neurologist","doctor":"Dr Zafar Iqbal","patientId":"7","date":"2026-09-14","time":"10:30","disease":"chest pain"}`
	w := performRequest(router, http.MethodPost, "/appointments", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"message":"Doctor not found"}`, w.Body.String())

	var count int64
	db.Model(&model.Appointment{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestBookAppointmentAggregatesMissingFields(t *testing.T) {
	router, _ := setupEndpointTest(t)

	w := performRequest(router, http.MethodPost, "/appointments", `{"doctorCategory":"Cardiologist","date":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"message":"Missing required fields: doctor, patientId, date, time, disease"}`, w.Body.String())
}

func TestBookAppointmentInvalidPatientID(t *testing.T) {
	router, db := setupEndpointTest(t)
	seedEndpointDoctors(t, db)

	body := `{"doctorCategory":"Cardiologist","doctor":"Dr Zafar Iqbal","patientId":"seven","date":"2026-09-14","time":"10:30","disease":"chest pain"}`
	w := performRequest(router, http.MethodPost, "/appointments", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"message":"Invalid patient ID format"}`, w.Body.String())
}

func TestBookAppointmentRejectsMalformedBody(t *testing.T) {
	router, _ := setupEndpointTest(t)

	w := performRequest(router, http.MethodPost, "/appointments", "not-json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"message":"Invalid request body"}`, w.Body.String())
}

func TestBookAppointmentMethodNotAllowed(t *testing.T) {
	router, _ := setupEndpointTest(t)

	w := performRequest(router, http.MethodGet, "/appointments", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

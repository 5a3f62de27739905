package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/clinicware/clinic-backend/flatjson"
	"github.com/clinicware/clinic-backend/model"
	"github.com/clinicware/clinic-backend/store"
	"github.com/clinicware/clinic-backend/util"
	"github.com/gin-gonic/gin"
)

// appointmentRequiredFields lists the payload keys a booking must carry;
// message is optional and defaults to empty.
var appointmentRequiredFields = []string{"doctorCategory", "doctor", "patientId", "date", "time", "disease"}

// BookAppointment godoc
// @Summary      Book an appointment
// @Description  Book an appointment with a doctor resolved by name and category
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Success      200 {object} string "Appointment booked successfully"
// @Failure      400 {object} string "Missing fields, invalid patient id, or doctor not found"
// @Failure      405 {object} string "Method not allowed"
// @Failure      500 {object} string "Server error"
// @Router       /appointments [post]
func BookAppointment(c *gin.Context) {
	data, ok := decodeBodyOrRespond(c)
	if !ok {
		return
	}
	if !requireFieldsOrRespond(c, data, appointmentRequiredFields...) {
		return
	}

	patientID, err := strconv.Atoi(data["patientId"])
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid patient ID format",
			Err: err,
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	// resolve the doctor before writing anything; an unknown doctor must
	// not leave a row behind
	doctorID, err := store.FindDoctorID(db, data["doctor"], data["doctorCategory"])
	if errors.Is(err, store.ErrDoctorNotFound) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Doctor not found",
			Err: err,
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error",
			Err: err,
		})
		return
	}

	appointment := model.Appointment{
		DoctorID:  doctorID,
		PatientID: uint(patientID),
		Date:      data["date"],
		Time:      data["time"],
		Message:   data["message"],
		Disease:   data["disease"],
	}
	if err := store.CreateAppointment(db, &appointment); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error",
			Err: fmt.Errorf("create appointment: %w", err),
		})
		return
	}

	util.CallSuccessJSON(c, flatjson.EncodeObject(
		flatjson.NewObject().Set("message", "Appointment booked successfully")))
}

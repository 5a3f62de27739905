package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/clinicware/clinic-backend/flatjson"
	"github.com/clinicware/clinic-backend/model"
	"github.com/clinicware/clinic-backend/store"
	"github.com/clinicware/clinic-backend/util"
	"github.com/gin-gonic/gin"
)

// dashboardPath is where a successful login redirects to.
const dashboardPath = "/dashboard.html"

var registrationRequiredFields = []string{"patientName", "fatherName", "cnic", "email", "password", "phone", "age", "disease"}

// RegisterPatient godoc
// @Summary      Register a new patient
// @Description  Register a patient; CNIC and email must be unique
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Success      200 {object} string "patientId"
// @Failure      400 {object} string "Missing/empty fields, duplicate CNIC or email, or invalid age"
// @Failure      405 {object} string "Method not allowed"
// @Failure      500 {object} string "Server error"
// @Router       /patients/register [post]
func RegisterPatient(c *gin.Context) {
	data, ok := decodeBodyOrRespond(c)
	if !ok {
		return
	}
	if !requireFieldsOrRespond(c, data, registrationRequiredFields...) {
		return
	}

	age, err := strconv.Atoi(data["age"])
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid age format",
			Err: err,
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	patient := model.Patient{
		PatientName: data["patientName"],
		FatherName:  data["fatherName"],
		CNIC:        data["cnic"],
		Email:       data["email"],
		Password:    util.HashPassword(data["password"]),
		Phone:       data["phone"],
		Age:         age,
		Disease:     data["disease"],
	}

	err = store.RegisterPatient(db, &patient)
	switch {
	case errors.Is(err, store.ErrCNICRegistered):
		util.CallUserError(c, util.APIErrorParams{
			Msg: "CNIC already registered",
			Err: err,
		})
		return
	case errors.Is(err, store.ErrEmailRegistered):
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Email already registered",
			Err: err,
		})
		return
	case err != nil:
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error",
			Err: fmt.Errorf("register patient: %w", err),
		})
		return
	}

	// the password, hashed or not, is never part of the response
	util.CallSuccessJSON(c, flatjson.EncodeObject(
		flatjson.NewObject().Set("patientId", int(patient.ID))))
}

// LoginPatient godoc
// @Summary      Patient login
// @Description  Log in by CNIC or phone; password is optional (legacy mode)
// @Tags         Patient
// @Accept       json
// @Success      302 {string} string "Redirect to the dashboard"
// @Failure      400 {object} string "Missing or empty identifier"
// @Failure      401 {object} string "Invalid credentials"
// @Failure      405 {object} string "Method not allowed"
// @Failure      500 {object} string "Server error"
// @Router       /patients/login [post]
func LoginPatient(c *gin.Context) {
	data, ok := decodeBodyOrRespond(c)
	if !ok {
		return
	}

	if _, present := data["loginCnic"]; !present {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Missing login credentials",
			Err: fmt.Errorf("loginCnic is required"),
		})
		return
	}
	identifier := data["loginCnic"]
	if strings.TrimSpace(identifier) == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "CNIC or phone number is required",
			Err: fmt.Errorf("empty loginCnic"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	password := data["password"]
	hashedPassword := ""
	if password != "" {
		hashedPassword = util.HashPassword(password)
	}

	_, err := store.AuthenticatePatient(db, identifier, hashedPassword)
	if errors.Is(err, store.ErrPatientNotFound) {
		// with a password, one generic message: do not reveal whether the
		// identifier or the password was wrong
		msg := "Invalid CNIC or phone number"
		if password != "" {
			msg = "Invalid credentials"
		}
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: msg,
			Err: err,
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error",
			Err: fmt.Errorf("authenticate patient: %w", err),
		})
		return
	}

	c.Redirect(http.StatusFound, dashboardPath)
}

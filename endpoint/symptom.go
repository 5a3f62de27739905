package endpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clinicware/clinic-backend/flatjson"
	"github.com/clinicware/clinic-backend/model"
	"github.com/clinicware/clinic-backend/store"
	"github.com/clinicware/clinic-backend/triage"
	"github.com/clinicware/clinic-backend/util"
	"github.com/gin-gonic/gin"
)

// CheckSymptoms godoc
// @Summary      Symptom check
// @Description  Suggest medicines for reported symptoms and record the submission
// @Tags         Symptom
// @Accept       json
// @Produce      json
// @Success      200 {object} string "Suggested medicines"
// @Failure      400 {object} string "Missing fields or invalid patient id"
// @Failure      405 {object} string "Method not allowed"
// @Failure      500 {object} string "Server error"
// @Router       /symptoms/check [post]
func CheckSymptoms(c *gin.Context) {
	data, ok := decodeBodyOrRespond(c)
	if !ok {
		return
	}
	if !requireFieldsOrRespond(c, data, "patientId", "symptoms") {
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

	// suggestion logic never consults the patient; the id is only persisted
	medicines := triage.Suggest(data["symptoms"])

	record := model.SymptomRecord{
		PatientID: uint(patientID),
		Symptoms:  data["symptoms"],
		Medicines: strings.Join(medicines, ", "),
	}
	if err := store.CreateSymptomRecord(db, &record); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error",
			Err: fmt.Errorf("create symptom record: %w", err),
		})
		return
	}

	util.CallSuccessJSON(c, flatjson.EncodeObject(
		flatjson.NewObject().Set("medicines", medicines)))
}

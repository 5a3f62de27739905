package endpoint

import (
	"fmt"
	"sort"

	"github.com/clinicware/clinic-backend/flatjson"
	"github.com/clinicware/clinic-backend/store"
	"github.com/clinicware/clinic-backend/util"
	"github.com/gin-gonic/gin"
)

// ListDoctorCategories godoc
// @Summary      List doctor categories
// @Description  Get the distinct doctor specialty categories
// @Tags         Doctor
// @Produce      json
// @Success      200 {array} string "Categories"
// @Failure      405 {object} string "Method not allowed"
// @Failure      500 {object} string "Server error"
// @Router       /doctors/categories [get]
func ListDoctorCategories(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	categories, err := store.ListCategories(db)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error",
			Err: err,
		})
		return
	}

	// the store leaves order undefined; sort for a deterministic response
	sort.Strings(categories)
	util.CallSuccessJSON(c, flatjson.EncodeStrings(categories))
}

// ListDoctors godoc
// @Summary      List doctors by category
// @Description  Get id, name, experience and phone for all doctors in a category
// @Tags         Doctor
// @Produce      json
// @Param        category query string true "Specialty category, exact match"
// @Success      200 {array} model.Doctor "Doctors"
// @Failure      400 {object} string "Missing category parameter"
// @Failure      405 {object} string "Method not allowed"
// @Failure      500 {object} string "Server error"
// @Router       /doctors [get]
func ListDoctors(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Category parameter is required",
			Err: fmt.Errorf("missing category query parameter"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	doctors, err := store.ListDoctorsByCategory(db, category)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error",
			Err: err,
		})
		return
	}

	objects := make([]*flatjson.Object, 0, len(doctors))
	for _, doctor := range doctors {
		objects = append(objects, flatjson.NewObject().
			Set("id", int(doctor.ID)).
			Set("name", doctor.Name).
			Set("experience", doctor.Experience).
			Set("phone", doctor.Phone))
	}
	util.CallSuccessJSON(c, flatjson.EncodeObjects(objects))
}

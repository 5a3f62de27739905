package endpoint

import (
	"fmt"
	"io"
	"strings"

	"github.com/clinicware/clinic-backend/flatjson"
	"github.com/clinicware/clinic-backend/middleware"
	"github.com/clinicware/clinic-backend/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getDBOrRespond fetches the injected database handle, answering with a
// server error when the middleware did not provide one.
func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// decodeBodyOrRespond reads the request body and decodes it through the
// flat-object codec. On failure it answers 400 and returns false.
func decodeBodyOrRespond(c *gin.Context) (map[string]string, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return nil, false
	}

	data, err := flatjson.Decode(string(body))
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return nil, false
	}
	return data, true
}

// missingFields returns the required keys that are absent or empty after
// trimming, in the order given.
func missingFields(data map[string]string, required []string) []string {
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(data[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// requireFieldsOrRespond validates presence and non-emptiness of every
// required field, answering a single aggregated 400 naming all offenders.
func requireFieldsOrRespond(c *gin.Context, data map[string]string, required ...string) bool {
	missing := missingFields(data, required)
	if len(missing) == 0 {
		return true
	}
	util.CallUserError(c, util.APIErrorParams{
		Msg: fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		Err: fmt.Errorf("invalid payload"),
	})
	return false
}

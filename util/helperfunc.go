package util

import (
	"log"
	"net/http"

	"github.com/clinicware/clinic-backend/flatjson"
	"github.com/gin-gonic/gin"
)

// ContentTypeJSON is the content type for every API response body.
const ContentTypeJSON = "application/json"

type APIErrorParams struct {
	Msg string
	Err error
}

func writeMessage(c *gin.Context, status int, msg string) {
	body := flatjson.EncodeObject(flatjson.NewObject().Set("message", msg))
	c.Data(status, ContentTypeJSON, []byte(body))
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	writeMessage(c, http.StatusBadRequest, params.Msg)
}

// CallUserNotAuthorized is for return API response with status code 401
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	writeMessage(c, http.StatusUnauthorized, params.Msg)
}

// CallServerError is for return API response server error. The underlying
// error is logged and never sent to the client.
func CallServerError(c *gin.Context, params APIErrorParams) {
	if params.Err != nil {
		log.Printf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, params.Msg, params.Err)
	}
	writeMessage(c, http.StatusInternalServerError, params.Msg)
}

// CallMethodNotAllowed is for return API response with status code 405
func CallMethodNotAllowed(c *gin.Context) {
	writeMessage(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// CallSuccessJSON writes an already-encoded JSON body with status code 200
func CallSuccessJSON(c *gin.Context, body string) {
	c.Data(http.StatusOK, ContentTypeJSON, []byte(body))
}

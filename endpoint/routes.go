package endpoint

import (
	"github.com/clinicware/clinic-backend/util"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches the API routes to the router. Paths route by
// exact match; query strings are parsed per handler, never for routing.
func RegisterRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		util.CallMethodNotAllowed(c)
	})

	router.GET("/doctors/categories", ListDoctorCategories)
	router.GET("/doctors", ListDoctors)
	router.POST("/appointments", BookAppointment)
	router.POST("/patients/register", RegisterPatient)
	router.POST("/patients/login", LoginPatient)
	router.POST("/symptoms/check", CheckSymptoms)
}

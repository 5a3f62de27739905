package endpoint

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicware/clinic-backend/middleware"
	"github.com/clinicware/clinic-backend/model"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupEndpointTest returns a router wired like main and an in-memory
// database with the full schema migrated.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Doctor{}, &model.Patient{}, &model.Appointment{}, &model.SymptomRecord{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	router := gin.New()
	router.Use(middleware.CORSMiddleware(), middleware.DatabaseMiddleware(db))
	RegisterRoutes(router)
	return router, db
}

// seedEndpointDoctors inserts a small fixed roster.
func seedEndpointDoctors(t *testing.T, db *gorm.DB) {
	t.Helper()
	doctors := []model.Doctor{
		{Name: "Dr Zafar Iqbal", Category: "Cardiologist", Experience: 10, Phone: "0301-1234567"},
		{Name: "Dr Noor Nabi Siyal", Category: "Neurologist", Experience: 8, Phone: "0345-0001122"},
	}
	if err := db.Create(&doctors).Error; err != nil {
		t.Fatalf("seed doctors: %v", err)
	}
}

// performRequest runs one request through the router.
func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerBody builds a valid registration payload with the given cnic and
// email.
func registerBody(cnic, email string) string {
	return `{"patientName":"Bilal Ahmed","fatherName":"Rashid Ahmed","cnic":"` + cnic +
		`","email":"` + email + `","password":"secret123","phone":"0333-7654321","age":"30","disease":"flu"}`
}

package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListDoctorCategoriesSorted(t *testing.T) {
	router, db := setupEndpointTest(t)
	seedEndpointDoctors(t, db)

	w := performRequest(router, http.MethodGet, "/doctors/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `["Cardiologist","Neurologist"]`, w.Body.String())
}

func TestListDoctorCategoriesEmptyTable(t *testing.T) {
	router, _ := setupEndpointTest(t)

	w := performRequest(router, http.MethodGet, "/doctors/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[]`, w.Body.String())
}

func TestListDoctorCategoriesMethodNotAllowed(t *testing.T) {
	router, _ := setupEndpointTest(t)

	w := performRequest(router, http.MethodPost, "/doctors/categories", "{}")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, `{"message":"Method not allowed"}`, w.Body.String())
}

func TestListDoctorsByCategory(t *testing.T) {
	router, db := setupEndpointTest(t)
	seedEndpointDoctors(t, db)

	w := performRequest(router, http.MethodGet, "/doctors?category=Cardiologist", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[{"id":1,"name":"Dr Zafar Iqbal","experience":10,"phone":"0301-1234567"}]`, w.Body.String())
}

func TestListDoctorsUnknownCategoryYieldsEmptyArray(t *testing.T) {
	router, db := setupEndpointTest(t)
	seedEndpointDoctors(t, db)

	w := performRequest(router, http.MethodGet, "/doctors?category=Dentist", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[]`, w.Body.String())
}

func TestListDoctorsMissingCategoryParam(t *testing.T) {
	router, _ := setupEndpointTest(t)

	w := performRequest(router, http.MethodGet, "/doctors", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"message":"Category parameter is required"}`, w.Body.String())
}

func TestPreflightAnsweredOnEveryRoute(t *testing.T) {
	router, _ := setupEndpointTest(t)

	for _, path := range []string{"/doctors/categories", "/doctors", "/appointments", "/patients/register", "/patients/login", "/symptoms/check"} {
		w := performRequest(router, http.MethodOptions, path, "")
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
		assert.Empty(t, w.Body.String(), "path %s", path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), "path %s", path)
	}
}

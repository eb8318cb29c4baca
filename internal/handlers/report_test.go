package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func reportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/report", CreateReport)
	r.PUT("/report", UpdateAllReports)
	r.PUT("/report/:studentId", UpdateStudentReport)
	r.GET("/report/:studentId", GetStudentReport)
	r.DELETE("/report/:studentId", DeleteStudentReport)
	return r
}

const validGroup = `{"subjects":[{"subjectName":"English","score":70,"grade":"B"}]}`

func TestCreateReportValidation(t *testing.T) {
	r := reportRouter()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "empty body",
			body:     `{}`,
			wantCode: 400,
			wantMsg:  "All fields are required",
		},
		{
			name: "missing exam group",
			body: `{"studentId":"64f000000000000000000001","classroomId":"64f000000000000000000002",` +
				`"year":2024,"firstCA":` + validGroup + `,"secondCA":` + validGroup + `}`,
			wantCode: 400,
			wantMsg:  "All fields are required",
		},
		{
			name: "bad grade",
			body: `{"studentId":"64f000000000000000000001","classroomId":"64f000000000000000000002",` +
				`"year":2024,"firstCA":{"subjects":[{"subjectName":"English","score":70,"grade":"F"}]},` +
				`"secondCA":` + validGroup + `,"exam":` + validGroup + `}`,
			wantCode: 400,
			wantMsg:  "All fields are required",
		},
		{
			name: "invalid student id",
			body: `{"studentId":"nope","classroomId":"64f000000000000000000002",` +
				`"year":2024,"firstCA":` + validGroup + `,"secondCA":` + validGroup + `,"exam":` + validGroup + `}`,
			wantCode: 400,
			wantMsg:  "Invalid student ID",
		},
		{
			name: "invalid classroom id",
			body: `{"studentId":"64f000000000000000000001","classroomId":"nope",` +
				`"year":2024,"firstCA":` + validGroup + `,"secondCA":` + validGroup + `,"exam":` + validGroup + `}`,
			wantCode: 400,
			wantMsg:  "Invalid classroom ID",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestUpdateStudentReportValidation(t *testing.T) {
	r := reportRouter()

	t.Run("invalid student id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/report/nope", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid student ID")
	})

	t.Run("no fields provided", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/report/64f000000000000000000001", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "No fields provided to update")
	})

	t.Run("invalid year query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/report/64f000000000000000000001?year=abc",
			strings.NewReader(`{"teacherRemarks":"Good work"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid year")
	})
}

func TestBulkRemarksValidation(t *testing.T) {
	r := reportRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/report", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Teacher remarks are required")
}

func TestGetStudentReportValidation(t *testing.T) {
	r := reportRouter()

	t.Run("invalid student id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/report/nope", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid student ID")
	})

	t.Run("invalid year query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/report/64f000000000000000000001?year=later", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid year")
	})
}

func TestDeleteStudentReportValidation(t *testing.T) {
	r := reportRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/report/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid student ID")
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func attendanceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/attendance/mark-attendance", CreateAttendance)
	r.PUT("/attendance/:id", UpdateAttendance)
	r.GET("/attendance/:classroomId", GetAttendanceByClassroom)
	r.GET("/attendance/:classroomId/:studentId", GetStudentAttendance)
	r.DELETE("/attendance/:classroomId", DeleteAttendance)
	return r
}

func TestCreateAttendanceValidation(t *testing.T) {
	r := attendanceRouter()

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
			wantMsg:  "Invalid request schema",
		},
		{
			name:     "empty status list",
			body:     `{"classroomId":"64f000000000000000000001","attendanceStatus":[]}`,
			wantCode: 400,
			wantMsg:  "Invalid request schema",
		},
		{
			name: "unknown status value",
			body: `{"classroomId":"64f000000000000000000001",` +
				`"attendanceStatus":[{"student":"64f000000000000000000002","status":"sick"}]}`,
			wantCode: 400,
			wantMsg:  "Invalid request schema",
		},
		{
			name: "invalid classroom id",
			body: `{"classroomId":"nope",` +
				`"attendanceStatus":[{"student":"64f000000000000000000002","status":"present"}]}`,
			wantCode: 400,
			wantMsg:  "Invalid classroom ID",
		},
		{
			name: "invalid student id in entry",
			body: `{"classroomId":"64f000000000000000000001",` +
				`"attendanceStatus":[{"student":"nope","status":"present"}]}`,
			wantCode: 400,
			wantMsg:  "Invalid student ID in attendance status",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/attendance/mark-attendance", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestUpdateAttendanceValidation(t *testing.T) {
	r := attendanceRouter()

	t.Run("invalid attendance id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/attendance/nope", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid attendance ID")
	})

	t.Run("no fields provided", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/attendance/64f000000000000000000001", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "No fields provided to update")
	})

	t.Run("bad status entry", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/attendance/64f000000000000000000001",
			strings.NewReader(`{"attendanceStatus":[{"student":"64f000000000000000000002","status":"around"}]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request schema")
	})
}

func TestAttendanceLookupValidation(t *testing.T) {
	r := attendanceRouter()

	tests := []struct {
		name    string
		method  string
		path    string
		wantMsg string
	}{
		{name: "get bad classroom id", method: http.MethodGet, path: "/attendance/nope", wantMsg: "Invalid classroom ID"},
		{name: "get bad student id", method: http.MethodGet, path: "/attendance/64f000000000000000000001/nope", wantMsg: "Invalid student ID"},
		{name: "delete bad classroom id", method: http.MethodDelete, path: "/attendance/nope", wantMsg: "Invalid classroom ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, 400, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

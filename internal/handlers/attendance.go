package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elijah571/Omeh-high-school/internal/database"
	"github.com/elijah571/Omeh-high-school/internal/models"
	"github.com/elijah571/Omeh-high-school/internal/utils"
	"github.com/elijah571/Omeh-high-school/internal/websocket"
)

type statusEntryRequest struct {
	Student string `json:"student" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=present absent late"`
}

type CreateAttendanceRequest struct {
	ClassroomID      string               `json:"classroomId" binding:"required"`
	CheckIn          string               `json:"checkIn"`
	CheckOut         string               `json:"checkOut"`
	AttendanceStatus []statusEntryRequest `json:"attendanceStatus" binding:"required,min=1,dive"`
}

// UpdateAttendanceRequest uses pointers for checkIn/checkOut: an absent field
// is a no-op, a present field (including "") replaces.
type UpdateAttendanceRequest struct {
	AttendanceStatus []statusEntryRequest `json:"attendanceStatus" binding:"omitempty,dive"`
	CheckIn          *string              `json:"checkIn"`
	CheckOut         *string              `json:"checkOut"`
}

type resolvedStatus struct {
	Student *models.Student `json:"student"`
	Status  string          `json:"status"`
}

// attendanceResponse overlays the raw status list with student identities.
type attendanceResponse struct {
	models.Attendance
	AttendanceStatus []resolvedStatus `json:"attendanceStatus"`
}

// CreateAttendance creates the one attendance record a classroom gets. Every
// status entry must reference a student on the classroom roster.
func CreateAttendance(c *gin.Context) {
	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	classroomID, err := primitive.ObjectIDFromHex(req.ClassroomID)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
		return
	}

	entries, err := parseStatusEntries(req.AttendanceStatus)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID in attendance status")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var classroom models.Classroom
	err = database.DB.Collection("classrooms").FindOne(ctx, bson.M{"_id": classroomID}).Decode(&classroom)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Classroom not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	if outside := models.OutsideRoster(classroom.Students, entries); len(outside) > 0 {
		utils.ErrorResponse(c, 400, "One or more students not found in this classroom")
		return
	}

	attendances := database.DB.Collection("attendances")
	err = attendances.FindOne(ctx, bson.M{"classroomId": classroomID}).Err()
	if err == nil {
		utils.ErrorResponse(c, 409, "Attendance record already exists for this classroom")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.InternalError(c, err)
		return
	}

	now := time.Now().UTC()
	attendance := models.Attendance{
		ID:               primitive.NewObjectID(),
		ClassroomID:      classroomID,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		AttendanceStatus: entries,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := attendances.InsertOne(ctx, attendance); err != nil {
		// the unique index closes the race between the FindOne above and here
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(c, 409, "Attendance record already exists for this classroom")
			return
		}
		utils.InternalError(c, err)
		return
	}

	resolved, err := resolveStatusEntries(ctx, attendance.AttendanceStatus)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	websocket.Broadcast("ATTENDANCE_CREATED", gin.H{
		"classroomId":      classroomID.Hex(),
		"attendanceStatus": attendance.AttendanceStatus,
	})

	utils.SuccessResponse(c, 201, "Attendance created successfully", gin.H{
		"attendance": attendanceResponse{Attendance: attendance, AttendanceStatus: resolved},
		"classroom":  classroom,
	})
}

// UpdateAttendance merges status entries into an existing record: an entry
// for a student already on the list replaces that student's status in place,
// anything else is appended. Each arm is a single atomic update, so two
// concurrent calls cannot duplicate a student or lose an entry.
func UpdateAttendance(c *gin.Context) {
	attendanceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid attendance ID")
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	if len(req.AttendanceStatus) == 0 && req.CheckIn == nil && req.CheckOut == nil {
		utils.ErrorResponse(c, 400, "No fields provided to update")
		return
	}

	entries, err := parseStatusEntries(req.AttendanceStatus)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID in attendance status")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	attendances := database.DB.Collection("attendances")

	var attendance models.Attendance
	err = attendances.FindOne(ctx, bson.M{"_id": attendanceID}).Decode(&attendance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Attendance record not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	now := time.Now().UTC()
	fields := bson.M{"updatedAt": now}
	if req.CheckIn != nil {
		fields["checkIn"] = *req.CheckIn
		attendance.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		fields["checkOut"] = *req.CheckOut
		attendance.CheckOut = *req.CheckOut
	}
	attendance.UpdatedAt = now

	if _, err := attendances.UpdateOne(ctx, bson.M{"_id": attendanceID}, bson.M{"$set": fields}); err != nil {
		utils.InternalError(c, err)
		return
	}

	for _, entry := range entries {
		if err := upsertStatus(ctx, attendances, attendanceID, entry); err != nil {
			utils.InternalError(c, err)
			return
		}
	}
	attendance.AttendanceStatus = models.MergeStatusEntries(attendance.AttendanceStatus, entries)

	resolved, err := resolveStatusEntries(ctx, attendance.AttendanceStatus)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	websocket.Broadcast("ATTENDANCE_UPDATED", gin.H{
		"classroomId":      attendance.ClassroomID.Hex(),
		"attendanceStatus": attendance.AttendanceStatus,
	})

	utils.SuccessResponse(c, 200, "Attendance updated successfully", gin.H{
		"attendance": attendanceResponse{Attendance: attendance, AttendanceStatus: resolved},
	})
}

// GetAttendanceByClassroom returns the classroom's record with student
// identities resolved.
func GetAttendanceByClassroom(c *gin.Context) {
	classroomID, err := primitive.ObjectIDFromHex(c.Param("classroomId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var attendance models.Attendance
	err = database.DB.Collection("attendances").FindOne(ctx, bson.M{"classroomId": classroomID}).Decode(&attendance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Attendance not found for this classroom")
			return
		}
		utils.InternalError(c, err)
		return
	}

	resolved, err := resolveStatusEntries(ctx, attendance.AttendanceStatus)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Attendance records retrieved successfully", gin.H{
		"attendance": attendanceResponse{Attendance: attendance, AttendanceStatus: resolved},
	})
}

// GetStudentAttendance returns one student's status entry within a
// classroom's record.
func GetStudentAttendance(c *gin.Context) {
	classroomID, err := primitive.ObjectIDFromHex(c.Param("classroomId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
		return
	}

	studentID, err := primitive.ObjectIDFromHex(c.Param("studentId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var attendance models.Attendance
	err = database.DB.Collection("attendances").FindOne(ctx, bson.M{"classroomId": classroomID}).Decode(&attendance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Attendance not found for this classroom")
			return
		}
		utils.InternalError(c, err)
		return
	}

	entry, ok := models.FindStatus(attendance.AttendanceStatus, studentID)
	if !ok {
		utils.ErrorResponse(c, 404, "Student not found in the attendance record")
		return
	}

	resolved, err := resolveStatusEntries(ctx, []models.StatusEntry{entry})
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Student's attendance retrieved successfully", gin.H{
		"studentAttendance": resolved[0],
	})
}

func DeleteAttendance(c *gin.Context) {
	classroomID, err := primitive.ObjectIDFromHex(c.Param("classroomId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = database.DB.Collection("attendances").FindOneAndDelete(ctx, bson.M{"classroomId": classroomID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Attendance not found for this classroom")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Attendance deleted successfully", nil)
}

func parseStatusEntries(reqs []statusEntryRequest) ([]models.StatusEntry, error) {
	entries := make([]models.StatusEntry, 0, len(reqs))
	for _, r := range reqs {
		sid, err := primitive.ObjectIDFromHex(r.Student)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.StatusEntry{Student: sid, Status: r.Status})
	}
	return entries, nil
}

// upsertStatus is the per-entry atomic merge: positional replace when the
// student already has an entry, guarded append otherwise.
func upsertStatus(ctx context.Context, attendances *mongo.Collection, attendanceID primitive.ObjectID, entry models.StatusEntry) error {
	res, err := attendances.UpdateOne(ctx,
		bson.M{"_id": attendanceID, "attendanceStatus.student": entry.Student},
		bson.M{"$set": bson.M{"attendanceStatus.$.status": entry.Status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	_, err = attendances.UpdateOne(ctx,
		bson.M{"_id": attendanceID, "attendanceStatus.student": bson.M{"$ne": entry.Student}},
		bson.M{"$push": bson.M{"attendanceStatus": entry}},
	)
	return err
}

// resolveStatusEntries swaps student references for student documents. A
// reference that no longer resolves comes back with a null student, the same
// way a dangling populate would.
func resolveStatusEntries(ctx context.Context, entries []models.StatusEntry) ([]resolvedStatus, error) {
	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Student)
	}

	students, err := fetchStudents(ctx, ids)
	if err != nil {
		return nil, err
	}

	resolved := make([]resolvedStatus, 0, len(entries))
	for _, e := range entries {
		rs := resolvedStatus{Status: e.Status}
		if s, ok := students[e.Student]; ok {
			rs.Student = &s
		}
		resolved = append(resolved, rs)
	}
	return resolved, nil
}

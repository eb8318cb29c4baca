package handlers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elijah571/Omeh-high-school/internal/database"
	"github.com/elijah571/Omeh-high-school/internal/models"
	"github.com/elijah571/Omeh-high-school/internal/utils"
)

type CreateReportRequest struct {
	StudentID      string             `json:"studentId" binding:"required"`
	ClassroomID    string             `json:"classroomId" binding:"required"`
	Year           int                `json:"year" binding:"required"`
	FirstCA        *models.ScoreGroup `json:"firstCA" binding:"required"`
	SecondCA       *models.ScoreGroup `json:"secondCA" binding:"required"`
	Exam           *models.ScoreGroup `json:"exam" binding:"required"`
	TeacherRemarks string             `json:"teacherRemarks"`
}

// UpdateReportRequest replaces whole score groups, never individual subjects.
type UpdateReportRequest struct {
	FirstCA        *models.ScoreGroup `json:"firstCA"`
	SecondCA       *models.ScoreGroup `json:"secondCA"`
	Exam           *models.ScoreGroup `json:"exam"`
	TeacherRemarks *string            `json:"teacherRemarks"`
}

type BulkRemarksRequest struct {
	TeacherRemarks string `json:"teacherRemarks" binding:"required"`
}

// reportResponse overlays the student and classroom references with their
// documents.
type reportResponse struct {
	models.Report
	Student   *models.Student   `json:"student"`
	Classroom *models.Classroom `json:"classroom"`
}

// CreateReport creates the termly report for one (student, year). The total
// is derived from the three score groups; it is not part of the request.
func CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "All fields are required")
		return
	}

	studentID, err := primitive.ObjectIDFromHex(req.StudentID)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	classroomID, err := primitive.ObjectIDFromHex(req.ClassroomID)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	err = database.DB.Collection("students").FindOne(ctx, bson.M{"_id": studentID}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

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

	reports := database.DB.Collection("reports")
	err = reports.FindOne(ctx, bson.M{"student": studentID, "year": req.Year}).Err()
	if err == nil {
		utils.ErrorResponse(c, 409, "Report already exists for this student and year")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.InternalError(c, err)
		return
	}

	now := time.Now().UTC()
	report := models.Report{
		ID:             primitive.NewObjectID(),
		Student:        studentID,
		Classroom:      classroomID,
		Year:           req.Year,
		FirstCA:        *req.FirstCA,
		SecondCA:       *req.SecondCA,
		Exam:           *req.Exam,
		Total:          models.ComputeTotal(*req.FirstCA, *req.SecondCA, *req.Exam),
		TeacherRemarks: req.TeacherRemarks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := reports.InsertOne(ctx, report); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(c, 409, "Report already exists for this student and year")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 201, "Termly report created successfully", gin.H{
		"report": reportResponse{Report: report, Student: &student, Classroom: &classroom},
	})
}

// GetAllReports lists every report with student and classroom resolved. An
// empty collection is an empty list, not an error.
func GetAllReports(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("reports").Find(ctx, bson.M{})
	if err != nil {
		utils.InternalError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		utils.InternalError(c, err)
		return
	}

	resolved, err := resolveReports(ctx, reports)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Reports retrieved successfully", gin.H{
		"reports": resolved,
	})
}

// GetStudentReport returns one student's report. With several years on file
// the ?year= query narrows the lookup.
func GetStudentReport(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("studentId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	filter := bson.M{"student": studentID}
	if yearParam := c.Query("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid year")
			return
		}
		filter["year"] = year
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var report models.Report
	err = database.DB.Collection("reports").FindOne(ctx, filter).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Report not found for this student")
			return
		}
		utils.InternalError(c, err)
		return
	}

	resolved, err := resolveReports(ctx, []models.Report{report})
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Report retrieved successfully", gin.H{
		"report": resolved[0],
	})
}

// UpdateStudentReport replaces any provided score group wholesale and derives
// the total from the full post-update document. Both happen in one
// aggregation-pipeline update, so the total always reflects every group,
// including the ones this call did not touch, and a concurrent update cannot
// slip in between.
func UpdateStudentReport(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("studentId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	if req.FirstCA == nil && req.SecondCA == nil && req.Exam == nil && req.TeacherRemarks == nil {
		utils.ErrorResponse(c, 400, "No fields provided to update")
		return
	}

	filter := bson.M{"student": studentID}
	if yearParam := c.Query("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid year")
			return
		}
		filter["year"] = year
	}

	// $literal keeps replacement values out of expression evaluation
	set := bson.M{"updatedAt": bson.M{"$literal": time.Now().UTC()}}
	if req.FirstCA != nil {
		set["firstCA"] = bson.M{"$literal": *req.FirstCA}
	}
	if req.SecondCA != nil {
		set["secondCA"] = bson.M{"$literal": *req.SecondCA}
	}
	if req.Exam != nil {
		set["exam"] = bson.M{"$literal": *req.Exam}
	}
	if req.TeacherRemarks != nil {
		set["teacherRemarks"] = bson.M{"$literal": *req.TeacherRemarks}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: set}},
		{{Key: "$set", Value: bson.M{
			"total": bson.M{"$sum": bson.M{"$concatArrays": bson.A{
				"$firstCA.subjects.score",
				"$secondCA.subjects.score",
				"$exam.subjects.score",
			}}},
		}}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reports := database.DB.Collection("reports")
	res, err := reports.UpdateOne(ctx, filter, pipeline)
	if err != nil {
		utils.InternalError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.ErrorResponse(c, 404, "Report not found for this student")
		return
	}

	var report models.Report
	if err := reports.FindOne(ctx, filter).Decode(&report); err != nil {
		utils.InternalError(c, err)
		return
	}

	resolved, err := resolveReports(ctx, []models.Report{report})
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Student report updated successfully", gin.H{
		"report": resolved[0],
	})
}

// UpdateAllReports applies the same teacher remarks to every report.
func UpdateAllReports(c *gin.Context) {
	var req BulkRemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Teacher remarks are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.DB.Collection("reports").UpdateMany(ctx, bson.M{}, bson.M{
		"$set": bson.M{
			"teacherRemarks": req.TeacherRemarks,
			"updatedAt":      time.Now().UTC(),
		},
	})
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, fmt.Sprintf("%d reports updated successfully", res.ModifiedCount), gin.H{
		"modifiedCount": res.ModifiedCount,
	})
}

// DeleteAllReports removes every report; deleting from an empty collection
// reports a count of 0 rather than an error.
func DeleteAllReports(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.DB.Collection("reports").DeleteMany(ctx, bson.M{})
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, fmt.Sprintf("%d reports deleted successfully", res.DeletedCount), gin.H{
		"deletedCount": res.DeletedCount,
	})
}

func DeleteStudentReport(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("studentId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = database.DB.Collection("students").FindOne(ctx, bson.M{"_id": studentID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	err = database.DB.Collection("reports").FindOneAndDelete(ctx, bson.M{"student": studentID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Report not found for this student")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Student's report successfully deleted", nil)
}

func resolveReports(ctx context.Context, reports []models.Report) ([]reportResponse, error) {
	studentIDs := make([]primitive.ObjectID, 0, len(reports))
	classroomIDs := make([]primitive.ObjectID, 0, len(reports))
	for _, r := range reports {
		studentIDs = append(studentIDs, r.Student)
		classroomIDs = append(classroomIDs, r.Classroom)
	}

	students, err := fetchStudents(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	classrooms, err := fetchClassrooms(ctx, classroomIDs)
	if err != nil {
		return nil, err
	}

	resolved := make([]reportResponse, 0, len(reports))
	for _, r := range reports {
		rr := reportResponse{Report: r}
		if s, ok := students[r.Student]; ok {
			rr.Student = &s
		}
		if cl, ok := classrooms[r.Classroom]; ok {
			rr.Classroom = &cl
		}
		resolved = append(resolved, rr)
	}
	return resolved, nil
}

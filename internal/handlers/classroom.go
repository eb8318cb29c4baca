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
)

type CreateClassroomRequest struct {
	Name       string `json:"name" binding:"required"`
	GradeLevel string `json:"gradeLevel" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type AssignTeacherRequest struct {
	ClassroomID string                `json:"classroomId" binding:"required"`
	SubjectName string                `json:"subjectName" binding:"required"`
	TeacherID   string                `json:"teacherId" binding:"required"`
	Schedule    []models.ScheduleSlot `json:"schedule" binding:"required,min=1,dive"`
}

type AssignStudentsRequest struct {
	ClassroomID string   `json:"classroomId" binding:"required"`
	StudentIDs  []string `json:"studentIds" binding:"required,min=1"`
}

func CreateClassroom(c *gin.Context) {
	var req CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Classroom name, grade level and department are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	classroom := models.Classroom{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
		Department: req.Department,
		Subjects:   []models.ClassroomSubject{},
		Students:   []primitive.ObjectID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := database.DB.Collection("classrooms").InsertOne(ctx, classroom); err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 201, "Classroom created successfully", gin.H{
		"classroom": classroom,
	})
}

// AssignTeacher adds a subject entry (teacher + schedule) to a classroom.
func AssignTeacher(c *gin.Context) {
	var req AssignTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "All fields are required")
		return
	}

	classroomID, err := primitive.ObjectIDFromHex(req.ClassroomID)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
		return
	}

	teacherID, err := primitive.ObjectIDFromHex(req.TeacherID)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid teacher ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	classrooms := database.DB.Collection("classrooms")
	err = classrooms.FindOne(ctx, bson.M{"_id": classroomID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Classroom not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	err = database.DB.Collection("teachers").FindOne(ctx, bson.M{"_id": teacherID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Teacher not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	subject := models.ClassroomSubject{
		SubjectName: req.SubjectName,
		Teachers:    []primitive.ObjectID{teacherID},
		Schedule:    req.Schedule,
	}

	_, err = classrooms.UpdateOne(ctx, bson.M{"_id": classroomID}, bson.M{
		"$push": bson.M{"subjects": subject},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	var classroom models.Classroom
	if err := classrooms.FindOne(ctx, bson.M{"_id": classroomID}).Decode(&classroom); err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Teacher assigned to classroom successfully", gin.H{
		"classroom": classroom,
	})
}

// AssignStudents enrolls students into a classroom roster. $addToSet keeps
// the roster duplicate-free no matter how often a student is submitted.
func AssignStudents(c *gin.Context) {
	var req AssignStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "All fields are required")
		return
	}

	classroomID, err := primitive.ObjectIDFromHex(req.ClassroomID)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
		return
	}

	studentIDs, err := parseObjectIDs(req.StudentIDs)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	classrooms := database.DB.Collection("classrooms")
	err = classrooms.FindOne(ctx, bson.M{"_id": classroomID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Classroom not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	students, err := fetchStudents(ctx, studentIDs)
	if err != nil {
		utils.InternalError(c, err)
		return
	}
	for _, id := range studentIDs {
		if _, ok := students[id]; !ok {
			utils.ErrorResponse(c, 400, "One or more students not found")
			return
		}
	}

	_, err = classrooms.UpdateOne(ctx, bson.M{"_id": classroomID}, bson.M{
		"$addToSet": bson.M{"students": bson.M{"$each": studentIDs}},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	var classroom models.Classroom
	if err := classrooms.FindOne(ctx, bson.M{"_id": classroomID}).Decode(&classroom); err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Students added to classroom successfully", gin.H{
		"classroom": classroom,
	})
}

func GetClassroom(c *gin.Context) {
	classroomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid classroom ID")
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

	students, err := fetchStudents(ctx, classroom.Students)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	roster := make([]models.Student, 0, len(classroom.Students))
	for _, id := range classroom.Students {
		if s, ok := students[id]; ok {
			roster = append(roster, s)
		}
	}

	utils.SuccessResponse(c, 200, "Classroom retrieved successfully", gin.H{
		"classroom": classroom,
		"students":  roster,
	})
}

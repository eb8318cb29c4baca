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

type CreateStudentRequest struct {
	FullName string   `json:"fullName" binding:"required"`
	Gender   string   `json:"gender" binding:"required"`
	Parent   string   `json:"parent" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    string   `json:"phone" binding:"required"`
	DOB      string   `json:"dob" binding:"required"`
	Address  string   `json:"address" binding:"required"`
	Teachers []string `json:"teachers" binding:"required,min=1"`
	Image    string   `json:"image" binding:"required"`
}

type UpdateStudentRequest struct {
	FullName *string  `json:"fullName"`
	Gender   *string  `json:"gender"`
	Parent   *string  `json:"parent"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
	DOB      *string  `json:"dob"`
	Address  *string  `json:"address"`
	Teachers []string `json:"teachers"`
	Image    *string  `json:"image"`
}

// studentResponse swaps the teacher references for teacher documents.
type studentResponse struct {
	models.Student
	Teachers []models.Teacher `json:"teachers"`
}

func CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "All fields are required")
		return
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid date of birth, expected YYYY-MM-DD")
		return
	}

	teacherIDs, err := parseObjectIDs(req.Teachers)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid teacher ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	students := database.DB.Collection("students")
	err = students.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		utils.ErrorResponse(c, 409, "Email already in use")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.InternalError(c, err)
		return
	}

	now := time.Now().UTC()
	student := models.Student{
		ID:        primitive.NewObjectID(),
		FullName:  req.FullName,
		Gender:    req.Gender,
		Role:      "Student",
		Parent:    req.Parent,
		Email:     req.Email,
		Phone:     req.Phone,
		DOB:       dob,
		Address:   req.Address,
		Teachers:  teacherIDs,
		Image:     req.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := students.InsertOne(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(c, 409, "Email already in use")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 201, "Student enrolled successfully", gin.H{
		"student": student,
	})
}

func GetAllStudents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("students").Find(ctx, bson.M{})
	if err != nil {
		utils.InternalError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		utils.InternalError(c, err)
		return
	}

	var teacherIDs []primitive.ObjectID
	for _, s := range students {
		teacherIDs = append(teacherIDs, s.Teachers...)
	}
	teachers, err := fetchTeachers(ctx, teacherIDs)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	resolved := make([]studentResponse, 0, len(students))
	for _, s := range students {
		resolved = append(resolved, populateStudent(s, teachers))
	}

	utils.SuccessResponse(c, 200, "Students retrieved successfully", gin.H{
		"students": resolved,
	})
}

func GetStudentByID(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
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

	teachers, err := fetchTeachers(ctx, student.Teachers)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Student retrieved successfully", gin.H{
		"student": populateStudent(student, teachers),
	})
}

func UpdateStudent(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	fields := bson.M{"updatedAt": time.Now().UTC()}
	if req.FullName != nil {
		fields["fullName"] = *req.FullName
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Parent != nil {
		fields["parent"] = *req.Parent
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid date of birth, expected YYYY-MM-DD")
			return
		}
		fields["dob"] = dob
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Teachers != nil {
		teacherIDs, err := parseObjectIDs(req.Teachers)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid teacher ID")
			return
		}
		fields["teachers"] = teacherIDs
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	students := database.DB.Collection("students")
	res, err := students.UpdateOne(ctx, bson.M{"_id": studentID}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(c, 409, "Email already in use")
			return
		}
		utils.InternalError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.ErrorResponse(c, 404, "Student not found")
		return
	}

	var student models.Student
	if err := students.FindOne(ctx, bson.M{"_id": studentID}).Decode(&student); err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Profile updated successfully", gin.H{
		"student": student,
	})
}

func DeleteStudent(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = database.DB.Collection("students").FindOneAndDelete(ctx, bson.M{"_id": studentID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Student deleted successfully", nil)
}

func populateStudent(s models.Student, teachers map[primitive.ObjectID]models.Teacher) studentResponse {
	resolved := make([]models.Teacher, 0, len(s.Teachers))
	for _, id := range s.Teachers {
		if t, ok := teachers[id]; ok {
			resolved = append(resolved, t)
		}
	}
	return studentResponse{Student: s, Teachers: resolved}
}

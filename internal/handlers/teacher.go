package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/elijah571/Omeh-high-school/internal/database"
	"github.com/elijah571/Omeh-high-school/internal/models"
	"github.com/elijah571/Omeh-high-school/internal/utils"
)

type CreateTeacherRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Image    string `json:"image" binding:"required"`
}

type UpdateTeacherRequest struct {
	FullName *string `json:"fullName"`
	Gender   *string `json:"gender"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Subject  *string `json:"subject"`
	Image    *string `json:"image"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func CreateTeacher(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "All fields are required to be filled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	teachers := database.DB.Collection("teachers")
	err := teachers.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		utils.ErrorResponse(c, 409, "Email already in use")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.InternalError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, err)
		return
	}

	now := time.Now().UTC()
	teacher := models.Teacher{
		ID:        primitive.NewObjectID(),
		FullName:  req.FullName,
		Gender:    req.Gender,
		Email:     req.Email,
		Password:  string(hash),
		Phone:     req.Phone,
		Subject:   req.Subject,
		Role:      "Teacher",
		Image:     req.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := teachers.InsertOne(ctx, teacher); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(c, 409, "Email already in use")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 201, "Teacher created successfully", gin.H{
		"teacher": teacher,
	})
}

func GetAllTeachers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("teachers").Find(ctx, bson.M{})
	if err != nil {
		utils.InternalError(c, err)
		return
	}
	defer cursor.Close(ctx)

	teachers := []models.Teacher{}
	if err := cursor.All(ctx, &teachers); err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Teachers retrieved successfully", gin.H{
		"teachers": teachers,
	})
}

func GetTeacherByID(c *gin.Context) {
	teacherID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid teacher ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var teacher models.Teacher
	err = database.DB.Collection("teachers").FindOne(ctx, bson.M{"_id": teacherID}).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Teacher not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Teacher retrieved successfully", gin.H{
		"teacher": teacher,
	})
}

func UpdateTeacher(c *gin.Context) {
	teacherID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid teacher ID")
		return
	}

	var req UpdateTeacherRequest
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
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	teachers := database.DB.Collection("teachers")
	res, err := teachers.UpdateOne(ctx, bson.M{"_id": teacherID}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(c, 409, "Email already in use")
			return
		}
		utils.InternalError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.ErrorResponse(c, 404, "Teacher not found")
		return
	}

	var teacher models.Teacher
	if err := teachers.FindOne(ctx, bson.M{"_id": teacherID}).Decode(&teacher); err != nil {
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Profile updated successfully", gin.H{
		"teacher": teacher,
	})
}

func DeleteTeacher(c *gin.Context) {
	teacherID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid teacher ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = database.DB.Collection("teachers").FindOneAndDelete(ctx, bson.M{"_id": teacherID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 404, "Teacher not found")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Teacher deleted successfully", nil)
}

// TeacherLogin issues the session cookie for a teacher account.
func TeacherLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var teacher models.Teacher
	err := database.DB.Collection("teachers").FindOne(ctx, bson.M{"email": req.Email}).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 400, "Invalid email")
			return
		}
		utils.InternalError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(req.Password)) != nil {
		utils.ErrorResponse(c, 400, "Invalid password")
		return
	}

	token, err := utils.GenerateToken(teacher.ID.Hex(), "teacher")
	if err != nil {
		utils.InternalError(c, err)
		return
	}
	utils.SetTokenCookie(c, token)

	utils.SuccessResponse(c, 200, "Login successful", gin.H{
		"teacher": gin.H{
			"id":       teacher.ID.Hex(),
			"email":    teacher.Email,
			"fullName": teacher.FullName,
		},
	})
}

func TeacherLogout(c *gin.Context) {
	utils.ClearTokenCookie(c)
	utils.SuccessResponse(c, 200, "Teacher logged out successfully", nil)
}

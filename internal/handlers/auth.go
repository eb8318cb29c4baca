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

type AdminSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func AdminSignup(c *gin.Context) {
	var req AdminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Name, email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admins := database.DB.Collection("administratives")
	err := admins.FindOne(ctx, bson.M{"email": req.Email}).Err()
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
	admin := models.Administrative{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		IsAdmin:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := admins.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(c, 409, "Email already in use")
			return
		}
		utils.InternalError(c, err)
		return
	}

	utils.SuccessResponse(c, 201, "Admin account created successfully", gin.H{
		"admin": admin,
	})
}

// AdminLogin issues the session cookie for an administrative account.
func AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var admin models.Administrative
	err := database.DB.Collection("administratives").FindOne(ctx, bson.M{"email": req.Email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, 400, "Invalid email")
			return
		}
		utils.InternalError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		utils.ErrorResponse(c, 400, "Invalid password")
		return
	}

	token, err := utils.GenerateToken(admin.ID.Hex(), "admin")
	if err != nil {
		utils.InternalError(c, err)
		return
	}
	utils.SetTokenCookie(c, token)

	utils.SuccessResponse(c, 200, "Login successful", gin.H{
		"admin": gin.H{
			"id":    admin.ID.Hex(),
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

func AdminLogout(c *gin.Context) {
	utils.ClearTokenCookie(c)
	utils.SuccessResponse(c, 200, "Logged out successfully", nil)
}

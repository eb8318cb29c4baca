package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elijah571/Omeh-high-school/internal/database"
	"github.com/elijah571/Omeh-high-school/internal/models"
	"github.com/elijah571/Omeh-high-school/internal/utils"
)

// Authorize admits any request carrying a valid session token.
func Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}
		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AuthorizeAdmin additionally resolves the token subject against the
// administratives collection and requires the isAdmin flag.
func AuthorizeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		adminID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.ErrorResponse(c, 403, "Access denied. Admins only")
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var admin models.Administrative
		err = database.DB.Collection("administratives").FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin)
		if err != nil || !admin.IsAdmin {
			utils.ErrorResponse(c, 403, "Access denied. Admins only")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func authenticate(c *gin.Context) (*utils.Claims, bool) {
	token := utils.TokenFromRequest(c)
	if token == "" {
		utils.ErrorResponse(c, 401, "No token provided")
		c.Abort()
		return nil, false
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		utils.ErrorResponse(c, 401, "Invalid or expired token")
		c.Abort()
		return nil, false
	}
	return claims, true
}

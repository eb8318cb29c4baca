package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName  string               `bson:"fullName" json:"fullName"`
	Gender    string               `bson:"gender" json:"gender"`
	Role      string               `bson:"role" json:"role"`
	Parent    string               `bson:"parent" json:"parent"`
	Email     string               `bson:"email" json:"email"`
	Phone     string               `bson:"phone" json:"phone"`
	DOB       time.Time            `bson:"dob" json:"dob"`
	Address   string               `bson:"address" json:"address"`
	Teachers  []primitive.ObjectID `bson:"teachers" json:"teachers"`
	Image     string               `bson:"image" json:"image"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

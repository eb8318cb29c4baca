package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ScheduleSlot struct {
	Day       string `bson:"day" json:"day" binding:"required"`
	StartTime string `bson:"startTime" json:"startTime" binding:"required"`
	EndTime   string `bson:"endTime" json:"endTime" binding:"required"`
}

type ClassroomSubject struct {
	SubjectName string               `bson:"subjectName" json:"subjectName"`
	Teachers    []primitive.ObjectID `bson:"teachers" json:"teachers"`
	Schedule    []ScheduleSlot       `bson:"schedule" json:"schedule"`
}

type Classroom struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string               `bson:"name" json:"name"`
	GradeLevel string               `bson:"gradeLevel" json:"gradeLevel"`
	Department string               `bson:"department" json:"department"`
	Subjects   []ClassroomSubject   `bson:"subjects" json:"subjects"`
	Students   []primitive.ObjectID `bson:"students" json:"students"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubjectScore struct {
	SubjectName     string  `bson:"subjectName" json:"subjectName" binding:"required"`
	Score           float64 `bson:"score" json:"score" binding:"min=0"`
	Grade           string  `bson:"grade" json:"grade" binding:"required,oneof=A B C D"`
	TeacherComments string  `bson:"teacherComments" json:"teacherComments"`
}

type ScoreGroup struct {
	Subjects []SubjectScore `bson:"subjects" json:"subjects" binding:"omitempty,dive"`
}

// Report is the termly report for one (student, year). Total is derived from
// the three score groups and is never written independently.
type Report struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Student        primitive.ObjectID `bson:"student" json:"student"`
	Classroom      primitive.ObjectID `bson:"classroom" json:"classroom"`
	Year           int                `bson:"year" json:"year"`
	FirstCA        ScoreGroup         `bson:"firstCA" json:"firstCA"`
	SecondCA       ScoreGroup         `bson:"secondCA" json:"secondCA"`
	Exam           ScoreGroup         `bson:"exam" json:"exam"`
	Total          float64            `bson:"total" json:"total"`
	TeacherRemarks string             `bson:"teacherRemarks" json:"teacherRemarks"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ComputeTotal sums every subject score across all three groups.
func ComputeTotal(firstCA, secondCA, exam ScoreGroup) float64 {
	var total float64
	for _, group := range []ScoreGroup{firstCA, secondCA, exam} {
		for _, subject := range group.Subjects {
			total += subject.Score
		}
	}
	return total
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StatusEntry struct {
	Student primitive.ObjectID `bson:"student" json:"student"`
	Status  string             `bson:"status" json:"status"`
}

// Attendance is the single per-classroom record. Each student appears at most
// once in AttendanceStatus; updates merge by student rather than append.
type Attendance struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassroomID      primitive.ObjectID `bson:"classroomId" json:"classroomId"`
	CheckIn          string             `bson:"checkIn" json:"checkIn"`
	CheckOut         string             `bson:"checkOut" json:"checkOut"`
	AttendanceStatus []StatusEntry      `bson:"attendanceStatus" json:"attendanceStatus"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MergeStatusEntries applies incoming entries on top of existing ones: an
// entry for a student already on the list replaces that student's status in
// place, keeping its position; anything else is appended in input order.
func MergeStatusEntries(existing, incoming []StatusEntry) []StatusEntry {
	merged := make([]StatusEntry, len(existing))
	copy(merged, existing)

	index := make(map[primitive.ObjectID]int, len(merged))
	for i, e := range merged {
		index[e.Student] = i
	}

	for _, in := range incoming {
		if i, ok := index[in.Student]; ok {
			merged[i].Status = in.Status
			continue
		}
		index[in.Student] = len(merged)
		merged = append(merged, in)
	}
	return merged
}

// OutsideRoster returns the students referenced by entries that are not on
// the classroom roster.
func OutsideRoster(roster []primitive.ObjectID, entries []StatusEntry) []primitive.ObjectID {
	enrolled := make(map[primitive.ObjectID]struct{}, len(roster))
	for _, id := range roster {
		enrolled[id] = struct{}{}
	}

	var outside []primitive.ObjectID
	for _, e := range entries {
		if _, ok := enrolled[e.Student]; !ok {
			outside = append(outside, e.Student)
		}
	}
	return outside
}

// FindStatus returns the entry for the given student, if one exists.
func FindStatus(entries []StatusEntry, student primitive.ObjectID) (StatusEntry, bool) {
	for _, e := range entries {
		if e.Student == student {
			return e, true
		}
	}
	return StatusEntry{}, false
}

package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elijah571/Omeh-high-school/internal/database"
	"github.com/elijah571/Omeh-high-school/internal/models"
)

// fetchStudents loads the given students into a map keyed by id. Unknown ids
// are simply absent, like an unpopulated reference.
func fetchStudents(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Student, error) {
	students := make(map[primitive.ObjectID]models.Student, len(ids))
	if len(ids) == 0 {
		return students, nil
	}

	cursor, err := database.DB.Collection("students").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		students[s.ID] = s
	}
	return students, cursor.Err()
}

func fetchTeachers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Teacher, error) {
	teachers := make(map[primitive.ObjectID]models.Teacher, len(ids))
	if len(ids) == 0 {
		return teachers, nil
	}

	cursor, err := database.DB.Collection("teachers").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var t models.Teacher
		if err := cursor.Decode(&t); err != nil {
			return nil, err
		}
		teachers[t.ID] = t
	}
	return teachers, cursor.Err()
}

func fetchClassrooms(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Classroom, error) {
	classrooms := make(map[primitive.ObjectID]models.Classroom, len(ids))
	if len(ids) == 0 {
		return classrooms, nil
	}

	cursor, err := database.DB.Collection("classrooms").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var cl models.Classroom
		if err := cursor.Decode(&cl); err != nil {
			return nil, err
		}
		classrooms[cl.ID] = cl
	}
	return classrooms, cursor.Err()
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

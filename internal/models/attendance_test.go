package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeStatusEntries(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	existing := []StatusEntry{
		{Student: a, Status: "present"},
		{Student: b, Status: "absent"},
	}

	t.Run("replace in place keeps position", func(t *testing.T) {
		merged := MergeStatusEntries(existing, []StatusEntry{{Student: a, Status: "late"}})
		if len(merged) != 2 {
			t.Fatalf("len = %d, want 2", len(merged))
		}
		if merged[0].Student != a || merged[0].Status != "late" {
			t.Errorf("merged[0] = %+v, want student a with status late", merged[0])
		}
		if merged[1].Status != "absent" {
			t.Errorf("merged[1].Status = %q, untouched entry must not change", merged[1].Status)
		}
	})

	t.Run("new student appends", func(t *testing.T) {
		merged := MergeStatusEntries(existing, []StatusEntry{{Student: c, Status: "present"}})
		if len(merged) != 3 {
			t.Fatalf("len = %d, want 3", len(merged))
		}
		if merged[2].Student != c {
			t.Errorf("merged[2].Student = %v, want c appended last", merged[2].Student)
		}
	})

	t.Run("same entry twice stays single", func(t *testing.T) {
		in := []StatusEntry{{Student: c, Status: "present"}}
		merged := MergeStatusEntries(MergeStatusEntries(existing, in), in)
		count := 0
		for _, e := range merged {
			if e.Student == c {
				count++
			}
		}
		if count != 1 {
			t.Errorf("student c appears %d times, want 1", count)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		MergeStatusEntries(existing, []StatusEntry{{Student: b, Status: "late"}})
		if existing[1].Status != "absent" {
			t.Errorf("existing[1].Status = %q, input slice must stay untouched", existing[1].Status)
		}
	})
}

func TestOutsideRoster(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	roster := []primitive.ObjectID{a, b}

	if out := OutsideRoster(roster, []StatusEntry{{Student: a, Status: "present"}, {Student: b, Status: "late"}}); len(out) != 0 {
		t.Errorf("OutsideRoster() = %v, want none for enrolled students", out)
	}

	out := OutsideRoster(roster, []StatusEntry{{Student: a, Status: "present"}, {Student: stranger, Status: "absent"}})
	if len(out) != 1 || out[0] != stranger {
		t.Errorf("OutsideRoster() = %v, want just the stranger", out)
	}
}

func TestFindStatus(t *testing.T) {
	a := primitive.NewObjectID()
	entries := []StatusEntry{{Student: a, Status: "late"}}

	entry, ok := FindStatus(entries, a)
	if !ok || entry.Status != "late" {
		t.Errorf("FindStatus() = %+v, %v; want the late entry", entry, ok)
	}

	if _, ok := FindStatus(entries, primitive.NewObjectID()); ok {
		t.Error("FindStatus() found an entry for an unknown student")
	}
}

package models

import "testing"

func group(scores ...float64) ScoreGroup {
	g := ScoreGroup{Subjects: []SubjectScore{}}
	for _, s := range scores {
		g.Subjects = append(g.Subjects, SubjectScore{SubjectName: "English", Score: s, Grade: "B"})
	}
	return g
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		firstCA  ScoreGroup
		secondCA ScoreGroup
		exam     ScoreGroup
		want     float64
	}{
		{name: "empty groups", want: 0},
		{name: "single subject per group", firstCA: group(70), secondCA: group(60), exam: group(50), want: 180},
		{name: "several subjects per group", firstCA: group(70, 55), secondCA: group(60, 45), exam: group(50, 80), want: 360},
		{name: "uneven groups", firstCA: group(70), secondCA: group(), exam: group(50, 30), want: 150},
		{name: "fractional scores", firstCA: group(12.5), secondCA: group(37.5), exam: group(10), want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotal(tt.firstCA, tt.secondCA, tt.exam); got != tt.want {
				t.Errorf("ComputeTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Replacing one group must recompute the total from all three current groups,
// not only from the one that changed.
func TestComputeTotalAfterGroupReplacement(t *testing.T) {
	r := Report{
		FirstCA:  group(70),
		SecondCA: group(60),
		Exam:     group(50),
	}
	r.Total = ComputeTotal(r.FirstCA, r.SecondCA, r.Exam)
	if r.Total != 180 {
		t.Fatalf("initial total = %v, want 180", r.Total)
	}

	// remark-only update leaves the groups alone, so the total must not move
	r.TeacherRemarks = "Keep it up"
	r.Total = ComputeTotal(r.FirstCA, r.SecondCA, r.Exam)
	if r.Total != 180 {
		t.Fatalf("total after remark update = %v, want 180", r.Total)
	}

	// wholesale replacement of secondCA
	r.SecondCA = group(80)
	r.Total = ComputeTotal(r.FirstCA, r.SecondCA, r.Exam)
	if r.Total != 200 {
		t.Fatalf("total after secondCA replacement = %v, want 200", r.Total)
	}
}

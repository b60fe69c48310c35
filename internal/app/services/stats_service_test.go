package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coursemart/coursemart-backend/internal/app/models"
)

type fakeAssignmentStats struct {
	assignments []*models.Assignment
}

func (f *fakeAssignmentStats) FindByStudent(ctx context.Context, email string) ([]*models.Assignment, error) {
	return f.assignments, nil
}

func (f *fakeAssignmentStats) CountByTeacher(ctx context.Context, email string) (int64, error) {
	return int64(len(f.assignments)), nil
}

func (f *fakeAssignmentStats) CountByStudent(ctx context.Context, email string) (int64, error) {
	return int64(len(f.assignments)), nil
}

func newStatsServiceWithAssignments(assignments []*models.Assignment) StatsService {
	return NewStatsService(nil, &fakeAssignmentStats{assignments: assignments}, nil, nil, zerolog.Nop())
}

func graded(values ...float64) []*models.Assignment {
	assignments := make([]*models.Assignment, 0, len(values))
	for _, v := range values {
		assignments = append(assignments, &models.Assignment{Mark: models.GradedMark(v)})
	}
	return assignments
}

func TestStudentAverageMark(t *testing.T) {
	tests := []struct {
		name        string
		assignments []*models.Assignment
		wantAverage float64
		wantBatch   string
	}{
		{"no assignments", nil, 0, "N/A"},
		{"only pending", []*models.Assignment{{Mark: models.PendingMark()}}, 0, "N/A"},
		{"top bucket", graded(80, 40), 60, "A+"},
		{"just below top", graded(59, 60), 59.5, "A"},
		{"lower a bound", graded(50), 50, "A"},
		{"b bucket", graded(45, 45), 45, "B"},
		{"lower b bound", graded(40), 40, "B"},
		{"d bucket", graded(30), 30, "D"},
		{"f bucket", graded(29.9), 29.9, "F"},
		{"zero average", graded(0), 0, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStatsServiceWithAssignments(tt.assignments)
			resp, err := svc.StudentAverageMark(context.Background(), "s@example.com")
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if resp.AverageMark != tt.wantAverage {
				t.Fatalf("average: got %v, want %v", resp.AverageMark, tt.wantAverage)
			}
			if resp.Batch != tt.wantBatch {
				t.Fatalf("batch: got %q, want %q", resp.Batch, tt.wantBatch)
			}
		})
	}
}

func TestStudentAverageMarkSkipsPending(t *testing.T) {
	assignments := append(graded(60, 70), &models.Assignment{Mark: models.PendingMark()})
	svc := newStatsServiceWithAssignments(assignments)

	resp, err := svc.StudentAverageMark(context.Background(), "s@example.com")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if resp.AverageMark != 65 {
		t.Fatalf("pending marks must not dilute the average, got %v", resp.AverageMark)
	}
	if resp.Batch != "A+" {
		t.Fatalf("unexpected batch: %q", resp.Batch)
	}
}

func TestStudentMarksDistribution(t *testing.T) {
	assignments := []*models.Assignment{
		{Mark: models.GradedMark(60)},
		{Mark: models.GradedMark(60)},
		{Mark: models.GradedMark(72.5)},
		{Mark: models.PendingMark()},
	}
	svc := newStatsServiceWithAssignments(assignments)

	resp, err := svc.StudentMarksDistribution(context.Background(), "s@example.com")
	if err != nil {
		t.Fatalf("error: %v", err)
	}

	dist := resp.MarksDistribution
	if dist["60"] != 2 || dist["72.5"] != 1 || dist["pending"] != 1 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
	if len(dist) != 3 {
		t.Fatalf("unexpected bucket count: %v", dist)
	}
}

func TestGradeBatchBoundaries(t *testing.T) {
	cases := map[float64]string{
		100:  "A+",
		60:   "A+",
		59.9: "A",
		50:   "A",
		49.9: "B",
		40:   "B",
		39.9: "D",
		30:   "D",
		29.9: "F",
		0:    "F",
	}
	for average, want := range cases {
		if got := gradeBatch(average); got != want {
			t.Fatalf("gradeBatch(%v): got %q, want %q", average, got, want)
		}
	}
}

package service

import (
	"testing"

	"github.com/csprep/backend/internal/model"
	"github.com/csprep/backend/internal/repository"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB) StatsService {
	return NewStatsService(repository.NewProfileRepository(db), repository.NewResultRepository(db))
}

func seedResult(t *testing.T, db *gorm.DB, userID uint, accuracy float64) {
	t.Helper()
	result := model.Result{UserID: userID, Subject: "cn", Score: 1, TotalQuestions: 1, Accuracy: accuracy}
	if err := db.Create(&result).Error; err != nil {
		t.Fatalf("failed to seed result: %v", err)
	}
}

func TestOnSubmissionRecomputesFromFullHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := newStatsService(db)
	user := createTestUser(t, db, "history@example.com")

	seedResult(t, db, user.ID, 100.0/3.0) // 33.333...
	seedResult(t, db, user.ID, 200.0/3.0) // 66.666...

	profile, err := svc.OnSubmission(db, user.ID, 200.0/3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.AvgAccuracy != 50 {
		t.Errorf("avg_accuracy = %v, want 50 (mean of full history, rounded)", profile.AvgAccuracy)
	}
	if profile.TestsTaken != 1 {
		t.Errorf("tests_taken = %d, want 1 (one increment per OnSubmission call)", profile.TestsTaken)
	}
}

func TestOnSubmissionRoundsToTwoDecimals(t *testing.T) {
	db := setupTestDB(t)
	svc := newStatsService(db)
	user := createTestUser(t, db, "round@example.com")

	seedResult(t, db, user.ID, 100.0/3.0)

	profile, err := svc.OnSubmission(db, user.ID, 100.0/3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.AvgAccuracy != 33.33 {
		t.Errorf("avg_accuracy = %v, want 33.33", profile.AvgAccuracy)
	}
}

func TestOnSubmissionFallsBackWithoutHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := newStatsService(db)
	user := createTestUser(t, db, "fallback@example.com")

	// No result rows: the aggregate yields nothing and the just-submitted
	// accuracy is used instead.
	profile, err := svc.OnSubmission(db, user.ID, 77.777)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.AvgAccuracy != 77.78 {
		t.Errorf("avg_accuracy = %v, want 77.78", profile.AvgAccuracy)
	}
	if profile.TestsTaken != 1 {
		t.Errorf("tests_taken = %d, want 1", profile.TestsTaken)
	}
}

func TestOnSubmissionPersistsStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newStatsService(db)
	user := createTestUser(t, db, "persist@example.com")

	seedResult(t, db, user.ID, 80)
	if _, err := svc.OnSubmission(db, user.ID, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stored model.UserProfile
	if err := db.Where("user_id = ?", user.ID).First(&stored).Error; err != nil {
		t.Fatalf("profile row missing: %v", err)
	}
	if stored.TestsTaken != 1 || stored.AvgAccuracy != 80 {
		t.Errorf("stored stats = (%d, %v), want (1, 80)", stored.TestsTaken, stored.AvgAccuracy)
	}
}

package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// SubjectCountDTO is one row of the assessment overview: how many
// questions the bank holds for a subject, broken down by difficulty label.
type SubjectCountDTO struct {
	Subject          string         `json:"subject"`
	Count            int            `json:"count"`
	DifficultyCounts map[string]int `json:"difficulty_counts"`
}

// QuestionDTO is a single MCQ as served to the quiz client. The correct
// answer and explanation ship with the question; grading during the quiz
// happens on the client.
type QuestionDTO struct {
	ID              uint     `json:"id"`
	Subject         string   `json:"subject"`
	DifficultyLevel int      `json:"difficulty_level"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswer   string   `json:"correct_answer"`
	Explanation     string   `json:"explanation"`
}

type SeedResponseDTO struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type SubmitResponseDTO struct {
	Message  string `json:"message"`
	ResultID uint   `json:"result_id"`
}

// QuestionDetailDTO joins one stored answer back against the current
// question row for the result-detail view.
type QuestionDetailDTO struct {
	ID             uint     `json:"id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	SelectedAnswer string   `json:"selected_answer"`
	CorrectAnswer  string   `json:"correct_answer"`
	Explanation    string   `json:"explanation"`
}

type AssessmentResultDTO struct {
	ID             uint                `json:"id"`
	Subject        string              `json:"subject"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"total_questions"`
	Accuracy       float64             `json:"accuracy"`
	CreatedAt      time.Time           `json:"created_at"`
	Questions      []QuestionDetailDTO `json:"questions"`
}

type ProfileDTO struct {
	ID                 uint     `json:"id"`
	UserID             uint     `json:"user_id"`
	Email              string   `json:"email"`
	FullName           string   `json:"full_name"`
	AvatarURL          *string  `json:"avatar_url,omitempty"`
	Bio                string   `json:"bio,omitempty"`
	Location           string   `json:"location,omitempty"`
	Title              string   `json:"title"`
	TestsTaken         int      `json:"tests_taken"`
	AvgAccuracy        float64  `json:"avg_accuracy"`
	SubjectsInterested []string `json:"subjects_interested"`
}

// HistoryItemDTO is one past result in the user's history listing.
type HistoryItemDTO struct {
	ID             uint      `json:"id"`
	Subject        string    `json:"subject"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Accuracy       float64   `json:"accuracy"`
	CreatedAt      time.Time `json:"created_at"`
}

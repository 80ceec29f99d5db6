package dto

// SubmitAssessmentRequest is the body of POST /assessment/submit.
// The score is computed client-side while the user runs through the quiz;
// the server revalidates its consistency (0 <= score <= total) and always
// recomputes accuracy itself.
type SubmitAssessmentRequest struct {
	Subject        string            `json:"subject" binding:"required"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	Answers        map[string]string `json:"answers"` // question id (string key) -> selected option text
}

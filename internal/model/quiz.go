package model

// QuizDocument is a validated multi-question quiz produced by the assistant.
type QuizDocument struct {
	QuizTitle      string     `json:"quizTitle"`
	TotalQuestions int        `json:"totalQuestions"`
	Questions      []Question `json:"questions"`
}

// Question is a single quiz question.
// CorrectOption encodes one or more 1-based option indices, comma-separated
// (e.g. "1" or "1,3").
type Question struct {
	QuestionNumber         int      `json:"questionNumber"`
	Question               string   `json:"question"`
	Options                []string `json:"options"`
	CorrectOption          string   `json:"correctOption"`
	Explanation            string   `json:"explanation"`
	MultipleCorrectAnswers bool     `json:"multipleCorrectAnswers"`
}

// AnswerRecord is one graded answer from a completed quiz, as reported by
// the client.
type AnswerRecord struct {
	QuestionNumber int    `json:"questionNumber"`
	UserAnswer     string `json:"userAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	Explanation    string `json:"explanation,omitempty"`
}

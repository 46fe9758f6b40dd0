package usecasecontract

import "github.com/cleanwave/cleanwave/internal/domain/entity"

// IEducationUseCase exposes the fixed educational content and the two pure
// computations layered on it.
type IEducationUseCase interface {
	// DailyTip picks today's tip from the ordered tip list; the same
	// calendar date always yields the same tip.
	DailyTip() entity.EcoTip
	// ScoreQuiz totals the points of correctly answered questions. Answers
	// map question index to chosen option index; unanswered questions score
	// zero and are not penalized.
	ScoreQuiz(answers map[int]int) (score int, maxScore int)
	Tips() []entity.EcoTip
	FAQs() []entity.FAQ
	Questions() []entity.QuizQuestion
	Certificates() []entity.Certificate
	// VerifyCertificate looks a certificate up by its verification code.
	VerifyCertificate(code string) (*entity.Certificate, bool)
}

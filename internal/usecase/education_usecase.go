package usecase

import (
	"github.com/cleanwave/cleanwave/internal/domain/entity"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// EducationUsecase serves the fixed educational content: eco tips, FAQ
// entries, the quiz and the mock certificate set. All content is immutable;
// the only computations are daily-tip selection and quiz scoring.
type EducationUsecase struct {
	tips         []entity.EcoTip
	faqs         []entity.FAQ
	questions    []entity.QuizQuestion
	certificates []entity.Certificate
	clock        usecasecontract.IClock
}

func NewEducationUsecase(
	tips []entity.EcoTip,
	faqs []entity.FAQ,
	questions []entity.QuizQuestion,
	certificates []entity.Certificate,
	clock usecasecontract.IClock,
) *EducationUsecase {
	return &EducationUsecase{
		tips:         tips,
		faqs:         faqs,
		questions:    questions,
		certificates: certificates,
		clock:        clock,
	}
}

var _ usecasecontract.IEducationUseCase = (*EducationUsecase)(nil)

// DailyTip indexes the tip list by day of year, so the tip changes daily,
// repeats yearly and is the same for every caller on a given date.
func (uc *EducationUsecase) DailyTip() entity.EcoTip {
	dayOfYear := uc.clock.Now().YearDay()
	return uc.tips[dayOfYear%len(uc.tips)]
}

// ScoreQuiz totals the points of questions whose chosen option index equals
// the correct one. Unanswered questions score zero and are not penalized;
// answer keys outside the question range are ignored.
func (uc *EducationUsecase) ScoreQuiz(answers map[int]int) (int, int) {
	score, maxScore := 0, 0
	for i, q := range uc.questions {
		maxScore += q.Points
		if chosen, ok := answers[i]; ok && chosen == q.CorrectAnswer {
			score += q.Points
		}
	}
	return score, maxScore
}

func (uc *EducationUsecase) Tips() []entity.EcoTip {
	out := make([]entity.EcoTip, len(uc.tips))
	copy(out, uc.tips)
	return out
}

func (uc *EducationUsecase) FAQs() []entity.FAQ {
	out := make([]entity.FAQ, len(uc.faqs))
	copy(out, uc.faqs)
	return out
}

func (uc *EducationUsecase) Questions() []entity.QuizQuestion {
	out := make([]entity.QuizQuestion, len(uc.questions))
	copy(out, uc.questions)
	return out
}

func (uc *EducationUsecase) Certificates() []entity.Certificate {
	out := make([]entity.Certificate, len(uc.certificates))
	copy(out, uc.certificates)
	return out
}

// VerifyCertificate looks a certificate up by its verification code.
func (uc *EducationUsecase) VerifyCertificate(code string) (*entity.Certificate, bool) {
	for _, c := range uc.certificates {
		if c.VerificationCode == code {
			cert := c
			return &cert, true
		}
	}
	return nil, false
}

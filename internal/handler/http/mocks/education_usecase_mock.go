package mocks

import (
	"github.com/cleanwave/cleanwave/internal/domain/entity"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// MockEducationUsecase is a mock implementation of the IEducationUseCase
// interface
type MockEducationUsecase struct {
	MockTip          entity.EcoTip
	MockScore        int
	MockMaxScore     int
	MockCertificates []entity.Certificate
}

// Ensure MockEducationUsecase implements the correct interface for
// handler.NewEducationHandler
var _ usecasecontract.IEducationUseCase = (*MockEducationUsecase)(nil)

func NewMockEducationUsecase() *MockEducationUsecase {
	return &MockEducationUsecase{
		MockTip:      entity.EcoTip{ID: "1", Title: "Mock Tip"},
		MockScore:    25,
		MockMaxScore: 115,
		MockCertificates: []entity.Certificate{
			{ID: "1", VerificationCode: "CW-2024-GG-001"},
		},
	}
}

func (m *MockEducationUsecase) DailyTip() entity.EcoTip {
	return m.MockTip
}

func (m *MockEducationUsecase) ScoreQuiz(answers map[int]int) (int, int) {
	return m.MockScore, m.MockMaxScore
}

func (m *MockEducationUsecase) Tips() []entity.EcoTip {
	return []entity.EcoTip{m.MockTip}
}

func (m *MockEducationUsecase) FAQs() []entity.FAQ {
	return []entity.FAQ{}
}

func (m *MockEducationUsecase) Questions() []entity.QuizQuestion {
	return []entity.QuizQuestion{}
}

func (m *MockEducationUsecase) Certificates() []entity.Certificate {
	return m.MockCertificates
}

func (m *MockEducationUsecase) VerifyCertificate(code string) (*entity.Certificate, bool) {
	for _, c := range m.MockCertificates {
		if c.VerificationCode == code {
			cert := c
			return &cert, true
		}
	}
	return nil, false
}

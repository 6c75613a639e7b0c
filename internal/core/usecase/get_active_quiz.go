package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type GetActiveQuizUseCase struct {
	quizzes port.QuizBackendPort
}

func NewGetActiveQuizUseCase(quizzes port.QuizBackendPort) *GetActiveQuizUseCase {
	return &GetActiveQuizUseCase{quizzes: quizzes}
}

// Execute возвращает активный квиз, (nil, nil) если нет или не удалось.
func (uc *GetActiveQuizUseCase) Execute(ctx context.Context) (*domain.Quiz, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetActiveQuizUseCase",
	})

	ucLogger.Info("Use case started", nil)

	quiz, err := uc.quizzes.GetActiveQuiz(ctx)
	if err != nil {
		ucLogger.Error("Backend returned an error, no quiz will be shown", err, nil)
		return nil, nil
	}

	return quiz, nil
}

package usecase

import (
	"time"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/datemath"
	pkgLog "github.com/Aashutosh2004011/TaskManagement-Backend/pkg/log"
)

// ContentClassifier analyzes task text. Implemented by internal/classifier.
type ContentClassifier interface {
	Classify(title, description string) model.Classification
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	classifier ContentClassifier
	dateMath   *datemath.Parser
	now        func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, classifier ContentClassifier, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		classifier: classifier,
		dateMath:   dateMath,
		now:        time.Now,
	}
}

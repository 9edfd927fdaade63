package services

import (
	"article-hub/models"
	"article-hub/repositories"

	"github.com/google/uuid"
)

type TagService interface {
	GetTagOptions(userID uuid.UUID) ([]models.TagOption, error)
}

type tagService struct {
	articleRepo repositories.ArticleRepository
}

func NewTagService(articleRepo repositories.ArticleRepository) TagService {
	return &tagService{articleRepo: articleRepo}
}

// GetTagOptions returns the caller's distinct tags shaped for a select
// input.
func (s *tagService) GetTagOptions(userID uuid.UUID) ([]models.TagOption, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	tags, err := s.articleRepo.DistinctTags(userID)
	if err != nil {
		return nil, err
	}

	options := make([]models.TagOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, models.TagOption{Value: tag, Label: tag})
	}
	return options, nil
}

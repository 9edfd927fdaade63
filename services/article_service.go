package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"article-hub/models"
	"article-hub/openrouter"
	"article-hub/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(userID uuid.UUID, req models.CreateArticleRequest) (*models.Article, error)
	GetArticle(id, userID uuid.UUID) (*models.Article, error)
	GetArticles(ctx context.Context, userID uuid.UUID, params models.ArticleListParams) ([]models.Article, error)
	UpdateArticle(id, userID uuid.UUID, req models.UpdateArticleRequest) error
	UpdateSummary(id, userID uuid.UUID, summary string) error
	DeleteArticle(id, userID uuid.UUID) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	ai          openrouter.Completer
	aiSearch    bool
}

func NewArticleService(articleRepo repositories.ArticleRepository, ai openrouter.Completer, aiSearch bool) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		ai:          ai,
		aiSearch:    aiSearch,
	}
}

func (s *articleService) CreateArticle(userID uuid.UUID, req models.CreateArticleRequest) (*models.Article, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	article := &models.Article{
		Title:   req.Title,
		Content: req.Content,
		Summary: req.Summary,
		Tags:    models.StringList(req.Tags),
		Images:  models.StringList(req.Images),
		UserID:  userID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	return article, nil
}

func (s *articleService) GetArticle(id, userID uuid.UUID) (*models.Article, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	article, err := s.articleRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticles(ctx context.Context, userID uuid.UUID, params models.ArticleListParams) ([]models.Article, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	articles, err := s.articleRepo.GetList(userID, params)
	if err != nil {
		return nil, err
	}

	if params.Q != "" && s.aiSearch {
		return s.searchWithAI(ctx, params.Q, articles), nil
	}

	return articles, nil
}

// UpdateArticle patches the supplied fields only. The predicate is the
// article id alone; unlike DeleteArticle and UpdateSummary it does not
// scope by owner.
func (s *articleService) UpdateArticle(id, userID uuid.UUID, req models.UpdateArticleRequest) error {
	if userID == uuid.Nil {
		return models.ErrUnauthenticated
	}

	values := map[string]interface{}{}
	if req.Title != nil {
		values["title"] = *req.Title
	}
	if req.Content != nil {
		values["content"] = *req.Content
	}
	if req.Summary != nil {
		values["summary"] = *req.Summary
	}
	if req.Tags != nil {
		values["tags"] = models.StringList(*req.Tags)
	}
	if req.Images != nil {
		values["images"] = models.StringList(*req.Images)
	}

	if len(values) == 0 {
		return nil
	}

	if err := s.articleRepo.Update(id, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *articleService) UpdateSummary(id, userID uuid.UUID, summary string) error {
	if userID == uuid.Nil {
		return models.ErrUnauthenticated
	}

	if err := s.articleRepo.UpdateSummary(id, userID, summary); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *articleService) DeleteArticle(id, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return models.ErrUnauthenticated
	}

	if err := s.articleRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}

// searchWithAI asks the completion backend which of the pre-filtered
// candidates match the query and keeps those whose titles appear in
// the reply. A backend failure yields an empty result, not an error.
func (s *articleService) searchWithAI(ctx context.Context, q string, candidates []models.Article) []models.Article {
	var sb strings.Builder
	for i, article := range candidates {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("title: " + article.Title + ", tags: " + strings.Join(article.Tags, ", "))
	}

	message := fmt.Sprintf("Search for this %q text in the following articles, "+
		"which articles might be related to this query. "+
		"Only return those articles titles, no extra chars in the reply. :\n\n%s",
		q, sb.String())

	res, err := s.ai.Complete(ctx, message)
	if err != nil {
		log.Println("AI search error:", err)
		return []models.Article{}
	}

	titles := make(map[string]bool)
	for _, line := range strings.Split(res.Reply, "\n") {
		if title := strings.TrimSpace(line); title != "" {
			titles[title] = true
		}
	}

	matched := []models.Article{}
	for _, article := range candidates {
		if titles[article.Title] {
			matched = append(matched, article)
		}
	}
	return matched
}

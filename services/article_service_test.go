package services

import (
	"context"
	"errors"
	"testing"

	"article-hub/models"
	"article-hub/openrouter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeArticleRepo struct {
	articles   []models.Article
	listErr    error
	updated    map[string]interface{}
	updatedID  uuid.UUID
	summaryErr error
	deleteErr  error
	updateErr  error
	tags       []string
}

func (f *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = uuid.New()
	f.articles = append(f.articles, *article)
	return nil
}

func (f *fakeArticleRepo) GetByID(id, userID uuid.UUID) (*models.Article, error) {
	for _, a := range f.articles {
		if a.ID == id && a.UserID == userID {
			article := a
			return &article, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeArticleRepo) GetList(userID uuid.UUID, params models.ArticleListParams) ([]models.Article, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.articles, nil
}

func (f *fakeArticleRepo) Update(id uuid.UUID, values map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updated = values
	return nil
}

func (f *fakeArticleRepo) UpdateSummary(id, userID uuid.UUID, summary string) error {
	return f.summaryErr
}

func (f *fakeArticleRepo) Delete(id, userID uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeArticleRepo) DistinctTags(userID uuid.UUID) ([]string, error) {
	return f.tags, nil
}

func TestArticleOpsRequireAuthentication(t *testing.T) {
	repo := &fakeArticleRepo{}
	svc := NewArticleService(repo, &fakeCompleter{}, false)
	ctx := context.Background()

	_, err := svc.CreateArticle(uuid.Nil, models.CreateArticleRequest{Title: "T", Content: "C"})
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))

	_, err = svc.GetArticle(uuid.New(), uuid.Nil)
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))

	_, err = svc.GetArticles(ctx, uuid.Nil, models.ArticleListParams{})
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))

	err = svc.UpdateArticle(uuid.New(), uuid.Nil, models.UpdateArticleRequest{})
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))

	err = svc.UpdateSummary(uuid.New(), uuid.Nil, "S")
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))

	err = svc.DeleteArticle(uuid.New(), uuid.Nil)
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))

	assert.Empty(t, repo.articles, "no storage touch without a session")
}

func TestUpdateArticlePatchesSuppliedFieldsOnly(t *testing.T) {
	repo := &fakeArticleRepo{}
	svc := NewArticleService(repo, &fakeCompleter{}, false)

	title := "New title"
	tags := []string{"backend"}

	id := uuid.New()
	err := svc.UpdateArticle(id, uuid.New(), models.UpdateArticleRequest{
		Title: &title,
		Tags:  &tags,
	})
	require.NoError(t, err)

	assert.Equal(t, id, repo.updatedID)
	assert.Equal(t, map[string]interface{}{
		"title": "New title",
		"tags":  models.StringList{"backend"},
	}, repo.updated, "absent fields must not appear in the patch")
}

func TestUpdateArticleEmptyPatchIsNoop(t *testing.T) {
	repo := &fakeArticleRepo{updateErr: gorm.ErrRecordNotFound}
	svc := NewArticleService(repo, &fakeCompleter{}, false)

	// Nothing supplied, so the missing row is never observed.
	err := svc.UpdateArticle(uuid.New(), uuid.New(), models.UpdateArticleRequest{})
	assert.NoError(t, err)
}

func TestNotFoundMapping(t *testing.T) {
	repo := &fakeArticleRepo{
		summaryErr: gorm.ErrRecordNotFound,
		deleteErr:  gorm.ErrRecordNotFound,
		updateErr:  gorm.ErrRecordNotFound,
	}
	svc := NewArticleService(repo, &fakeCompleter{}, false)
	owner := uuid.New()

	_, err := svc.GetArticle(uuid.New(), owner)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	assert.True(t, errors.Is(svc.UpdateSummary(uuid.New(), owner, "S"), models.ErrNotFound))
	assert.True(t, errors.Is(svc.DeleteArticle(uuid.New(), owner), models.ErrNotFound))

	title := "T-T-T"
	err = svc.UpdateArticle(uuid.New(), owner, models.UpdateArticleRequest{Title: &title})
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestGetArticlesPlainSearchSkipsAI(t *testing.T) {
	repo := &fakeArticleRepo{articles: []models.Article{
		{ID: uuid.New(), Title: "Go routines"},
		{ID: uuid.New(), Title: "Rust lifetimes"},
	}}
	ai := &fakeCompleter{}
	svc := NewArticleService(repo, ai, false)

	articles, err := svc.GetArticles(context.Background(), uuid.New(), models.ArticleListParams{Q: "Go"})
	require.NoError(t, err)

	assert.Len(t, articles, 2, "repository result passes through untouched")
	assert.Equal(t, 0, ai.calls)
}

func TestGetArticlesAISearchFiltersByRepliedTitles(t *testing.T) {
	repo := &fakeArticleRepo{articles: []models.Article{
		{ID: uuid.New(), Title: "Go routines", Tags: models.StringList{"go", "concurrency"}},
		{ID: uuid.New(), Title: "Rust lifetimes", Tags: models.StringList{"rust"}},
		{ID: uuid.New(), Title: "Go modules", Tags: models.StringList{"go"}},
	}}
	ai := &fakeCompleter{reply: &openrouter.Completion{
		Reply: "Go routines\nGo modules\n",
	}}
	svc := NewArticleService(repo, ai, true)

	articles, err := svc.GetArticles(context.Background(), uuid.New(), models.ArticleListParams{Q: "go"})
	require.NoError(t, err)

	require.Len(t, articles, 2)
	assert.Equal(t, "Go routines", articles[0].Title)
	assert.Equal(t, "Go modules", articles[1].Title)

	assert.Equal(t, 1, ai.calls)
	assert.Contains(t, ai.lastMsg, `Search for this "go" text`)
	assert.Contains(t, ai.lastMsg, "title: Go routines, tags: go, concurrency")
}

func TestGetArticlesAISearchFailureYieldsEmptyList(t *testing.T) {
	repo := &fakeArticleRepo{articles: []models.Article{
		{ID: uuid.New(), Title: "Go routines"},
	}}
	ai := &fakeCompleter{err: &openrouter.ModelsExhaustedError{LastErr: "rate limited"}}
	svc := NewArticleService(repo, ai, true)

	articles, err := svc.GetArticles(context.Background(), uuid.New(), models.ArticleListParams{Q: "go"})
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestGetArticlesWithoutQueryNeverUsesAI(t *testing.T) {
	repo := &fakeArticleRepo{articles: []models.Article{{ID: uuid.New(), Title: "A"}}}
	ai := &fakeCompleter{}
	svc := NewArticleService(repo, ai, true)

	articles, err := svc.GetArticles(context.Background(), uuid.New(), models.ArticleListParams{Tag: "backend"})
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, 0, ai.calls)
}

func TestTagOptions(t *testing.T) {
	repo := &fakeArticleRepo{tags: []string{"backend", "go"}}
	svc := NewTagService(repo)

	options, err := svc.GetTagOptions(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, []models.TagOption{
		{Value: "backend", Label: "backend"},
		{Value: "go", Label: "go"},
	}, options)

	_, err = svc.GetTagOptions(uuid.Nil)
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))
}

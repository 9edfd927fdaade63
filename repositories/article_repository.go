package repositories

import (
	"encoding/json"

	"article-hub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id, userID uuid.UUID) (*models.Article, error)
	GetList(userID uuid.UUID, params models.ArticleListParams) ([]models.Article, error)
	Update(id uuid.UUID, values map[string]interface{}) error
	UpdateSummary(id, userID uuid.UUID, summary string) error
	Delete(id, userID uuid.UUID) error
	DistinctTags(userID uuid.UUID) ([]string, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id, userID uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetList applies the optional filters with AND semantics; no explicit
// ordering is applied.
func (r *articleRepository) GetList(userID uuid.UUID, params models.ArticleListParams) ([]models.Article, error) {
	var articles []models.Article

	query := r.db.Where("user_id = ?", userID)

	if params.Tag != "" {
		// jsonb containment against a one-element array matches the
		// exact tag, not a substring of it.
		member, err := json.Marshal([]string{params.Tag})
		if err != nil {
			return nil, err
		}
		query = query.Where("tags @> ?", string(member))
	}

	if params.Q != "" {
		like := "%" + params.Q + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	err := query.Find(&articles).Error
	return articles, err
}

// Update patches only the supplied columns. Ownership is not part of
// the predicate here; see the service layer for the scoped variants.
func (r *articleRepository) Update(id uuid.UUID, values map[string]interface{}) error {
	res := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) UpdateSummary(id, userID uuid.UUID, summary string) error {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("summary", summary)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) Delete(id, userID uuid.UUID) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) DistinctTags(userID uuid.UUID) ([]string, error) {
	var rows []models.StringList
	err := r.db.Model(&models.Article{}).
		Where("user_id = ?", userID).
		Pluck("tags", &rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, row := range rows {
		for _, tag := range row {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

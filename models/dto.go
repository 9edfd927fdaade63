package models

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=255"`
	LastName  string `json:"lastName" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title   string   `json:"title" binding:"required,min=3,max=255"`
	Content string   `json:"content" binding:"required,min=10"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
	Images  []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdateArticleRequest carries a sparse patch: nil pointers mean
// "leave the column untouched".
type UpdateArticleRequest struct {
	Title   *string   `json:"title" binding:"omitempty,min=3,max=255"`
	Content *string   `json:"content" binding:"omitempty,min=10"`
	Summary *string   `json:"summary"`
	Tags    *[]string `json:"tags"`
	Images  *[]string `json:"images" binding:"omitempty,dive,url"`
}

type UpdateSummaryRequest struct {
	Summary string `json:"summary" binding:"required"`
}

type ArticleListParams struct {
	Q   string `form:"q"`
	Tag string `form:"tag"`
}

type SummarizeRequest struct {
	Message string `json:"message"`
}

type SummarizeArticleRequest struct {
	Article string `json:"article"`
}

type TagOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ProfileResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

package dto

// CreateBlogRequest carries the payload for creating a post.
type CreateBlogRequest struct {
	Title    string   `json:"title" binding:"required,min=5,max=50" example:"My First Blog"`
	Content  string   `json:"content" binding:"required,min=5,max=1024" example:"This is the content of my first blog."`
	Category []string `json:"category" binding:"required,min=1,dive,min=3,max=50" example:"Technology,Programming"`
}

// UpdateBlogRequest carries a partial update; only non-nil fields change.
type UpdateBlogRequest struct {
	Title    *string   `json:"title" binding:"omitempty,min=5,max=50"`
	Content  *string   `json:"content" binding:"omitempty,min=5,max=1024"`
	Category *[]string `json:"category" binding:"omitempty,min=1,dive,min=3,max=50"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateBlogRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && r.Category == nil
}

// BlogDTO is the public projection of a blog post. AuthorName is only
// populated on read paths that expand the owner relation.
type BlogDTO struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   []string `json:"category"`
	AuthorName string   `json:"author_name,omitempty"`
}

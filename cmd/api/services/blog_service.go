package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ramo772/blog-management-api/cmd/api/dto"
	"github.com/ramo772/blog-management-api/eventbus"
	"github.com/ramo772/blog-management-api/events"
	"github.com/ramo772/blog-management-api/internal/logger"
	"github.com/ramo772/blog-management-api/models"
	"github.com/ramo772/blog-management-api/repositories"
)

// BlogService encapsulates blog business logic: listing with search and
// category filters, reads with the owner expanded, and owner-guarded
// mutations. Lifecycle events are published best effort; a broker failure
// never fails the request.
type BlogService struct {
	blogs BlogStore
	users UserStore
	bus   eventbus.Publisher
}

func NewBlogService(blogs BlogStore, users UserStore, bus eventbus.Publisher) *BlogService {
	if bus == nil {
		bus = eventbus.NoopPublisher{}
	}
	return &BlogService{
		blogs: blogs,
		users: users,
		bus:   bus,
	}
}

type ListBlogsInput struct {
	SearchQuery string
	Category    string
	Page        int
	Limit       int
}

func (in *ListBlogsInput) normalize() {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}
}

// List returns one page of public projections plus pagination metadata.
// No matches is not an error; the page comes back empty.
func (s *BlogService) List(ctx context.Context, in ListBlogsInput) (dto.Pagination[dto.BlogDTO], error) {
	in.normalize()

	items, total, err := s.blogs.List(ctx, repositories.ListBlogsOptions{
		SearchQuery: in.SearchQuery,
		Category:    in.Category,
		Page:        in.Page,
		Limit:       in.Limit,
	})
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, fmt.Errorf("failed to list blogs: %w", err)
	}

	out := make([]dto.BlogDTO, 0, len(items))
	for _, b := range items {
		out = append(out, mapBlogWithAuthor(b))
	}
	return dto.NewPagination(out, in.Page, in.Limit, total), nil
}

// Get returns the public projection of a single blog with its author's
// display name expanded.
func (s *BlogService) Get(ctx context.Context, id primitive.ObjectID) (dto.BlogDTO, error) {
	blog, err := s.blogs.FindWithAuthor(ctx, id)
	if err != nil {
		return dto.BlogDTO{}, fmt.Errorf("failed to fetch blog: %w", err)
	}
	if blog == nil {
		return dto.BlogDTO{}, ErrBlogNotFound
	}
	return mapBlogWithAuthor(*blog), nil
}

type CreateBlogInput struct {
	Title    string
	Content  string
	Category []string
}

// Create persists a new blog owned by ownerID. The owner lookup is a
// defensive check; the auth middleware has already validated the caller.
func (s *BlogService) Create(ctx context.Context, ownerID primitive.ObjectID, in CreateBlogInput) (dto.BlogDTO, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return dto.BlogDTO{}, fmt.Errorf("failed to resolve owner: %w", err)
	}
	if owner == nil {
		return dto.BlogDTO{}, ErrOwnerNotFound
	}

	blog := &models.Blog{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		UserID:   ownerID,
	}
	id, err := s.blogs.Create(ctx, blog)
	if err != nil {
		return dto.BlogDTO{}, fmt.Errorf("failed to create blog: %w", err)
	}

	s.publish(ctx, events.BlogCreatedEvent{
		BaseEvent: events.NewBaseEvent(events.BlogCreated),
		BlogID:    id,
		UserID:    ownerID,
		Title:     blog.Title,
		Category:  blog.Category,
	})

	return dto.BlogDTO{
		ID:       id.Hex(),
		Title:    blog.Title,
		Content:  blog.Content,
		Category: blog.Category,
	}, nil
}

type UpdateBlogInput struct {
	Title    *string
	Content  *string
	Category *[]string
}

func (in UpdateBlogInput) fields() (bson.M, []string) {
	fields := bson.M{}
	var names []string
	if in.Title != nil {
		fields["title"] = *in.Title
		names = append(names, "title")
	}
	if in.Content != nil {
		fields["content"] = *in.Content
		names = append(names, "content")
	}
	if in.Category != nil {
		fields["category"] = *in.Category
		names = append(names, "category")
	}
	return fields, names
}

// Update applies the supplied fields to the blog if the caller owns it.
// The write is a single conditional mutation filtered on both the id and
// the owner, so two concurrent updates can never interleave past the
// ownership check. A zero-match result is probed by id alone only to pick
// the right error.
func (s *BlogService) Update(ctx context.Context, id, callerID primitive.ObjectID, in UpdateBlogInput) (dto.BlogDTO, error) {
	fields, names := in.fields()
	if len(fields) == 0 {
		// Nothing to change; still enforce existence and ownership.
		existing, err := s.blogs.FindByID(ctx, id)
		if err != nil {
			return dto.BlogDTO{}, fmt.Errorf("failed to fetch blog: %w", err)
		}
		if existing == nil {
			return dto.BlogDTO{}, ErrBlogNotFound
		}
		if existing.UserID != callerID {
			return dto.BlogDTO{}, ErrNotOwner
		}
		return mapBlog(*existing), nil
	}

	matched, err := s.blogs.UpdateOwned(ctx, id, callerID, fields)
	if err != nil {
		return dto.BlogDTO{}, fmt.Errorf("failed to update blog: %w", err)
	}
	if !matched {
		existing, err := s.blogs.FindByID(ctx, id)
		if err != nil {
			return dto.BlogDTO{}, fmt.Errorf("failed to fetch blog: %w", err)
		}
		if existing == nil {
			return dto.BlogDTO{}, ErrBlogNotFound
		}
		return dto.BlogDTO{}, ErrNotOwner
	}

	updated, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return dto.BlogDTO{}, fmt.Errorf("failed to fetch updated blog: %w", err)
	}
	if updated == nil {
		// Deleted between the write and the read-back.
		return dto.BlogDTO{}, ErrBlogNotFound
	}

	s.publish(ctx, events.BlogUpdatedEvent{
		BaseEvent: events.NewBaseEvent(events.BlogUpdated),
		BlogID:    id,
		UserID:    callerID,
		Fields:    names,
	})

	return mapBlog(*updated), nil
}

// Delete removes the blog if the caller owns it. Same atomicity contract
// as Update.
func (s *BlogService) Delete(ctx context.Context, id, callerID primitive.ObjectID) error {
	deleted, err := s.blogs.DeleteOwned(ctx, id, callerID)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if !deleted {
		existing, err := s.blogs.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch blog: %w", err)
		}
		if existing == nil {
			return ErrBlogNotFound
		}
		return ErrNotOwner
	}

	s.publish(ctx, events.BlogDeletedEvent{
		BaseEvent: events.NewBaseEvent(events.BlogDeleted),
		BlogID:    id,
		UserID:    callerID,
	})

	return nil
}

type lifecycleEvent interface {
	GetID() string
	GetType() events.EventType
}

func (s *BlogService) publish(ctx context.Context, payload lifecycleEvent) {
	event, err := eventbus.NewEvent(payload.GetID(), string(payload.GetType()), payload)
	if err != nil {
		logger.ErrorWithFields("failed to build blog event", logger.Fields{"error": err.Error()})
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicBlogEvents, event); err != nil {
		logger.ErrorWithFields("failed to publish blog event", logger.Fields{
			"error": err.Error(),
			"type":  string(payload.GetType()),
		})
	}
}

func mapBlog(b models.Blog) dto.BlogDTO {
	return dto.BlogDTO{
		ID:       b.ID.Hex(),
		Title:    b.Title,
		Content:  b.Content,
		Category: b.Category,
	}
}

func mapBlogWithAuthor(b models.BlogWithAuthor) dto.BlogDTO {
	out := mapBlog(b.Blog)
	if b.Author != nil {
		out.AuthorName = b.Author.Name
	}
	return out
}

package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ramo772/blog-management-api/eventbus"
	"github.com/ramo772/blog-management-api/models"
	"github.com/ramo772/blog-management-api/repositories"
)

// In-memory store doubles. Mutation semantics mirror the Mongo
// repositories: conditional writes match on both id and owner.

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func (s *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Create(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *u
	copied.ID = id
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	s.users[id] = &copied
	return id, nil
}

type fakeBlogStore struct {
	blogs map[primitive.ObjectID]*models.Blog
	users *fakeUserStore

	listCalls  []repositories.ListBlogsOptions
	listResult []models.BlogWithAuthor
	listTotal  int64
}

func newFakeBlogStore(users *fakeUserStore) *fakeBlogStore {
	return &fakeBlogStore{blogs: map[primitive.ObjectID]*models.Blog{}, users: users}
}

func (s *fakeBlogStore) List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.BlogWithAuthor, int64, error) {
	s.listCalls = append(s.listCalls, opt)
	return s.listResult, s.listTotal, nil
}

func (s *fakeBlogStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	b, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (s *fakeBlogStore) FindWithAuthor(ctx context.Context, id primitive.ObjectID) (*models.BlogWithAuthor, error) {
	b, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	out := models.BlogWithAuthor{Blog: *b}
	if owner, ok := s.users.users[b.UserID]; ok {
		out.Author = &models.UserRef{ID: owner.ID, Name: owner.Name}
	}
	return &out, nil
}

func (s *fakeBlogStore) Create(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *b
	copied.ID = id
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	s.blogs[id] = &copied
	return id, nil
}

func (s *fakeBlogStore) UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, fields bson.M) (bool, error) {
	b, ok := s.blogs[id]
	if !ok || b.UserID != ownerID {
		return false, nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			b.Title = v.(string)
		case "content":
			b.Content = v.(string)
		case "category":
			b.Category = v.([]string)
		}
	}
	b.UpdatedAt = time.Now()
	return true, nil
}

func (s *fakeBlogStore) DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	b, ok := s.blogs[id]
	if !ok || b.UserID != ownerID {
		return false, nil
	}
	delete(s.blogs, id)
	return true, nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	topics []string
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, event eventbus.Event) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() {}

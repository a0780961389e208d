package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// MaxPostLength bounds post bodies after whitespace trimming.
const MaxPostLength = 5000

// PostService handles post creation and retrieval.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost stores a new post for the author. Posts are immutable once
// written.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, content, imageURL string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" && imageURL == "" {
		return nil, models.NewValidationError("Post content cannot be empty")
	}
	if len(content) > MaxPostLength {
		return nil, models.NewValidationError("Post content is too long")
	}

	post := &models.Post{
		Content:  content,
		ImageURL: imageURL,
		AuthorID: authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, authorID)
}

// GetPost returns a single post annotated for the viewer.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, viewerID)
}

// GetUserPosts returns a page of a user's posts, newest first, annotated
// for the viewer.
func (s *PostService) GetUserPosts(ctx context.Context, userID, viewerID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByAuthor(ctx, userID, viewerID, limit, offset)
}

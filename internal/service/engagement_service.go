package service

import (
	"context"
	"errors"
	"strings"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// MaxCommentLength bounds comment bodies after whitespace trimming.
const MaxCommentLength = 10000

// EngagementService handles likes and comments on posts.
type EngagementService struct {
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, commentRepo repository.CommentRepository) *EngagementService {
	return &EngagementService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// ToggleResult reports the state after a like toggle.
type ToggleResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// ToggleLike flips the like state for (postID, userID). The unique index
// on the likes table arbitrates concurrent toggles: a lost insert race
// flips to the delete path and vice versa, retried once before the
// conflict is surfaced as transient.
func (s *EngagementService) ToggleLike(ctx context.Context, postID, userID uint) (*ToggleResult, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	liked, err := s.toggleOnce(ctx, postID, userID, true)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.Count(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Liked: liked, LikesCount: count}, nil
}

func (s *EngagementService) toggleOnce(ctx context.Context, postID, userID uint, retry bool) (bool, error) {
	hasLike, err := s.likeRepo.Exists(ctx, postID, userID)
	if err != nil {
		return false, err
	}

	if !hasLike {
		err := s.likeRepo.Create(ctx, &models.Like{PostID: postID, UserID: userID})
		if err == nil {
			return true, nil
		}
		if errors.Is(err, repository.ErrLikeExists) {
			// A concurrent toggle inserted first; re-read and flip.
			if retry {
				middleware.ToggleRetries.Inc()
				return s.toggleOnce(ctx, postID, userID, false)
			}
			return false, models.NewTransientError("Like toggle conflicted with a concurrent request", err)
		}
		return false, err
	}

	rows, err := s.likeRepo.Delete(ctx, postID, userID)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		// A concurrent toggle removed the like first; re-read and flip.
		if retry {
			middleware.ToggleRetries.Inc()
			return s.toggleOnce(ctx, postID, userID, false)
		}
		return false, models.NewTransientError("Like toggle conflicted with a concurrent request", nil)
	}
	return false, nil
}

// AddComment appends a comment to a post and returns it with its author
// loaded. Comments are immutable once written.
func (s *EngagementService) AddComment(ctx context.Context, postID, authorID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content cannot be empty")
	}
	if len(content) > MaxCommentLength {
		return nil, models.NewValidationError("Comment content is too long")
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// GetComments returns a page of comments on a post, newest first.
func (s *EngagementService) GetComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// CountLikes returns the number of likes on a post.
func (s *EngagementService) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.likeRepo.Count(ctx, postID)
}

// CountComments returns the number of comments on a post.
func (s *EngagementService) CountComments(ctx context.Context, postID uint) (int64, error) {
	return s.commentRepo.Count(ctx, postID)
}

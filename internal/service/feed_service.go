package service

import (
	"context"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const (
	// FeedLimit is the fixed size of the feed window.
	FeedLimit = 20
	// CommentPreviewLimit is how many of a post's newest comments ride
	// along with each feed entry.
	CommentPreviewLimit = 3
)

// FeedService assembles the personalized home feed.
type FeedService struct {
	friendRepo  repository.FriendRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(friendRepo repository.FriendRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository) *FeedService {
	return &FeedService{
		friendRepo:  friendRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// GetFeed returns the newest posts authored by the user or any accepted
// friend, newest first, each carrying its engagement counts, the viewer's
// liked flag and a preview of its newest comments. A user with no friends
// still sees their own posts.
func (s *FeedService) GetFeed(ctx context.Context, userID uint) ([]*models.Post, error) {
	friendIDs, err := s.friendRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		middleware.FeedRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	authorIDs := append(friendIDs, userID)

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, userID, FeedLimit)
	if err != nil {
		middleware.FeedRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	for _, post := range posts {
		preview, err := s.commentRepo.ListRecentByPost(ctx, post.ID, CommentPreviewLimit)
		if err != nil {
			middleware.FeedRequests.WithLabelValues("error").Inc()
			return nil, err
		}
		post.Comments = preview
	}

	middleware.FeedRequests.WithLabelValues("ok").Inc()
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

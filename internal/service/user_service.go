package service

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// SearchLimit caps user search results.
const SearchLimit = 10

// UserProfile is a user with aggregate counts and the viewer's
// relationship to them.
type UserProfile struct {
	models.User
	PostsCount       int64  `json:"posts_count"`
	FriendsCount     int64  `json:"friends_count"`
	FriendshipStatus string `json:"friendship_status"`
	RequestID        uint   `json:"request_id,omitempty"`
}

// UserService handles user profile reads and search.
type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	friendRepo repository.FriendRepository
	friendSvc  *FriendService
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, friendRepo repository.FriendRepository, friendSvc *FriendService) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		friendRepo: friendRepo,
		friendSvc:  friendSvc,
	}
}

// GetProfile returns a user's profile with post and friend counts, plus
// the viewer's friendship status. The user record itself is cached; the
// counts and status are always read fresh.
func (s *UserService) GetProfile(ctx context.Context, userID, viewerID uint) (*UserProfile, error) {
	var user models.User
	err := cache.Aside(ctx, cache.UserKey(userID), &user, cache.UserTTL, func() error {
		u, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		user = *u
		return nil
	})
	if err != nil {
		return nil, err
	}

	postsCount, err := s.postRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	friendsCount, err := s.friendRepo.CountFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := FriendshipStatusNone
	var requestID uint
	if viewerID != 0 && viewerID != userID {
		status, requestID, err = s.friendSvc.GetFriendshipStatus(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
	}

	return &UserProfile{
		User:             user,
		PostsCount:       postsCount,
		FriendsCount:     friendsCount,
		FriendshipStatus: status,
		RequestID:        requestID,
	}, nil
}

// SearchUsers finds users by username or display name, excluding the
// caller.
func (s *UserService) SearchUsers(ctx context.Context, query string, callerID uint) ([]models.UserSummary, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query cannot be empty")
	}

	users, err := s.userRepo.Search(ctx, query, callerID, SearchLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

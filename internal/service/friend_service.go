// Package service contains the business logic between the HTTP handlers
// and the repositories.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// Friendship status strings as reported to clients.
const (
	FriendshipStatusNone            = "none"
	FriendshipStatusFriends         = "friends"
	FriendshipStatusPendingSent     = "pending_sent"
	FriendshipStatusPendingReceived = "pending_received"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendFriendRequest creates a pending friendship edge from userID to
// targetUserID. The pair is unordered: a request in either direction, or
// an accepted friendship, blocks a new one.
func (s *FriendService) SendFriendRequest(ctx context.Context, userID, targetUserID uint) (*models.Friendship, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetFriendshipBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendshipStatusAccepted:
			return nil, models.NewConflictError("You are already friends")
		case models.FriendshipStatusPending:
			if existing.RequesterID == userID {
				return nil, models.NewConflictError("Friend request already sent")
			}
			return nil, models.NewConflictError("You already have a pending friend request from this user")
		}
	}

	friendship := &models.Friendship{
		RequesterID: userID,
		AddresseeID: targetUserID,
		Status:      models.FriendshipStatusPending,
	}
	// The unique pair index catches the race where two requests for the
	// same pair pass the lookup above at once; Create maps it to CONFLICT.
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// AcceptFriendRequest accepts a pending friend request. Only the
// addressee may accept; the transition is pending -> accepted and
// happens at most once.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, requestID uint) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if friendship.AddresseeID != userID {
		return nil, models.NewUnauthorizedError("You can only accept friend requests sent to you")
	}
	if friendship.Status != models.FriendshipStatusPending {
		return nil, models.NewConflictError("Friend request is not pending")
	}

	accepted, err := s.friendRepo.AcceptPending(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		// A concurrent accept won the conditional update.
		return nil, models.NewConflictError("Friend request is not pending")
	}

	return s.friendRepo.GetByID(ctx, requestID)
}

// GetPendingRequests returns pending friend requests addressed to the user.
func (s *FriendService) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetPendingRequests(ctx, userID)
}

// GetFriends returns the list of friends for the user.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// GetFriendIDs returns the ids of the user's accepted friends.
func (s *FriendService) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.friendRepo.GetFriendIDs(ctx, userID)
}

// GetFriendshipStatus reports how userID relates to targetUserID: none,
// friends, pending_sent or pending_received, plus the request id when a
// request is pending.
func (s *FriendService) GetFriendshipStatus(ctx context.Context, userID, targetUserID uint) (string, uint, error) {
	if userID == targetUserID {
		return FriendshipStatusNone, 0, nil
	}

	friendship, err := s.friendRepo.GetFriendshipBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return "", 0, err
	}
	if friendship == nil {
		return FriendshipStatusNone, 0, nil
	}

	switch friendship.Status {
	case models.FriendshipStatusAccepted:
		return FriendshipStatusFriends, 0, nil
	case models.FriendshipStatusPending:
		if friendship.RequesterID == userID {
			return FriendshipStatusPendingSent, friendship.ID, nil
		}
		return FriendshipStatusPendingReceived, friendship.ID, nil
	default:
		return string(friendship.Status), friendship.ID, nil
	}
}

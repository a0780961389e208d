package server

import (
	"time"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, svcErr := s.friendService.SendFriendRequest(ctx, userID, targetUserID)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	// Notify both users so UI updates immediately.
	s.publishUserEvent(friendship.AddresseeID, EventFriendRequestReceived, map[string]interface{}{
		"request_id": friendship.ID,
		"from_user":  userSummary(friendship.Requester),
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	s.publishUserEvent(friendship.RequesterID, EventFriendRequestSent, map[string]interface{}{
		"request_id": friendship.ID,
		"to_user":    userSummary(friendship.Addressee),
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.GetPendingRequests(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(requests)
}

// AcceptFriendRequest handles POST /api/friends/requests/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	friendship, svcErr := s.friendService.AcceptFriendRequest(ctx, userID, requestID)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	s.publishUserEvent(friendship.RequesterID, EventFriendRequestAccepted, map[string]interface{}{
		"request_id":  friendship.ID,
		"friend_user": userSummary(friendship.Addressee),
		"created_at":  time.Now().UTC().Format(time.RFC3339Nano),
	})
	s.publishUserEvent(friendship.AddresseeID, EventFriendAdded, map[string]interface{}{
		"request_id":  friendship.ID,
		"friend_user": userSummary(friendship.Requester),
		"created_at":  time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.JSON(friendship)
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.GetFriends(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(friends)
}

// GetOnlineFriends handles GET /api/friends/online
func (s *Server) GetOnlineFriends(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	friends, err := s.friendService.GetFriends(ctx, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	online := make([]uint, 0, len(friends))
	if s.hub != nil {
		for _, friend := range friends {
			if s.hub.IsOnline(friend.ID) {
				online = append(online, friend.ID)
			}
		}
	}

	return c.JSON(fiber.Map{"user_ids": online})
}

// GetFriendshipStatus handles GET /api/friends/status/:userId
func (s *Server) GetFriendshipStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	// Target must exist even when no edge does
	if _, getUserErr := s.userRepo.GetByID(ctx, targetUserID); getUserErr != nil {
		return models.RespondWithAppError(c, getUserErr)
	}

	status, requestID, svcErr := s.friendService.GetFriendshipStatus(ctx, userID, targetUserID)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"status":     status,
		"request_id": requestID,
	})
}

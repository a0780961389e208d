package server

import (
	"time"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, svcErr := s.engagementService.ToggleLike(ctx, postID, userID)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	if result.Liked {
		if post, postErr := s.postRepo.GetByID(ctx, postID, userID); postErr == nil && post.AuthorID != userID {
			s.publishUserEvent(post.AuthorID, EventPostLiked, map[string]interface{}{
				"post_id":    postID,
				"by_user_id": userID,
				"created_at": time.Now().UTC().Format(time.RFC3339Nano),
			})
		}
	}

	return c.JSON(result)
}

// CreateCommentRequest is the body for POST /api/posts/:id/comments
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.engagementService.AddComment(ctx, postID, userID, req.Content)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	if post, postErr := s.postRepo.GetByID(ctx, postID, userID); postErr == nil && post.AuthorID != userID {
		s.publishUserEvent(post.AuthorID, EventCommentCreated, map[string]interface{}{
			"post_id":    postID,
			"comment_id": comment.ID,
			"author":     userSummary(comment.Author),
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	comments, svcErr := s.engagementService.GetComments(ctx, postID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	return c.JSON(comments)
}

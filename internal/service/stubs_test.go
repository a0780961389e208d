package service

import (
	"context"

	"ripple/internal/models"
)

type userRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.User, error)
	searchFn  func(context.Context, string, uint, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Search(ctx context.Context, q string, excludeUserID uint, limit int) ([]models.User, error) {
	return s.searchFn(ctx, q, excludeUserID, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		searchFn:  func(context.Context, string, uint, int) ([]models.User, error) { return nil, nil },
	}
}

type friendRepoStub struct {
	createFn                    func(context.Context, *models.Friendship) error
	getByIDFn                   func(context.Context, uint) (*models.Friendship, error)
	getFriendshipBetweenUsersFn func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn                func(context.Context, uint) ([]models.User, error)
	getFriendIDsFn              func(context.Context, uint) ([]uint, error)
	countFriendsFn              func(context.Context, uint) (int64, error)
	getPendingRequestsFn        func(context.Context, uint) ([]models.Friendship, error)
	acceptPendingFn             func(context.Context, uint) (bool, error)
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getFriendshipBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFriendIDsFn(ctx, userID)
}
func (s *friendRepoStub) CountFriends(ctx context.Context, userID uint) (int64, error) {
	return s.countFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) AcceptPending(ctx context.Context, friendshipID uint) (bool, error) {
	return s.acceptPendingFn(ctx, friendshipID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:                    func(context.Context, *models.Friendship) error { return nil },
		getByIDFn:                   func(context.Context, uint) (*models.Friendship, error) { return &models.Friendship{}, nil },
		getFriendshipBetweenUsersFn: func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getFriendsFn:                func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFriendIDsFn:              func(context.Context, uint) ([]uint, error) { return nil, nil },
		countFriendsFn:              func(context.Context, uint) (int64, error) { return 0, nil },
		getPendingRequestsFn:        func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		acceptPendingFn:             func(context.Context, uint) (bool, error) { return true, nil },
	}
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, uint) (*models.Post, error)
	existsFn        func(context.Context, uint) (bool, error)
	listByAuthorsFn func(context.Context, []uint, uint, int) ([]*models.Post, error)
	listByAuthorFn  func(context.Context, uint, uint, int, int) ([]*models.Post, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, viewerID uint, limit int) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, viewerID, limit)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID, viewerID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, viewerID, limit, offset)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(context.Context, *models.Post) error { return nil },
		getByIDFn:       func(context.Context, uint, uint) (*models.Post, error) { return &models.Post{}, nil },
		existsFn:        func(context.Context, uint) (bool, error) { return true, nil },
		listByAuthorsFn: func(context.Context, []uint, uint, int) ([]*models.Post, error) { return nil, nil },
		listByAuthorFn:  func(context.Context, uint, uint, int, int) ([]*models.Post, error) { return nil, nil },
		countByAuthorFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type likeRepoStub struct {
	createFn func(context.Context, *models.Like) error
	deleteFn func(context.Context, uint, uint) (int64, error)
	existsFn func(context.Context, uint, uint) (bool, error)
	countFn  func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) Delete(ctx context.Context, postID, userID uint) (int64, error) {
	return s.deleteFn(ctx, postID, userID)
}
func (s *likeRepoStub) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	return s.existsFn(ctx, postID, userID)
}
func (s *likeRepoStub) Count(ctx context.Context, postID uint) (int64, error) {
	return s.countFn(ctx, postID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn: func(context.Context, *models.Like) error { return nil },
		deleteFn: func(context.Context, uint, uint) (int64, error) { return 1, nil },
		existsFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		countFn:  func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn           func(context.Context, *models.Comment) error
	getByIDFn          func(context.Context, uint) (*models.Comment, error)
	listRecentByPostFn func(context.Context, uint, int) ([]*models.Comment, error)
	listByPostFn       func(context.Context, uint, int, int) ([]*models.Comment, error)
	countFn            func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListRecentByPost(ctx context.Context, postID uint, limit int) ([]*models.Comment, error) {
	return s.listRecentByPostFn(ctx, postID, limit)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Count(ctx context.Context, postID uint) (int64, error) {
	return s.countFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:           func(context.Context, *models.Comment) error { return nil },
		getByIDFn:          func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listRecentByPostFn: func(context.Context, uint, int) ([]*models.Comment, error) { return nil, nil },
		listByPostFn:       func(context.Context, uint, int, int) ([]*models.Comment, error) { return nil, nil },
		countFn:            func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

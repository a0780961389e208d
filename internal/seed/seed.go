package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxDays     int
	ShouldClean bool
}

// Seed populates the database with demo data: a user mesh with accepted and
// pending friendships, backdated posts, likes and comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	accepted, pending, err := createFriendshipMesh(factory, r, users)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("%d accepted and %d pending friendships created", accepted, pending)

	posts, err := createPosts(factory, r, users, opts.NumPosts, opts.MaxDays)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := createEngagement(factory, r, users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, friendships, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// A few fixed handles so developers always have a known account to poke at.
	if count >= 3 {
		for _, handle := range []string{"alice", "bob", "test"} {
			h := handle
			user, err := factory.CreateUser(func(u *models.User) {
				u.Username = h
				u.Email = fmt.Sprintf("%s@example.com", h)
				u.Avatar = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", h)
			})
			if err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// createFriendshipMesh connects every user to a handful of others. Edges are
// stored once per pair, so only pairs (i, j) with i < j are attempted;
// roughly one in four stays pending.
func createFriendshipMesh(factory *Factory, r *rand.Rand, users []*models.User) (accepted, pending int, err error) {
	for i, user := range users {
		degree := r.Intn(4) + 2
		for d := 0; d < degree; d++ {
			j := r.Intn(len(users))
			if j <= i {
				continue
			}
			status := models.FriendshipStatusAccepted
			if r.Float32() < 0.25 {
				status = models.FriendshipStatusPending
			}
			if cerr := factory.CreateFriendship(user, users[j], status); cerr != nil {
				// Duplicate pair from a previous draw; skip it.
				continue
			}
			if status == models.FriendshipStatusAccepted {
				accepted++
			} else {
				pending++
			}
		}
	}
	return accepted, pending, nil
}

func createPosts(factory *Factory, r *rand.Rand, users []*models.User, count, maxDays int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, factory.BuildPost(users[r.Intn(len(users))], maxDays))
	}

	// Chunked batch insert keeps large seeds fast.
	const chunk = 200
	for start := 0; start < len(posts); start += chunk {
		end := start + chunk
		if end > len(posts) {
			end = len(posts)
		}
		batch := posts[start:end]
		if err := factory.CreatePostsBatch(batch); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// createEngagement sprinkles likes and comments over the seeded posts. Like
// uniqueness is enforced by the (post_id, user_id) index, so a repeated draw
// is just skipped.
func createEngagement(factory *Factory, r *rand.Rand, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		numLikes := r.Intn(len(users)/2 + 1)
		for l := 0; l < numLikes; l++ {
			if err := factory.CreateLike(users[r.Intn(len(users))], post); err != nil {
				continue
			}
		}

		numComments := r.Intn(6)
		for c := 0; c < numComments; c++ {
			if _, err := factory.CreateComment(users[r.Intn(len(users))], post); err != nil {
				return err
			}
		}
	}
	return nil
}

package repositories

import (
	"errors"
	"testing"

	"github.com/foodgram-go/backend/internal/apperrors"
	"github.com/foodgram-go/backend/internal/models"
)

func TestFollowSelf(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	repo := NewPostgresSubscriptionRepository(db)

	err := repo.Follow(user.ID, user.ID)
	if !errors.Is(err, apperrors.ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Subscription{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("self-follow must not touch storage, found %d rows", count)
	}
}

func TestFollowTwice(t *testing.T) {
	db := openTestDB(t)
	follower := createTestUser(t, db, "alice")
	author := createTestUser(t, db, "bob")
	repo := NewPostgresSubscriptionRepository(db)

	if err := repo.Follow(follower.ID, author.ID); err != nil {
		t.Fatalf("first follow failed: %v", err)
	}
	if err := repo.Follow(follower.ID, author.ID); !errors.Is(err, apperrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on second follow, got %v", err)
	}
}

func TestUnfollowMissing(t *testing.T) {
	db := openTestDB(t)
	follower := createTestUser(t, db, "alice")
	author := createTestUser(t, db, "bob")
	repo := NewPostgresSubscriptionRepository(db)

	if err := repo.Unfollow(follower.ID, author.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFollowIsDirectional(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	repo := NewPostgresSubscriptionRepository(db)

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	following, err := repo.IsFollowing(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("IsFollowing failed: %v", err)
	}
	if !following {
		t.Fatal("expected alice to follow bob")
	}
	reverse, err := repo.IsFollowing(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("IsFollowing failed: %v", err)
	}
	if reverse {
		t.Fatal("bob must not follow alice")
	}
}

func TestGetSubscriptionsOrderedByID(t *testing.T) {
	db := openTestDB(t)
	follower := createTestUser(t, db, "alice")
	first := createTestUser(t, db, "bob")
	second := createTestUser(t, db, "carol")
	repo := NewPostgresSubscriptionRepository(db)

	if err := repo.Follow(follower.ID, second.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := repo.Follow(follower.ID, first.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	subs, err := repo.GetSubscriptions(follower.ID, 0, 0)
	if err != nil {
		t.Fatalf("GetSubscriptions failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", len(subs))
	}
	if subs[0].ID >= subs[1].ID {
		t.Fatalf("expected ascending subscription ids, got %d then %d", subs[0].ID, subs[1].ID)
	}
	// First row is the earliest subscription, which targeted carol
	if subs[0].Author.Username != "carol" {
		t.Fatalf("expected carol first, got %s", subs[0].Author.Username)
	}
	if subs[1].Author.Username != "bob" {
		t.Fatalf("expected bob second, got %s", subs[1].Author.Username)
	}
}

func TestGetSubscriptionsPaged(t *testing.T) {
	db := openTestDB(t)
	follower := createTestUser(t, db, "alice")
	repo := NewPostgresSubscriptionRepository(db)

	for _, name := range []string{"bob", "carol", "dave"} {
		author := createTestUser(t, db, name)
		if err := repo.Follow(follower.ID, author.ID); err != nil {
			t.Fatalf("follow failed: %v", err)
		}
	}

	subs, err := repo.GetSubscriptions(follower.ID, 1, 1)
	if err != nil {
		t.Fatalf("GetSubscriptions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscription on the page, got %d", len(subs))
	}
	// Follows were created in order, so offset 1 lands on carol
	if subs[0].Author.Username != "carol" {
		t.Fatalf("expected carol on the second page, got %s", subs[0].Author.Username)
	}

	rest, err := repo.GetSubscriptions(follower.ID, 5, 2)
	if err != nil {
		t.Fatalf("GetSubscriptions failed: %v", err)
	}
	if len(rest) != 1 || rest[0].Author.Username != "dave" {
		t.Fatalf("expected only dave past offset 2, got %v", rest)
	}
}

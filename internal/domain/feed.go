package domain

import (
	"context"
	"time"
)

type FeedPost struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"-"`
	Text    string    `json:"text"`
	Created time.Time `json:"-"`

	// Joined data
	Username string `json:"user"`
	FullName string `json:"full_name"`
}

type FeedPostView struct {
	FeedPost
	CreatedSince string `json:"created"`
}

type FeedPostRepository interface {
	Create(ctx context.Context, post *FeedPost) error
	// FetchByUsername returns a user's posts ordered newest first.
	FetchByUsername(ctx context.Context, username string) ([]FeedPost, error)
}

type FeedPostUsecase interface {
	ListFeedPosts(ctx context.Context, username string) ([]FeedPostView, error)
	CreateFeedPost(ctx context.Context, username, text string) (*FeedPostView, error)
}

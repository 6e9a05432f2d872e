package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
)

type feedUsecase struct {
	feedRepo    domain.FeedPostRepository
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
}

func NewFeedUsecase(
	feedRepo domain.FeedPostRepository,
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
) domain.FeedPostUsecase {
	return &feedUsecase{feedRepo: feedRepo, userRepo: userRepo, profileRepo: profileRepo}
}

func feedView(post *domain.FeedPost) domain.FeedPostView {
	return domain.FeedPostView{
		FeedPost:     *post,
		CreatedSince: domain.TimeSince(post.Created, time.Now()),
	}
}

func (u *feedUsecase) ListFeedPosts(ctx context.Context, username string) ([]domain.FeedPostView, error) {
	posts, err := u.feedRepo.FetchByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	views := make([]domain.FeedPostView, 0, len(posts))
	for i := range posts {
		views = append(views, feedView(&posts[i]))
	}
	return views, nil
}

func (u *feedUsecase) CreateFeedPost(ctx context.Context, username, text string) (*domain.FeedPostView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.Validation(map[string]string{"text": "This field is required."})
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	post := &domain.FeedPost{UserID: user.ID, Text: text, Username: user.Username}
	if err := u.feedRepo.Create(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}

	if profile, err := u.profileRepo.GetByUsername(ctx, username); err == nil {
		post.FullName = profile.FullName
	}

	view := feedView(post)
	return &view, nil
}

package domain

import (
	"context"
	"fmt"
	"time"
)

// DefaultProfileImageURL is returned whenever a profile has no image set.
const DefaultProfileImageURL = "http://res.cloudinary.com/hjfb74ijq/image/upload/v1479381082/default_rutr05.jpg"

type Profile struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user"`
	FullName      string `json:"full_name"`
	PreferredName string `json:"preferred_name"`
	Country       string `json:"country"`
	ImageID       *int64 `json:"-"`

	// Joined data
	Username string `json:"-"`
	Email    string `json:"-"`
}

// ProfileView is the composed read model for a profile: the stored row plus
// the account identity, connection usernames and the derived current
// position/education fields.
type ProfileView struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"user"`
	FullName        string   `json:"full_name"`
	PreferredName   string   `json:"preferred_name"`
	Country         string   `json:"country"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Connections     []string `json:"connections"`
	CurrentPosition string   `json:"current_position"`
	CurrentCompany  string   `json:"current_company"`
	CurrentEdu      string   `json:"current_edu"`
	Image           string   `json:"image"`
}

// ProfileImage is a stored binary image payload owned by at most one profile.
type ProfileImage struct {
	ID          int64     `json:"id"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResolveImageURL substitutes the normalized image URL for a profile. A
// profile without an image always resolves to DefaultProfileImageURL.
func ResolveImageURL(baseURL, username string, imageID *int64) string {
	if imageID == nil {
		return DefaultProfileImageURL
	}
	return fmt.Sprintf("%s/v1/profiles/%s/image/raw", baseURL, username)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id int64) (*Profile, error)
	GetByUsername(ctx context.Context, username string) (*Profile, error)
	Fetch(ctx context.Context) ([]Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id int64) error
	SetImage(ctx context.Context, profileID, imageID int64) error
	// ConnectionUsernames returns the usernames of every profile connected
	// to the given profile.
	ConnectionUsernames(ctx context.Context, profileID int64) ([]string, error)
	// FetchUnconnected returns every profile except the given one and its
	// existing connections. Used as the recommendation candidate pool.
	FetchUnconnected(ctx context.Context, profileID int64) ([]Profile, error)
}

type ProfileImageRepository interface {
	Create(ctx context.Context, image *ProfileImage) error
	GetByID(ctx context.Context, id int64) (*ProfileImage, error)
}

type ProfileUsecase interface {
	ListProfiles(ctx context.Context) ([]ProfileView, error)
	GetProfile(ctx context.Context, username string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, actingUsername string, profile *Profile) (*ProfileView, error)
	DeleteProfile(ctx context.Context, actingUsername, username string) error
	Recommendations(ctx context.Context, username string) ([]ProfileView, error)
	Connections(ctx context.Context, username string) ([]ProfileView, error)
	ImageURL(ctx context.Context, username string) (string, error)
	ImageData(ctx context.Context, username string) (*ProfileImage, error)
	SetImage(ctx context.Context, username, encoded string) (string, error)
}

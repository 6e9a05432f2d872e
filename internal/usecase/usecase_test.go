package usecase_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/internal/usecase"
	"cvconnect-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func asAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a duplicate email with a field error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewUserUsecase(userRepo, profileRepo, stubHasher{}, validator.New())

		userRepo.On("GetByEmail", ctx, "taken@example.com").
			Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

		_, _, err := uc.Register(ctx, "newuser", "taken@example.com", "secret123")
		appErr := asAppError(t, err)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Email already in use. Please use another email address", appErr.Fields["email"])
	})

	t.Run("creates an empty profile alongside the user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewUserUsecase(userRepo, profileRepo, stubHasher{}, validator.New())

		userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByUsername", ctx, "newuser").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			}).Return(nil)
		profileRepo.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.Profile)
				assert.Equal(t, int64(7), p.UserID)
				assert.Empty(t, p.FullName)
				p.ID = 42
			}).Return(nil)

		user, profileID, err := uc.Register(ctx, "newuser", "new@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, int64(42), profileID)
		assert.Equal(t, "hashed:secret123", user.PasswordHash)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockProfileRepo), stubHasher{}, validator.New())

		_, _, err := uc.Register(ctx, "newuser", "not-an-email", "secret123")
		appErr := asAppError(t, err)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Fields, "email")
	})
}

func TestUserOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("updating someone else's account looks like a missing user", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockProfileRepo), stubHasher{}, validator.New())

		_, err := uc.UpdateUser(ctx, "alice", "bob", "alice@example.com")
		appErr := asAppError(t, err)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("deleting someone else's account looks like a missing user", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockProfileRepo), stubHasher{}, validator.New())

		err := uc.DeleteUser(ctx, "alice", "bob")
		appErr := asAppError(t, err)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestSkillProficiencyBounds(t *testing.T) {
	ctx := context.Background()

	newUC := func(skillRepo *MockSkillRepo, profileRepo *MockProfileRepo) domain.SkillUsecase {
		return usecase.NewSkillUsecase(skillRepo, profileRepo, validator.New())
	}

	t.Run("rejects proficiency above five", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1, Username: "alice"}, nil)

		err := newUC(skillRepo, profileRepo).CreateSkill(ctx, "alice", &domain.Skill{Name: "Go", Proficiency: 6})
		appErr := asAppError(t, err)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Fields, "proficiency")
	})

	t.Run("accepts the boundary values", func(t *testing.T) {
		for _, proficiency := range []int{0, 5} {
			skillRepo := new(MockSkillRepo)
			profileRepo := new(MockProfileRepo)
			profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1, Username: "alice"}, nil)
			skillRepo.On("Create", ctx, mock.AnythingOfType("*domain.Skill")).Return(nil)

			err := newUC(skillRepo, profileRepo).CreateSkill(ctx, "alice", &domain.Skill{Name: "Go", Proficiency: proficiency})
			assert.NoError(t, err)
		}
	})
}

func newProfileUsecase(profileRepo *MockProfileRepo, connectionRepo *MockConnectionRepo, employmentRepo *MockEmploymentRepo, educationRepo *MockEducationRepo, seed int64) domain.ProfileUsecase {
	return usecase.NewProfileUsecase(
		profileRepo, new(MockImageRepo), connectionRepo, employmentRepo, educationRepo,
		"http://localhost:8080", rand.New(rand.NewSource(seed)), validator.New(),
	)
}

func TestRecommendations(t *testing.T) {
	ctx := context.Background()

	setup := func(candidates []domain.Profile) (*MockProfileRepo, *MockConnectionRepo, *MockEmploymentRepo, *MockEducationRepo) {
		profileRepo := new(MockProfileRepo)
		connectionRepo := new(MockConnectionRepo)
		employmentRepo := new(MockEmploymentRepo)
		educationRepo := new(MockEducationRepo)

		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1, Username: "alice"}, nil)
		profileRepo.On("FetchUnconnected", ctx, int64(1)).Return(candidates, nil)
		profileRepo.On("ConnectionUsernames", ctx, mock.Anything).Return([]string{}, nil)
		employmentRepo.On("FetchByUsername", ctx, mock.Anything).Return([]domain.EmploymentDescription{}, nil)
		educationRepo.On("FetchByUsername", ctx, mock.Anything).Return([]domain.EducationDescription{}, nil)

		return profileRepo, connectionRepo, employmentRepo, educationRepo
	}

	t.Run("caps results at three", func(t *testing.T) {
		candidates := []domain.Profile{
			{ID: 2, Username: "b"}, {ID: 3, Username: "c"}, {ID: 4, Username: "d"},
			{ID: 5, Username: "e"}, {ID: 6, Username: "f"},
		}
		pr, cr, er, edr := setup(candidates)
		uc := newProfileUsecase(pr, cr, er, edr, 1)
		views, err := uc.Recommendations(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, views, 3)

		seen := map[string]bool{}
		for _, v := range views {
			assert.NotEqual(t, "alice", v.Username)
			assert.False(t, seen[v.Username], "recommendation repeated")
			seen[v.Username] = true
		}
	})

	t.Run("returns everyone when the pool is small", func(t *testing.T) {
		pr, cr, er, edr := setup([]domain.Profile{{ID: 2, Username: "b"}})
		uc := newProfileUsecase(pr, cr, er, edr, 1)
		views, err := uc.Recommendations(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("returns empty for a fully connected profile", func(t *testing.T) {
		pr, cr, er, edr := setup([]domain.Profile{})
		uc := newProfileUsecase(pr, cr, er, edr, 1)
		views, err := uc.Recommendations(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestProfileViewDerivedFields(t *testing.T) {
	ctx := context.Background()

	profileRepo := new(MockProfileRepo)
	connectionRepo := new(MockConnectionRepo)
	employmentRepo := new(MockEmploymentRepo)
	educationRepo := new(MockEducationRepo)

	end := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
	profileRepo.On("GetByUsername", ctx, "alice").
		Return(&domain.Profile{ID: 1, Username: "alice", FullName: "Alice Doe"}, nil)
	profileRepo.On("ConnectionUsernames", ctx, int64(1)).Return([]string{"bob", "carol"}, nil)
	employmentRepo.On("FetchByUsername", ctx, "alice").Return([]domain.EmploymentDescription{
		{Role: "Junior Dev", Employer: "OldCo", StartDate: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end},
		{Role: "Senior Dev", Employer: "NewCo", StartDate: time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	educationRepo.On("FetchByUsername", ctx, "alice").Return([]domain.EducationDescription{}, nil)

	uc := newProfileUsecase(profileRepo, connectionRepo, employmentRepo, educationRepo, 1)
	view, err := uc.GetProfile(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, "Senior Dev", view.CurrentPosition)
	assert.Equal(t, "NewCo", view.CurrentCompany)
	assert.Equal(t, domain.NoInstitution, view.CurrentEdu)
	assert.Equal(t, []string{"bob", "carol"}, view.Connections)
	assert.Equal(t, domain.DefaultProfileImageURL, view.Image)
}

func TestConnectionLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("cannot connect a profile to itself", func(t *testing.T) {
		uc := usecase.NewConnectionUsecase(new(MockProfileRepo), new(MockConnectionRepo))
		err := uc.Connect(ctx, "alice", "alice")
		appErr := asAppError(t, err)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("connects by resolved profile ids", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		connectionRepo := new(MockConnectionRepo)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1, Username: "alice"}, nil)
		profileRepo.On("GetByUsername", ctx, "bob").Return(&domain.Profile{ID: 2, Username: "bob"}, nil)
		connectionRepo.On("Connect", ctx, int64(1), int64(2)).Return(nil)

		uc := usecase.NewConnectionUsecase(profileRepo, connectionRepo)
		require.NoError(t, uc.Connect(ctx, "alice", "bob"))
		connectionRepo.AssertCalled(t, "Connect", ctx, int64(1), int64(2))
	})

	t.Run("connecting an unknown profile is a 404", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1}, nil)
		profileRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		uc := usecase.NewConnectionUsecase(profileRepo, new(MockConnectionRepo))
		err := uc.Connect(ctx, "alice", "ghost")
		appErr := asAppError(t, err)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestJobPostings(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown recruiter filter yields an empty list", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		uc := usecase.NewJobUsecase(new(MockJobRepo), userRepo)
		views, err := uc.ListJobPostings(ctx, "ghost")
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("only the recruiter can update a posting", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(9)).
			Return(&domain.JobPosting{ID: 9, Recruiter: "owner"}, nil)

		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))
		_, err := uc.UpdateJobPosting(ctx, "intruder", &domain.JobPosting{ID: 9})
		appErr := asAppError(t, err)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("humanizes the creation time", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(3)).Return(&domain.JobPosting{
			ID:      3,
			Created: time.Now().Add(-3 * 24 * time.Hour),
		}, nil)

		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))
		view, err := uc.GetJobPosting(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "3 days", view.CreatedSince)
	})
}

func TestApplications(t *testing.T) {
	ctx := context.Background()

	newUC := func(appRepo *MockApplicationRepo, jobRepo *MockJobRepo, profileRepo *MockProfileRepo, employmentRepo *MockEmploymentRepo, skillRepo *MockSkillRepo) domain.JobApplicationUsecase {
		return usecase.NewApplicationUsecase(appRepo, jobRepo, profileRepo, employmentRepo, skillRepo)
	}

	t.Run("resolves a username to its profile on create", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		employmentRepo := new(MockEmploymentRepo)
		skillRepo := new(MockSkillRepo)

		jobRepo.On("GetByID", ctx, int64(5)).Return(&domain.JobPosting{ID: 5, Company: "Acme", Position: "Dev"}, nil)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 11, Username: "alice", FullName: "Alice Doe"}, nil)
		profileRepo.On("GetByID", ctx, int64(11)).Return(&domain.Profile{ID: 11, Username: "alice", FullName: "Alice Doe"}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).
			Run(func(args mock.Arguments) {
				app := args.Get(1).(*domain.JobApplication)
				assert.Equal(t, int64(11), app.ProfileID)
				assert.Equal(t, domain.ApplicationStatusPending, app.Status)
				app.ID = 1
			}).Return(nil)
		employmentRepo.On("FetchByUsername", ctx, "alice").Return([]domain.EmploymentDescription{}, nil)
		skillRepo.On("FetchByUsername", ctx, "alice").Return([]domain.Skill{
			{Name: "Go"}, {Name: "SQL"},
		}, nil)

		view, err := newUC(appRepo, jobRepo, profileRepo, employmentRepo, skillRepo).
			CreateApplication(ctx, 5, "alice", "")
		require.NoError(t, err)
		assert.Equal(t, "alice", view.Username)
		assert.Equal(t, "Go, SQL", view.Skills)
		assert.Equal(t, domain.NotEmployed, view.CurrentPosition)
		assert.Equal(t, "Acme", view.JobPostingCompany)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(5), int64(1)).
			Return(&domain.JobApplication{ID: 1, JobPostingID: 5, Status: domain.ApplicationStatusPending}, nil)

		uc := newUC(appRepo, new(MockJobRepo), new(MockProfileRepo), new(MockEmploymentRepo), new(MockSkillRepo))
		_, err := uc.UpdateStatus(ctx, 5, 1, "Maybe")
		appErr := asAppError(t, err)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Fields, "status")
	})

	t.Run("allows moving a decided application back to pending", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		employmentRepo := new(MockEmploymentRepo)
		skillRepo := new(MockSkillRepo)

		appRepo.On("GetByID", ctx, int64(5), int64(1)).
			Return(&domain.JobApplication{ID: 1, JobPostingID: 5, ProfileID: 11, Status: domain.ApplicationStatusAccepted}, nil)
		appRepo.On("Update", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)
		jobRepo.On("GetByID", ctx, int64(5)).Return(&domain.JobPosting{ID: 5}, nil)
		profileRepo.On("GetByID", ctx, int64(11)).Return(&domain.Profile{ID: 11, Username: "alice"}, nil)
		employmentRepo.On("FetchByUsername", ctx, "alice").Return([]domain.EmploymentDescription{}, nil)
		skillRepo.On("FetchByUsername", ctx, "alice").Return([]domain.Skill{}, nil)

		view, err := newUC(appRepo, jobRepo, profileRepo, employmentRepo, skillRepo).
			UpdateStatus(ctx, 5, 1, domain.ApplicationStatusPending)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, view.Status)
	})
}

func TestSearchFacets(t *testing.T) {
	ctx := context.Background()

	searchRepo := new(MockSearchRepo)
	imageID := int64(3)
	searchRepo.On("ProfilesByFullName", ctx, "go").Return([]domain.ProfileSearchRow{
		{Username: "alice", FullName: "Alice Gomez", ImageID: &imageID},
	}, nil)
	searchRepo.On("JobsByPosition", ctx, "go").Return([]domain.JobSearchRow{
		{ID: 7, Position: "Go Developer", Company: "Acme"},
	}, nil)
	searchRepo.On("SkillsByName", ctx, "go").Return([]domain.SkillSearchRow{
		{Name: "Golang", Username: "bob", FullName: "Bob Roe"},
	}, nil)
	searchRepo.On("ProfilesByCountry", ctx, "go").Return([]domain.ProfileSearchRow{
		{Username: "carol", FullName: "Carol Poe", Country: "Togo"},
	}, nil)

	uc := usecase.NewSearchUsecase(searchRepo, "http://localhost:8080")
	results, err := uc.Search(ctx, "go")
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, domain.SearchSubtypeProfiles, results[0].Subtype)
	assert.Equal(t, "alice", results[0].ID)
	assert.Equal(t, "http://localhost:8080/v1/profiles/alice/image/raw", results[0].Image)

	assert.Equal(t, domain.SearchTypeJobs, results[1].Type)
	assert.Equal(t, int64(7), results[1].ID)
	assert.Equal(t, "Go Developer at Acme", results[1].VisibleID)

	assert.Equal(t, domain.SearchSubtypeSkills, results[2].Subtype)
	assert.Equal(t, domain.SearchTypeProfiles, results[2].Type)
	assert.Equal(t, "Golang", results[2].Match)

	assert.Equal(t, domain.SearchSubtypeLocations, results[3].Subtype)
	assert.Equal(t, "Togo", results[3].Match)
	assert.Equal(t, domain.DefaultProfileImageURL, results[3].Image)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	newUC := func(userRepo *MockUserRepo) domain.AccountUsecase {
		return usecase.NewAccountUsecase(
			userRepo, new(MockProfileRepo), nil, nil, stubHasher{}, stubTokenIssuer{}, validator.New(),
		)
	}

	t.Run("wrong current password looks like a missing user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "alice").
			Return(&domain.User{ID: 1, Username: "alice", PasswordHash: "hashed:right"}, nil)

		_, err := newUC(userRepo).ChangePassword(ctx, "alice", "wrong", "newsecret")
		appErr := asAppError(t, err)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("returns a fresh token on success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "alice").
			Return(&domain.User{ID: 1, Username: "alice", PasswordHash: "hashed:right"}, nil)
		userRepo.On("UpdatePassword", ctx, int64(1), "hashed:newsecret").Return(nil)

		token, err := newUC(userRepo).ChangePassword(ctx, "alice", "right", "newsecret")
		require.NoError(t, err)
		assert.Equal(t, "token-for-alice", token)
	})
}

func TestCompanyManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("a non-manager sees the missing-company response", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1}, nil)
		companyRepo.On("IsManager", ctx, int64(1), int64(9)).Return(false, nil)

		uc := usecase.NewCompanyUsecase(companyRepo, profileRepo, validator.New())
		_, err := uc.GetCompany(ctx, "alice", 9)
		appErr := asAppError(t, err)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("can-manage is a plain boolean, not an error", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1}, nil)
		companyRepo.On("IsManager", ctx, int64(1), int64(9)).Return(false, nil)

		uc := usecase.NewCompanyUsecase(companyRepo, profileRepo, validator.New())
		ok, err := uc.CanManage(ctx, "alice", 9)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("the creator becomes the first manager", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1}, nil)
		companyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Company).ID = 9
			}).Return(nil)
		companyRepo.On("AddManager", ctx, int64(1), int64(9)).Return(nil)

		uc := usecase.NewCompanyUsecase(companyRepo, profileRepo, validator.New())
		err := uc.CreateCompany(ctx, "alice", &domain.Company{
			Name: "Acme", Description: "Widgets", Industry: "Manufacturing",
		})
		require.NoError(t, err)
		companyRepo.AssertCalled(t, "AddManager", ctx, int64(1), int64(9))
	})
}

func TestFeedPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank text", func(t *testing.T) {
		uc := usecase.NewFeedUsecase(new(MockFeedRepo), new(MockUserRepo), new(MockProfileRepo))
		_, err := uc.CreateFeedPost(ctx, "alice", "   ")
		appErr := asAppError(t, err)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("stamps the author and humanized time", func(t *testing.T) {
		feedRepo := new(MockFeedRepo)
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)

		userRepo.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)
		profileRepo.On("GetByUsername", ctx, "alice").Return(&domain.Profile{ID: 1, FullName: "Alice Doe"}, nil)
		feedRepo.On("Create", ctx, mock.AnythingOfType("*domain.FeedPost")).
			Run(func(args mock.Arguments) {
				post := args.Get(1).(*domain.FeedPost)
				post.ID = 1
				post.Created = time.Now()
			}).Return(nil)

		uc := usecase.NewFeedUsecase(feedRepo, userRepo, profileRepo)
		view, err := uc.CreateFeedPost(ctx, "alice", "hello world")
		require.NoError(t, err)
		assert.Equal(t, "alice", view.Username)
		assert.Equal(t, "Alice Doe", view.FullName)
		assert.Equal(t, "0 minutes", view.CreatedSince)
	})
}

func TestEmploymentOwnership(t *testing.T) {
	ctx := context.Background()

	employmentRepo := new(MockEmploymentRepo)
	employmentRepo.On("GetByID", ctx, "alice", int64(3)).Return(nil, domain.ErrNotFound)

	uc := usecase.NewEmploymentUsecase(employmentRepo, new(MockProfileRepo), validator.New())
	_, err := uc.GetEmployment(ctx, "alice", 3)
	appErr := asAppError(t, err)
	assert.Equal(t, 404, appErr.Code)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

package usecase_test

import (
	"context"

	"cvconnect-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Fetch(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockProfileRepo) SetImage(ctx context.Context, profileID, imageID int64) error {
	return m.Called(ctx, profileID, imageID).Error(0)
}
func (m *MockProfileRepo) ConnectionUsernames(ctx context.Context, profileID int64) ([]string, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockProfileRepo) FetchUnconnected(ctx context.Context, profileID int64) ([]domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

type MockEmploymentRepo struct {
	mock.Mock
}

func (m *MockEmploymentRepo) Create(ctx context.Context, entry *domain.EmploymentDescription) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockEmploymentRepo) GetByID(ctx context.Context, username string, id int64) (*domain.EmploymentDescription, error) {
	args := m.Called(ctx, username, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmploymentDescription), args.Error(1)
}
func (m *MockEmploymentRepo) FetchByUsername(ctx context.Context, username string) ([]domain.EmploymentDescription, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmploymentDescription), args.Error(1)
}
func (m *MockEmploymentRepo) Update(ctx context.Context, entry *domain.EmploymentDescription) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockEmploymentRepo) Delete(ctx context.Context, username string, id int64) error {
	return m.Called(ctx, username, id).Error(0)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) Create(ctx context.Context, entry *domain.EducationDescription) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockEducationRepo) GetByID(ctx context.Context, username string, id int64) (*domain.EducationDescription, error) {
	args := m.Called(ctx, username, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EducationDescription), args.Error(1)
}
func (m *MockEducationRepo) FetchByUsername(ctx context.Context, username string) ([]domain.EducationDescription, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EducationDescription), args.Error(1)
}
func (m *MockEducationRepo) Update(ctx context.Context, entry *domain.EducationDescription) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockEducationRepo) Delete(ctx context.Context, username string, id int64) error {
	return m.Called(ctx, username, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) GetByID(ctx context.Context, username string, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, username, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) FetchByUsername(ctx context.Context, username string) ([]domain.Skill, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, username string, id int64) error {
	return m.Called(ctx, username, id).Error(0)
}

type MockConnectionRepo struct {
	mock.Mock
}

func (m *MockConnectionRepo) Connect(ctx context.Context, profileID, otherID int64) error {
	return m.Called(ctx, profileID, otherID).Error(0)
}
func (m *MockConnectionRepo) Disconnect(ctx context.Context, profileID, otherID int64) error {
	return m.Called(ctx, profileID, otherID).Error(0)
}
func (m *MockConnectionRepo) ListConnections(ctx context.Context, profileID int64) ([]domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, posting *domain.JobPosting) error {
	return m.Called(ctx, posting).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) FetchByRecruiter(ctx context.Context, recruiterID int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, posting *domain.JobPosting) error {
	return m.Called(ctx, posting).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, jobID, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, jobID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchByJob(ctx context.Context, jobID int64, recruitOnly bool) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobID, recruitOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchByUsername(ctx context.Context, username string) ([]domain.JobApplication, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) JobPostingIDsByUsername(ctx context.Context, username string) ([]int64, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, jobID, id int64) error {
	return m.Called(ctx, jobID, id).Error(0)
}

type MockSearchRepo struct {
	mock.Mock
}

func (m *MockSearchRepo) ProfilesByFullName(ctx context.Context, query string) ([]domain.ProfileSearchRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileSearchRow), args.Error(1)
}
func (m *MockSearchRepo) JobsByPosition(ctx context.Context, query string) ([]domain.JobSearchRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobSearchRow), args.Error(1)
}
func (m *MockSearchRepo) SkillsByName(ctx context.Context, query string) ([]domain.SkillSearchRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillSearchRow), args.Error(1)
}
func (m *MockSearchRepo) ProfilesByCountry(ctx context.Context, query string) ([]domain.ProfileSearchRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileSearchRow), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCompanyRepo) AddManager(ctx context.Context, profileID, companyID int64) error {
	return m.Called(ctx, profileID, companyID).Error(0)
}
func (m *MockCompanyRepo) IsManager(ctx context.Context, profileID, companyID int64) (bool, error) {
	args := m.Called(ctx, profileID, companyID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCompanyRepo) SocialLinksByCompany(ctx context.Context, companyID int64) ([]domain.SocialLink, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialLink), args.Error(1)
}
func (m *MockCompanyRepo) AddSocialLink(ctx context.Context, link *domain.SocialLink) error {
	return m.Called(ctx, link).Error(0)
}

type MockFeedRepo struct {
	mock.Mock
}

func (m *MockFeedRepo) Create(ctx context.Context, post *domain.FeedPost) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockFeedRepo) FetchByUsername(ctx context.Context, username string) ([]domain.FeedPost, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedPost), args.Error(1)
}

type MockImageRepo struct {
	mock.Mock
}

func (m *MockImageRepo) Create(ctx context.Context, image *domain.ProfileImage) error {
	return m.Called(ctx, image).Error(0)
}
func (m *MockImageRepo) GetByID(ctx context.Context, id int64) (*domain.ProfileImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileImage), args.Error(1)
}

// Stub collaborators

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Check(password, hash string) bool     { return hash == "hashed:"+password }

type stubTokenIssuer struct{}

func (stubTokenIssuer) Issue(userID int64, username string) (string, error) {
	return "token-for-" + username, nil
}

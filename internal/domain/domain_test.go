package domain_test

import (
	"testing"
	"time"

	"cvconnect-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestTimeSince(t *testing.T) {
	now := date(2020, 6, 15)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"under a minute", now.Add(-30 * time.Second), "0 minutes"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes"},
		{"single hour", now.Add(-90 * time.Minute), "1 hour"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days"},
		{"weeks", now.Add(-15 * 24 * time.Hour), "2 weeks"},
		{"single month", now.Add(-31 * 24 * time.Hour), "1 month"},
		{"years", now.Add(-800 * 24 * time.Hour), "2 years"},
		{"future timestamps clamp to zero", now.Add(time.Hour), "0 minutes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.TimeSince(tc.t, now))
		})
	}
}

func TestCurrentPosition(t *testing.T) {
	t.Run("no entries reports the sentinel", func(t *testing.T) {
		role, employer := domain.CurrentPosition(nil)
		assert.Equal(t, domain.NotEmployed, role)
		assert.Equal(t, domain.NotEmployed, employer)
	})

	t.Run("all entries closed reports the sentinel", func(t *testing.T) {
		role, employer := domain.CurrentPosition([]domain.EmploymentDescription{
			{Role: "Dev", Employer: "OldCo", StartDate: date(2010, 1, 1), EndDate: datePtr(2012, 1, 1)},
		})
		assert.Equal(t, domain.NotEmployed, role)
		assert.Equal(t, domain.NotEmployed, employer)
	})

	t.Run("the latest-started open entry wins", func(t *testing.T) {
		role, employer := domain.CurrentPosition([]domain.EmploymentDescription{
			{Role: "CTO", Employer: "Startup", StartDate: date(2018, 1, 1)},
			{Role: "Advisor", Employer: "OtherCo", StartDate: date(2016, 1, 1)},
			{Role: "Dev", Employer: "OldCo", StartDate: date(2010, 1, 1), EndDate: datePtr(2015, 1, 1)},
		})
		assert.Equal(t, "CTO", role)
		assert.Equal(t, "Startup", employer)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		entries := []domain.EmploymentDescription{
			{Role: "Second", Employer: "B", StartDate: date(2015, 1, 1)},
			{Role: "First", Employer: "A", StartDate: date(2012, 1, 1)},
		}
		role, _ := domain.CurrentPosition(entries)
		assert.Equal(t, "Second", role)

		// The caller's slice stays untouched.
		assert.Equal(t, "Second", entries[0].Role)
	})
}

func TestCurrentEducation(t *testing.T) {
	t.Run("no entries reports the sentinel", func(t *testing.T) {
		assert.Equal(t, domain.NoInstitution, domain.CurrentEducation(nil))
	})

	t.Run("earliest attained date wins", func(t *testing.T) {
		got := domain.CurrentEducation([]domain.EducationDescription{
			{Institution: "Grad School", DateAttained: datePtr(2018, 6, 1)},
			{Institution: "College", DateAttained: datePtr(2014, 6, 1)},
		})
		assert.Equal(t, "College", got)
	})

	t.Run("entries without an attained date sort last", func(t *testing.T) {
		got := domain.CurrentEducation([]domain.EducationDescription{
			{Institution: "Ongoing"},
			{Institution: "College", DateAttained: datePtr(2014, 6, 1)},
		})
		assert.Equal(t, "College", got)
	})

	t.Run("falls back to the first entry when nothing is attained", func(t *testing.T) {
		got := domain.CurrentEducation([]domain.EducationDescription{
			{Institution: "First"},
			{Institution: "Second"},
		})
		assert.Equal(t, "First", got)
	})
}

func TestResolveImageURL(t *testing.T) {
	t.Run("no image resolves to the default", func(t *testing.T) {
		assert.Equal(t, domain.DefaultProfileImageURL,
			domain.ResolveImageURL("http://localhost:8080", "alice", nil))
	})

	t.Run("an image resolves to the raw endpoint", func(t *testing.T) {
		id := int64(3)
		assert.Equal(t, "http://localhost:8080/v1/profiles/alice/image/raw",
			domain.ResolveImageURL("http://localhost:8080", "alice", &id))
	})
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, domain.ValidApplicationStatus(domain.ApplicationStatusPending))
	assert.True(t, domain.ValidApplicationStatus(domain.ApplicationStatusAccepted))
	assert.True(t, domain.ValidApplicationStatus(domain.ApplicationStatusRejected))
	assert.False(t, domain.ValidApplicationStatus("pending"))
	assert.False(t, domain.ValidApplicationStatus(""))
	assert.False(t, domain.ValidApplicationStatus("Maybe"))
}

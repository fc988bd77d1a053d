package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/store"
	"github.com/jonathan/career-compass/internal/types"
)

func testUserService() *UserService {
	// Minimum bcrypt cost keeps the tests fast.
	return NewUserService(store.NewMemoryStore(), &config.PasswordConfig{BcryptCost: 4})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := testUserService()

	user, err := svc.Register(&types.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret123",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.FullName)
	assert.NotEqual(t, uuid.Nil, user.ID)

	logged, err := svc.Login(&types.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := testUserService()

	_, err := svc.Register(&types.RegisterRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&types.RegisterRequest{Email: "jane@example.com", Password: "other456"})
	var exists *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &exists)
}

func TestLoginFailures(t *testing.T) {
	svc := testUserService()
	_, err := svc.Register(&types.RegisterRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "jane@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "secret123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(&types.LoginRequest{Email: tt.email, Password: tt.password})
			var invalid *ErrInvalidCredentials
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestGetUnknownUser(t *testing.T) {
	svc := testUserService()

	_, _, err := svc.Get(uuid.New())
	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestSaveAnalysisAndHistory(t *testing.T) {
	svc := testUserService()
	user, err := svc.Register(&types.RegisterRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	analysis := &types.GapAnalysis{
		TotalSkillsRequired: 3,
		SkillsYouHave:       1,
		SkillsMissing:       2,
		MatchPercentage:     33.3,
		MissingSkills: []types.MissingSkill{
			{Skill: "aws", Frequency: 5, Priority: types.PriorityHigh},
		},
	}

	total, err := svc.SaveAnalysis(user.ID, &types.SaveHistoryRequest{
		JobTitle: "Software Engineer",
		Analysis: analysis,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Software Engineer", history[0].JobTitle)
	assert.Equal(t, 33.3, history[0].MatchPercentage)
	assert.Equal(t, analysis.MissingSkills, history[0].MissingSkills)
}

func TestUpdateProfile(t *testing.T) {
	svc := testUserService()
	user, err := svc.Register(&types.RegisterRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	profile, err := svc.UpdateProfile(user.ID, &types.UpdateProfileRequest{
		TargetJobs: []string{"Data Scientist"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Scientist"}, profile.TargetJobs)

	_, fetched, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Scientist"}, fetched.TargetJobs)
}

func TestListUsersExcludesPasswordData(t *testing.T) {
	svc := testUserService()
	_, err := svc.Register(&types.RegisterRequest{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = svc.Register(&types.RegisterRequest{Email: "b@example.com", Password: "secret123"})
	require.NoError(t, err)

	users := svc.List()
	require.Len(t, users, 2)
	assert.Equal(t, "a@example.com", users[0].Email)
	assert.Equal(t, "b@example.com", users[1].Email)
}

package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dpereira/gymflow/internal/cloud"
	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSessionFixture builds a session over an in-memory database with all
// pacing delays disabled. The post-login push is parked an hour away so
// background pushes never race the assertions.
func newSessionFixture(t *testing.T) (*SessionService, *db.Repositories, *cloud.RemoteStore) {
	t.Helper()

	database, err := db.OpenMemory()
	require.NoError(t, err)

	kv := db.NewKVStore(database)
	repos := db.NewRepositories(kv)
	remote := cloud.NewRemoteStore(kv, 0, 0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := NewSessionService(repos, remote, logger, 0, time.Hour)
	return session, repos, remote
}

func TestLoginSynthesizesNewUser(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	user, err := session.Login(context.Background(), "  Ana Silva  ", " ANA@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, models.PlanBasic, user.Plan)
	assert.Equal(t, models.DefaultAvatar, user.Picture)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, StateAuthenticated, session.State())

	stored, found, err := repos.Users.CurrentUser()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, user.ID, stored.ID)

	registered, exists, err := repos.Users.FindRegistered("ana@example.com")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, user.ID, registered.ID)
}

func TestLoginRequiresNameForUnknownEmail(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "   ", "nova@example.com")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, StateUnauthenticated, session.State())
}

func TestLoginRequiresEmail(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "Ana", "   ")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestLoginResolvesRegisteredUserAfterLogout(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	first, err := session.Login(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, session.Logout())

	// Logout keeps the registry, so the name is not needed again and the
	// identity is the same.
	second, err := session.Login(context.Background(), "", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, found, err := repos.Users.CurrentUser()
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLogoutClearsOnlySessionPointer(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)

	require.NoError(t, repos.Workouts.Add(models.Workout{ID: "workout-1", Name: "Peito"}))
	require.NoError(t, session.Logout())

	assert.Equal(t, StateUnauthenticated, session.State())
	_, active := session.CurrentUser()
	assert.False(t, active)

	_, found, err := repos.Users.CurrentUser()
	require.NoError(t, err)
	assert.False(t, found)

	workouts, err := repos.Workouts.List()
	require.NoError(t, err)
	assert.Len(t, workouts, 1)

	_, exists, err := repos.Users.FindRegistered("ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoginAdoptsCloudPayload(t *testing.T) {
	session, repos, remote := newSessionFixture(t)

	cloudUser := models.User{ID: "user-cloud", Name: "Ana", Email: "ana@example.com", Plan: models.PlanPremium}
	payload := models.CloudPayload{
		User:     &cloudUser,
		Workouts: []models.Workout{{ID: "workout-cloud", Name: "Costas"}},
	}
	require.NoError(t, remote.Save(context.Background(), "ana@example.com", payload))

	require.NoError(t, repos.Workouts.ReplaceAll([]models.Workout{{ID: "workout-local", Name: "Local"}}))

	user, err := session.Login(context.Background(), "Ignored", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-cloud", user.ID)
	assert.Equal(t, models.PlanPremium, user.Plan)

	workouts, err := repos.Workouts.List()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "workout-cloud", workouts[0].ID)
}

func TestPlanChangeIsIdempotent(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)

	upgraded, err := session.UpgradeToPremium(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PlanPremium, upgraded.Plan)

	again, err := session.UpgradeToPremium(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PlanPremium, again.Plan)

	stored, found, err := repos.Users.CurrentUser()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.PlanPremium, stored.Plan)

	downgraded, err := session.DowngradeToBasic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PlanBasic, downgraded.Plan)
}

func TestPlanChangeRequiresSession(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	_, err := session.UpgradeToPremium(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateUserStatsAppliesDeltas(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)

	updated, err := session.UpdateUserStats(1, 350)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalWorkouts)
	assert.Equal(t, 350, updated.TotalCalories)

	updated, err = session.UpdateUserStats(0, -350)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalWorkouts)
	assert.Equal(t, 0, updated.TotalCalories)

	stored, found, err := repos.Users.CurrentUser()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, stored.TotalWorkouts)
}

func TestSyncRoundTrip(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)

	require.NoError(t, repos.Workouts.Add(models.Workout{ID: "workout-1", Name: "Peito"}))
	require.NoError(t, session.SyncToCloud(context.Background()))

	require.NoError(t, repos.Workouts.ReplaceAll(nil))

	updated, err := session.SyncFromCloud(context.Background())
	require.NoError(t, err)
	assert.True(t, updated)

	workouts, err := repos.Workouts.List()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "workout-1", workouts[0].ID)
}

// A pull is a full clobber of local state: anything changed locally after
// the last push is lost.
func TestPullDiscardsLocalChangesSinceLastPush(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)

	require.NoError(t, repos.Workouts.Add(models.Workout{ID: "workout-pushed", Name: "Peito"}))
	require.NoError(t, session.SyncToCloud(context.Background()))

	require.NoError(t, repos.Workouts.Add(models.Workout{ID: "workout-unpushed", Name: "Pernas"}))

	updated, err := session.SyncFromCloud(context.Background())
	require.NoError(t, err)
	require.True(t, updated)

	workouts, err := repos.Workouts.List()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "workout-pushed", workouts[0].ID)
}

func TestPullWithEmptyCloudIsNoop(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	_, err := session.Login(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, repos.Workouts.Add(models.Workout{ID: "workout-1", Name: "Peito"}))

	updated, err := session.SyncFromCloud(context.Background())
	require.NoError(t, err)
	assert.False(t, updated)

	workouts, err := repos.Workouts.List()
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
}

func TestRestoreResumesSavedSession(t *testing.T) {
	session, repos, _ := newSessionFixture(t)

	user := models.User{ID: "user-1", Name: "Ana", Email: "ana@example.com", Plan: models.PlanBasic}
	require.NoError(t, repos.Users.SaveCurrentUser(user))

	require.NoError(t, session.Restore())
	assert.Equal(t, StateAuthenticated, session.State())

	current, active := session.CurrentUser()
	require.True(t, active)
	assert.Equal(t, "user-1", current.ID)
}

func TestRestoreWithoutSavedSession(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	require.NoError(t, session.Restore())
	assert.Equal(t, StateUnauthenticated, session.State())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  ANA@Example.Com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

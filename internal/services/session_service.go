package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dpereira/gymflow/internal/cloud"
	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/models"
	"github.com/dpereira/gymflow/internal/security"
)

type SessionState string

const (
	StateLoading         SessionState = "loading"
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
)

const (
	DefaultLoginDelay    = 1500 * time.Millisecond
	DefaultPostLoginPush = 2 * time.Second
)

var (
	ErrNotAuthenticated = errors.New("no active session")
	ErrEmailRequired    = errors.New("email is required")
	ErrNameRequired     = errors.New("name is required")
)

// SessionService owns the current authenticated user and orchestrates
// push/pull against the mock remote store. The host is concurrent, so all
// session state sits behind a mutex, and every asynchronous push or pull
// re-checks that its resolved email still matches the active session
// before applying results.
type SessionService struct {
	repos  *db.Repositories
	remote *cloud.RemoteStore
	logger *slog.Logger

	loginDelay    time.Duration
	postLoginPush time.Duration

	mu      sync.Mutex
	state   SessionState
	current *models.User
}

func NewSessionService(repos *db.Repositories, remote *cloud.RemoteStore, logger *slog.Logger, loginDelay time.Duration, postLoginPush time.Duration) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		repos:         repos,
		remote:        remote,
		logger:        logger,
		loginDelay:    loginDelay,
		postLoginPush: postLoginPush,
		state:         StateLoading,
	}
}

// Restore probes the local session pointer for a previously saved user and
// resolves the initial Loading state.
func (service *SessionService) Restore() error {
	user, found, err := service.repos.Users.CurrentUser()

	service.mu.Lock()
	defer service.mu.Unlock()
	if err != nil {
		service.state = StateUnauthenticated
		return err
	}
	if !found {
		service.state = StateUnauthenticated
		return nil
	}
	service.current = &user
	service.state = StateAuthenticated
	return nil
}

func (service *SessionService) State() SessionState {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.state
}

// CurrentUser returns a copy of the active user, if any.
func (service *SessionService) CurrentUser() (models.User, bool) {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.current == nil {
		return models.User{}, false
	}
	return *service.current, true
}

// Login resolves an identity for email in order: cloud payload, then the
// local registry, then a freshly synthesized basic user. Adopting a cloud
// payload overwrites every local collection with the remote snapshot. The
// operation always waits the pacing delay before completing, then
// schedules a deferred push of the adopted state.
func (service *SessionService) Login(ctx context.Context, name string, email string) (models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return models.User{}, ErrEmailRequired
	}

	service.setState(StateLoading)

	user, err := service.resolveIdentity(ctx, name, email)
	if err != nil {
		service.setState(StateUnauthenticated)
		return models.User{}, err
	}

	if err := waitDelay(ctx, service.loginDelay); err != nil {
		service.setState(StateUnauthenticated)
		return models.User{}, err
	}

	if err := service.repos.Users.SaveCurrentUser(user); err != nil {
		service.setState(StateUnauthenticated)
		return models.User{}, err
	}

	service.mu.Lock()
	service.current = &user
	service.state = StateAuthenticated
	service.mu.Unlock()

	service.schedulePostLoginPush(email)
	return user, nil
}

func (service *SessionService) resolveIdentity(ctx context.Context, name string, email string) (models.User, error) {
	payload, found, err := service.remote.Load(ctx, email)
	if err != nil {
		if ctx.Err() != nil {
			return models.User{}, err
		}
		// Background consistency is best-effort; fall through to the
		// local registry.
		service.logger.Warn("cloud lookup failed during login", "email", email, "error", err)
		found = false
	}

	if found && payload.User != nil {
		if err := service.restoreCollections(payload); err != nil {
			return models.User{}, err
		}
		return *payload.User, nil
	}

	registered, exists, err := service.repos.Users.FindRegistered(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return registered, nil
	}

	if strings.TrimSpace(name) == "" {
		return models.User{}, ErrNameRequired
	}
	user := models.User{
		ID:       security.NewRecordID("user"),
		Name:     strings.TrimSpace(name),
		Email:    email,
		Picture:  models.DefaultAvatar,
		JoinDate: time.Now(),
		Plan:     models.PlanBasic,
	}
	if err := service.repos.Users.SaveRegistered(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// restoreCollections overwrites the local stores with the remote snapshot.
// Absent collections are left untouched, matching the per-collection
// presence checks of the sync payload.
func (service *SessionService) restoreCollections(payload models.CloudPayload) error {
	if payload.Workouts != nil {
		if err := service.repos.Workouts.ReplaceAll(payload.Workouts); err != nil {
			return err
		}
	}
	if payload.Photos != nil {
		if err := service.repos.Photos.ReplaceAll(payload.Photos); err != nil {
			return err
		}
	}
	if payload.Meals != nil {
		if err := service.repos.Meals.ReplaceAll(payload.Meals); err != nil {
			return err
		}
	}
	if payload.CompletedWorkouts != nil {
		if err := service.repos.Completed.ReplaceAll(payload.CompletedWorkouts); err != nil {
			return err
		}
	}
	return nil
}

// Logout clears only the session pointer. Domain collections and registry
// entries are retained deliberately, so a later login on the same device
// finds its data.
func (service *SessionService) Logout() error {
	service.mu.Lock()
	service.current = nil
	service.state = StateUnauthenticated
	service.mu.Unlock()

	return service.repos.Users.ClearCurrentUser()
}

func (service *SessionService) UpgradeToPremium(ctx context.Context) (models.User, error) {
	return service.setPlan(ctx, models.PlanPremium)
}

func (service *SessionService) DowngradeToBasic(ctx context.Context) (models.User, error) {
	return service.setPlan(ctx, models.PlanBasic)
}

// setPlan is idempotent: applying the current plan again changes nothing
// but still persists and pushes.
func (service *SessionService) setPlan(ctx context.Context, plan string) (models.User, error) {
	service.mu.Lock()
	if service.current == nil {
		service.mu.Unlock()
		return models.User{}, ErrNotAuthenticated
	}
	service.current.Plan = plan
	updated := *service.current
	service.mu.Unlock()

	if err := service.persistUser(updated); err != nil {
		return models.User{}, err
	}

	// Plan changes push immediately; the push failing is logged, never
	// surfaced.
	if err := service.SyncToCloud(ctx); err != nil {
		service.logger.Warn("plan change push failed", "email", updated.Email, "error", err)
	}
	return updated, nil
}

// UpdateUserStats applies deltas to the cumulative totals. Totals are
// delta-maintained counters and may drift from the recomputed history
// figures in the stats view. The change persists locally and rides the
// fire-and-forget auto-push rather than a synchronous one.
func (service *SessionService) UpdateUserStats(deltaWorkouts int, deltaCalories int) (models.User, error) {
	service.mu.Lock()
	if service.current == nil {
		service.mu.Unlock()
		return models.User{}, ErrNotAuthenticated
	}
	service.current.TotalWorkouts += deltaWorkouts
	service.current.TotalCalories += deltaCalories
	updated := *service.current
	service.mu.Unlock()

	if err := service.persistUser(updated); err != nil {
		return models.User{}, err
	}

	go service.autoPush(updated.Email)
	return updated, nil
}

func (service *SessionService) persistUser(user models.User) error {
	if err := service.repos.Users.SaveCurrentUser(user); err != nil {
		return err
	}
	return service.repos.Users.SaveRegistered(user)
}

// SyncToCloud pushes the current user plus every local collection to the
// remote store. Manual callers get the error; background callers log it.
func (service *SessionService) SyncToCloud(ctx context.Context) error {
	service.mu.Lock()
	if service.current == nil {
		service.mu.Unlock()
		return ErrNotAuthenticated
	}
	user := *service.current
	service.mu.Unlock()

	payload, err := service.buildPayload(user)
	if err != nil {
		return err
	}
	return service.remote.Save(ctx, user.Email, payload)
}

func (service *SessionService) buildPayload(user models.User) (models.CloudPayload, error) {
	workouts, err := service.repos.Workouts.List()
	if err != nil {
		return models.CloudPayload{}, err
	}
	photos, err := service.repos.Photos.List()
	if err != nil {
		return models.CloudPayload{}, err
	}
	meals, err := service.repos.Meals.List()
	if err != nil {
		return models.CloudPayload{}, err
	}
	completed, err := service.repos.Completed.List()
	if err != nil {
		return models.CloudPayload{}, err
	}

	return models.CloudPayload{
		User:              &user,
		Workouts:          workouts,
		Photos:            photos,
		Meals:             meals,
		CompletedWorkouts: completed,
	}, nil
}

// SyncFromCloud pulls the remote payload for the active user and, when one
// exists, overwrites the local user, registry entry, and every collection
// unconditionally: a full clobber, no merge, no timestamp comparison.
// Returns false when the remote had nothing to pull.
func (service *SessionService) SyncFromCloud(ctx context.Context) (bool, error) {
	service.mu.Lock()
	if service.current == nil {
		service.mu.Unlock()
		return false, ErrNotAuthenticated
	}
	email := service.current.Email
	service.mu.Unlock()

	payload, found, err := service.remote.Load(ctx, email)
	if err != nil {
		return false, err
	}
	if !found || payload.User == nil {
		return false, nil
	}

	service.mu.Lock()
	if service.current == nil || service.current.Email != email {
		// The session changed while the pull was in flight; its result
		// no longer belongs to the active user.
		service.mu.Unlock()
		return false, nil
	}
	adopted := *payload.User
	service.current = &adopted
	service.mu.Unlock()

	if err := service.persistUser(adopted); err != nil {
		return false, err
	}
	if err := service.restoreCollections(payload); err != nil {
		return false, err
	}
	return true, nil
}

// autoPush is the generic fire-and-forget sync trigger: failures are
// logged, never surfaced, never retried.
func (service *SessionService) autoPush(email string) {
	service.mu.Lock()
	stale := service.current == nil || service.current.Email != email
	service.mu.Unlock()
	if stale {
		return
	}

	if err := service.SyncToCloud(context.Background()); err != nil {
		service.logger.Warn("auto-sync push failed", "email", email, "error", err)
	}
}

func (service *SessionService) schedulePostLoginPush(email string) {
	if service.postLoginPush <= 0 {
		go service.autoPush(email)
		return
	}
	time.AfterFunc(service.postLoginPush, func() {
		service.autoPush(email)
	})
}

func (service *SessionService) setState(state SessionState) {
	service.mu.Lock()
	service.state = state
	service.mu.Unlock()
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func waitDelay(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

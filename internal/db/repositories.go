package db

// Storage keys. Each holds one JSON document; mutations rewrite the whole
// document through the KV adapter.
const (
	sessionKey           = "gymflow:user"
	localUsersKey        = "gymflow:local-users"
	workoutsKey          = "gymflow:workouts"
	completedWorkoutsKey = "gymflow:completed-workouts"
	mealsKey             = "gymflow:meals"
	photosKey            = "gymflow:photos"
	profileKeyPrefix     = "gymflow:profile:"
)

type Repositories struct {
	Users     *UserRepository
	Workouts  *WorkoutRepository
	Completed *CompletedWorkoutRepository
	Meals     *MealRepository
	Photos    *PhotoRepository
	Profiles  *ProfileRepository
}

func NewRepositories(kv *KVStore) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(kv),
		Workouts:  NewWorkoutRepository(kv),
		Completed: NewCompletedWorkoutRepository(kv),
		Meals:     NewMealRepository(kv),
		Photos:    NewPhotoRepository(kv),
		Profiles:  NewProfileRepository(kv),
	}
}

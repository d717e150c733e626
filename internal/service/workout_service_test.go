package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workoutFixture struct {
	repos     *testutil.MockRepositories
	publisher *testutil.MockEventPublisher
	svc       *WorkoutService
	squat     *domain.Exercise
	pushup    *domain.Exercise
	run       *domain.Exercise
}

func newWorkoutFixture() *workoutFixture {
	repos := testutil.NewMockRepositories()
	publisher := testutil.NewMockEventPublisher()
	svc := NewWorkoutService(repos.Workouts, repos.Exercises, repos.WorkoutExercises)
	svc.SetEventPublisher(publisher)
	return &workoutFixture{
		repos:     repos,
		publisher: publisher,
		svc:       svc,
		squat:     repos.Store.AddExercise(&domain.Exercise{Name: "Back Squat", Category: "Strength", EquipmentNeeded: true}),
		pushup:    repos.Store.AddExercise(&domain.Exercise{Name: "Push-up", Category: "Strength"}),
		run:       repos.Store.AddExercise(&domain.Exercise{Name: "Run", Category: "Cardio"}),
	}
}

func (f *workoutFixture) workout(t *testing.T, date string, minutes int32) *domain.Workout {
	t.Helper()
	w, err := f.svc.CreateWorkout(context.Background(), CreateWorkoutInput{Date: strPtr(date), DurationMinutes: int32Ptr(minutes)})
	require.NoError(t, err)
	return w
}

func TestCreateWorkout_Success(t *testing.T) {
	f := newWorkoutFixture()

	w, err := f.svc.CreateWorkout(context.Background(), CreateWorkoutInput{
		Date:            strPtr("2025-09-01"),
		DurationMinutes: int32Ptr(45),
		Notes:           strPtr("Lower body"),
	})
	require.NoError(t, err)

	assert.NotZero(t, w.ID)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), w.Date)
	assert.Equal(t, int32(45), w.DurationMinutes)
	require.NotNil(t, w.Notes)
	assert.Equal(t, "Lower body", *w.Notes)
	assert.Equal(t, []string{"workout.created"}, f.publisher.Types())
}

func TestCreateWorkout_FutureDateAccepted(t *testing.T) {
	f := newWorkoutFixture()

	_, err := f.svc.CreateWorkout(context.Background(), CreateWorkoutInput{Date: strPtr("2999-12-31"), DurationMinutes: int32Ptr(10)})
	assert.NoError(t, err)
}

func TestCreateWorkout_ZeroDuration(t *testing.T) {
	f := newWorkoutFixture()

	_, err := f.svc.CreateWorkout(context.Background(), CreateWorkoutInput{Date: strPtr("2025-09-01"), DurationMinutes: int32Ptr(0)})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"duration_minutes"}, verr.Fields())

	list, _ := f.svc.GetWorkouts(context.Background())
	assert.Empty(t, list)
	assert.Empty(t, f.publisher.Events)
}

func TestCreateWorkout_AggregatesErrors(t *testing.T) {
	f := newWorkoutFixture()

	_, err := f.svc.CreateWorkout(context.Background(), CreateWorkoutInput{Date: strPtr("09/01/2025")})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"date", "duration_minutes"}, verr.Fields())
}

func TestGetWorkouts_MostRecentFirst(t *testing.T) {
	f := newWorkoutFixture()
	first := f.workout(t, "2025-09-01", 45)
	sameDayA := f.workout(t, "2025-09-03", 30)
	sameDayB := f.workout(t, "2025-09-03", 20)

	list, err := f.svc.GetWorkouts(context.Background())
	require.NoError(t, err)

	ids := make([]int32, len(list))
	for i, w := range list {
		ids[i] = w.ID
	}
	assert.Equal(t, []int32{sameDayB.ID, sameDayA.ID, first.ID}, ids)
}

func TestAddExercise_ReturnsDetailInInsertionOrder(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)
	ctx := context.Background()

	_, err := f.svc.AddExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.pushup.ID, Reps: int32Ptr(15), Sets: int32Ptr(4)})
	require.NoError(t, err)

	detail, err := f.svc.AddExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.run.ID, DurationSeconds: int32Ptr(1200)})
	require.NoError(t, err)

	require.Len(t, detail.Entries, 2)
	assert.Equal(t, w.ID, detail.Workout.ID)
	assert.Equal(t, "Push-up", detail.Entries[0].Exercise.Name)
	assert.Equal(t, "Run", detail.Entries[1].Exercise.Name)
	assert.Nil(t, detail.Entries[1].Reps)
	assert.Equal(t, int32(1200), *detail.Entries[1].DurationSeconds)

	exercises, err := f.svc.GetWorkoutExercises(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, f.pushup.ID, exercises[0].ID)
}

func TestAddExercise_SameExerciseDifferentPayload(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-01", 45)
	ctx := context.Background()

	_, err := f.svc.AddExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.squat.ID, Reps: int32Ptr(5), Sets: int32Ptr(5)})
	require.NoError(t, err)
	detail, err := f.svc.AddExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.squat.ID, Reps: int32Ptr(3), Sets: int32Ptr(5)})
	require.NoError(t, err)
	assert.Len(t, detail.Entries, 2)

	exercises, err := f.svc.GetWorkoutExercises(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, exercises, 1, "derived exercises are distinct")
}

func TestAddExercise_DuplicatePayload(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)
	ctx := context.Background()
	input := AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.run.ID, DurationSeconds: int32Ptr(1200)}

	_, err := f.svc.AddExercise(ctx, input)
	require.NoError(t, err)

	_, err = f.svc.AddExercise(ctx, input)
	var cv *domain.ConstraintViolation
	require.True(t, errors.As(err, &cv), "got %v", err)
	assert.Equal(t, 1, f.repos.Store.EntryCount())
}

func TestAddExercise_MissingPayload(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)

	_, err := f.svc.AddExercise(context.Background(), AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.run.ID})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "payload", verr.Errors[0].Field)
	assert.Equal(t, PayloadRequiredMessage, verr.Errors[0].Message)
	assert.Zero(t, f.repos.Store.EntryCount())
}

func TestAddExercise_NegativePayload(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)

	_, err := f.svc.AddExercise(context.Background(), AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.run.ID, Reps: int32Ptr(-1), Sets: int32Ptr(0)})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"reps", "sets"}, verr.Fields())
}

func TestAddExercise_MissingWorkoutCheckedFirst(t *testing.T) {
	f := newWorkoutFixture()

	// invalid payload and unknown exercise too, but the workout is reported
	_, err := f.svc.AddExercise(context.Background(), AddWorkoutExerciseInput{WorkoutID: 999, ExerciseID: 999})
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestAddExercise_MissingExercise(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)

	_, err := f.svc.AddExercise(context.Background(), AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: 999, Reps: int32Ptr(1)})
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
}

func TestAddExercise_PublishesEvent(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)

	_, err := f.svc.AddExercise(context.Background(), AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.run.ID, DurationSeconds: int32Ptr(60)})
	require.NoError(t, err)

	assert.Equal(t, []string{"workout.created", "workout_exercise.created"}, f.publisher.Types())
}

func TestAddExercise_LooksUpParentsOnce(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)
	workoutsBefore, exercisesBefore := f.repos.Workouts.GetByIDCalls(), f.repos.Exercises.GetByIDCalls()

	_, err := f.svc.AddExercise(context.Background(), AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.squat.ID, Reps: int32Ptr(5)})
	require.NoError(t, err)

	// parent check plus the detail refresh
	assert.Equal(t, 2, f.repos.Workouts.GetByIDCalls()-workoutsBefore)
	assert.Equal(t, 1, f.repos.Exercises.GetByIDCalls()-exercisesBefore)
}

func TestAttachExercise_SkipsParentLookups(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)
	ctx := context.Background()
	require.NoError(t, f.svc.CheckParents(ctx, w.ID, f.squat.ID))
	workoutsBefore, exercisesBefore := f.repos.Workouts.GetByIDCalls(), f.repos.Exercises.GetByIDCalls()

	detail, err := f.svc.AttachExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.squat.ID, Reps: int32Ptr(5)})
	require.NoError(t, err)
	require.Len(t, detail.Entries, 1)

	// only the detail refresh reads the workout
	assert.Equal(t, 1, f.repos.Workouts.GetByIDCalls()-workoutsBefore)
	assert.Equal(t, 0, f.repos.Exercises.GetByIDCalls()-exercisesBefore)
	assert.Equal(t, []string{"workout.created", "workout_exercise.created"}, f.publisher.Types())
}

func TestAttachExercise_ParentGoneAfterCheck(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-03", 30)
	ctx := context.Background()
	require.NoError(t, f.svc.CheckParents(ctx, w.ID, f.run.ID))
	require.NoError(t, f.svc.DeleteWorkout(ctx, w.ID))

	_, err := f.svc.AttachExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w.ID, ExerciseID: f.run.ID, DurationSeconds: int32Ptr(60)})
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
	assert.Empty(t, f.repos.Store.WorkoutExercises)
}

func TestDeleteWorkout_CascadesToItsRowsOnly(t *testing.T) {
	f := newWorkoutFixture()
	w1 := f.workout(t, "2025-09-01", 45)
	w2 := f.workout(t, "2025-09-03", 30)
	ctx := context.Background()

	_, err := f.svc.AddExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w1.ID, ExerciseID: f.squat.ID, Reps: int32Ptr(5), Sets: int32Ptr(5)})
	require.NoError(t, err)
	_, err = f.svc.AddExercise(ctx, AddWorkoutExerciseInput{WorkoutID: w2.ID, ExerciseID: f.squat.ID, Reps: int32Ptr(5), Sets: int32Ptr(5)})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteWorkout(ctx, w1.ID))

	_, err = f.svc.GetWorkoutDetail(ctx, w1.ID)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
	assert.Equal(t, 1, f.repos.Store.EntryCount())

	detail, err := f.svc.GetWorkoutDetail(ctx, w2.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Entries, 1)

	// exercises are never removed by a workout delete
	_, err = f.repos.Exercises.GetByID(ctx, f.squat.ID)
	assert.NoError(t, err)
}

func TestDeleteWorkout_NotFoundLeavesStoreUnchanged(t *testing.T) {
	f := newWorkoutFixture()
	f.workout(t, "2025-09-01", 45)

	err := f.svc.DeleteWorkout(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)

	list, _ := f.svc.GetWorkouts(context.Background())
	assert.Len(t, list, 1)
	assert.Equal(t, []string{"workout.created"}, f.publisher.Types())
}

func TestGetWorkoutExercises_NotFound(t *testing.T) {
	f := newWorkoutFixture()

	_, err := f.svc.GetWorkoutExercises(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestGetWorkoutDetail_RepositoryError(t *testing.T) {
	f := newWorkoutFixture()
	w := f.workout(t, "2025-09-01", 45)
	boom := errors.New("connection reset")
	f.repos.WorkoutExercises.ListByWorkoutFn = func(ctx context.Context, workoutID int32) ([]*domain.WorkoutEntry, error) {
		return nil, boom
	}

	_, err := f.svc.GetWorkoutDetail(context.Background(), w.ID)
	assert.ErrorIs(t, err, boom)
}

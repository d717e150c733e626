package testutil

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/websocket"
)

// MemoryStore holds the rows shared by the mock repositories so deletes can
// cascade across them. It enforces the same uniqueness and ordering rules
// as the Postgres schema.
type MemoryStore struct {
	mu               sync.Mutex
	Exercises        map[int32]*domain.Exercise
	Workouts         map[int32]*domain.Workout
	WorkoutExercises []*domain.WorkoutExercise
	NextExerciseID   int32
	NextWorkoutID    int32
	NextEntryID      int32
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Exercises:      make(map[int32]*domain.Exercise),
		Workouts:       make(map[int32]*domain.Workout),
		NextExerciseID: 1,
		NextWorkoutID:  1,
		NextEntryID:    1,
	}
}

// MockRepositories bundles the three mock repositories over one MemoryStore
type MockRepositories struct {
	Store            *MemoryStore
	Exercises        *MockExerciseRepository
	Workouts         *MockWorkoutRepository
	WorkoutExercises *MockWorkoutExerciseRepository
}

// NewMockRepositories creates the three mock repositories over a fresh store
func NewMockRepositories() *MockRepositories {
	store := NewMemoryStore()
	return &MockRepositories{
		Store:            store,
		Exercises:        NewMockExerciseRepository(store),
		Workouts:         NewMockWorkoutRepository(store),
		WorkoutExercises: NewMockWorkoutExerciseRepository(store),
	}
}

// AddExercise inserts an exercise directly, assigning an ID when missing
func (s *MemoryStore) AddExercise(exercise *domain.Exercise) *domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exercise.ID == 0 {
		exercise.ID = s.NextExerciseID
	}
	if exercise.ID >= s.NextExerciseID {
		s.NextExerciseID = exercise.ID + 1
	}
	s.Exercises[exercise.ID] = exercise
	return exercise
}

// AddWorkout inserts a workout directly, assigning an ID when missing
func (s *MemoryStore) AddWorkout(workout *domain.Workout) *domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	if workout.ID == 0 {
		workout.ID = s.NextWorkoutID
	}
	if workout.ID >= s.NextWorkoutID {
		s.NextWorkoutID = workout.ID + 1
	}
	s.Workouts[workout.ID] = workout
	return workout
}

// EntryCount returns the number of stored workout exercises
func (s *MemoryStore) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.WorkoutExercises)
}

// removeEntries drops the rows matching drop and reports how many went; callers hold s.mu
func (s *MemoryStore) removeEntries(drop func(*domain.WorkoutExercise) bool) int64 {
	kept := s.WorkoutExercises[:0]
	var removed int64
	for _, we := range s.WorkoutExercises {
		if drop(we) {
			removed++
			continue
		}
		kept = append(kept, we)
	}
	s.WorkoutExercises = kept
	return removed
}

// MockExerciseRepository is a mock implementation of domain.ExerciseRepository
type MockExerciseRepository struct {
	store          *MemoryStore
	CreateFn       func(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetByIDFn      func(ctx context.Context, id int32) (*domain.Exercise, error)
	ListFn         func(ctx context.Context) ([]*domain.Exercise, error)
	DeleteFn       func(ctx context.Context, id int32) (int64, error)
	ListWorkoutsFn func(ctx context.Context, exerciseID int32) ([]*domain.Workout, error)

	getByIDCalls atomic.Int32
}

// NewMockExerciseRepository creates a new MockExerciseRepository
func NewMockExerciseRepository(store *MemoryStore) *MockExerciseRepository {
	return &MockExerciseRepository{store: store}
}

// Create stores an exercise, rejecting a duplicate name
func (m *MockExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, exercise)
	}
	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Exercises {
		if existing.Name == exercise.Name {
			return nil, &domain.ConstraintViolation{
				Constraint: "uq_exercises_name",
				Fields:     []string{"name"},
				Message:    "an exercise with this name already exists",
			}
		}
	}
	created := *exercise
	created.ID = s.NextExerciseID
	s.NextExerciseID++
	s.Exercises[created.ID] = &created
	return &created, nil
}

// GetByID retrieves an exercise by its ID
func (m *MockExerciseRepository) GetByID(ctx context.Context, id int32) (*domain.Exercise, error) {
	m.getByIDCalls.Add(1)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	exercise, ok := s.Exercises[id]
	if !ok {
		return nil, domain.ErrExerciseNotFound
	}
	c := *exercise
	return &c, nil
}

// GetByIDCalls reports how many lookups the repository has served
func (m *MockExerciseRepository) GetByIDCalls() int {
	return int(m.getByIDCalls.Load())
}

// List returns every exercise ordered by name
func (m *MockExerciseRepository) List(ctx context.Context) ([]*domain.Exercise, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Exercise, 0, len(s.Exercises))
	for _, e := range s.Exercises {
		c := *e
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes an exercise and every workout exercise referencing it
func (m *MockExerciseRepository) Delete(ctx context.Context, id int32) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Exercises[id]; !ok {
		return 0, domain.ErrExerciseNotFound
	}
	removed := s.removeEntries(func(we *domain.WorkoutExercise) bool { return we.ExerciseID == id })
	delete(s.Exercises, id)
	return removed, nil
}

// ListWorkouts returns the distinct workouts referencing the exercise, most recent first
func (m *MockExerciseRepository) ListWorkouts(ctx context.Context, exerciseID int32) ([]*domain.Workout, error) {
	if m.ListWorkoutsFn != nil {
		return m.ListWorkoutsFn(ctx, exerciseID)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[int32]bool)
	result := make([]*domain.Workout, 0)
	for _, we := range s.WorkoutExercises {
		if we.ExerciseID != exerciseID || seen[we.WorkoutID] {
			continue
		}
		seen[we.WorkoutID] = true
		if w, ok := s.Workouts[we.WorkoutID]; ok {
			c := *w
			result = append(result, &c)
		}
	}
	sortWorkouts(result)
	return result, nil
}

// MockWorkoutRepository is a mock implementation of domain.WorkoutRepository
type MockWorkoutRepository struct {
	store           *MemoryStore
	CreateFn        func(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	GetByIDFn       func(ctx context.Context, id int32) (*domain.Workout, error)
	ListFn          func(ctx context.Context) ([]*domain.Workout, error)
	DeleteFn        func(ctx context.Context, id int32) (int64, error)
	ListExercisesFn func(ctx context.Context, workoutID int32) ([]*domain.Exercise, error)

	getByIDCalls atomic.Int32
}

// NewMockWorkoutRepository creates a new MockWorkoutRepository
func NewMockWorkoutRepository(store *MemoryStore) *MockWorkoutRepository {
	return &MockWorkoutRepository{store: store}
}

// Create stores a workout
func (m *MockWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, workout)
	}
	if err := workout.Validate(); err != nil {
		return nil, err
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *workout
	created.ID = s.NextWorkoutID
	s.NextWorkoutID++
	s.Workouts[created.ID] = &created
	return &created, nil
}

// GetByID retrieves a workout by its ID
func (m *MockWorkoutRepository) GetByID(ctx context.Context, id int32) (*domain.Workout, error) {
	m.getByIDCalls.Add(1)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	workout, ok := s.Workouts[id]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	c := *workout
	return &c, nil
}


// GetByIDCalls reports how many lookups the repository has served
func (m *MockWorkoutRepository) GetByIDCalls() int {
	return int(m.getByIDCalls.Load())
}

// List returns every workout, most recent first
func (m *MockWorkoutRepository) List(ctx context.Context) ([]*domain.Workout, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Workout, 0, len(s.Workouts))
	for _, w := range s.Workouts {
		c := *w
		result = append(result, &c)
	}
	sortWorkouts(result)
	return result, nil
}

// Delete removes a workout and every workout exercise it owns
func (m *MockWorkoutRepository) Delete(ctx context.Context, id int32) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Workouts[id]; !ok {
		return 0, domain.ErrWorkoutNotFound
	}
	removed := s.removeEntries(func(we *domain.WorkoutExercise) bool { return we.WorkoutID == id })
	delete(s.Workouts, id)
	return removed, nil
}

// ListExercises returns the distinct exercises of a workout in order of first appearance
func (m *MockWorkoutRepository) ListExercises(ctx context.Context, workoutID int32) ([]*domain.Exercise, error) {
	if m.ListExercisesFn != nil {
		return m.ListExercisesFn(ctx, workoutID)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[int32]bool)
	result := make([]*domain.Exercise, 0)
	for _, we := range entriesOf(s, workoutID) {
		if seen[we.ExerciseID] {
			continue
		}
		seen[we.ExerciseID] = true
		if e, ok := s.Exercises[we.ExerciseID]; ok {
			c := *e
			result = append(result, &c)
		}
	}
	return result, nil
}

// MockWorkoutExerciseRepository is a mock implementation of domain.WorkoutExerciseRepository
type MockWorkoutExerciseRepository struct {
	store           *MemoryStore
	CreateFn        func(ctx context.Context, we *domain.WorkoutExercise) (*domain.WorkoutExercise, error)
	ListByWorkoutFn func(ctx context.Context, workoutID int32) ([]*domain.WorkoutEntry, error)
}

// NewMockWorkoutExerciseRepository creates a new MockWorkoutExerciseRepository
func NewMockWorkoutExerciseRepository(store *MemoryStore) *MockWorkoutExerciseRepository {
	return &MockWorkoutExerciseRepository{store: store}
}

// Create appends a workout exercise, enforcing parents and payload uniqueness
func (m *MockWorkoutExerciseRepository) Create(ctx context.Context, we *domain.WorkoutExercise) (*domain.WorkoutExercise, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, we)
	}
	if err := we.Validate(); err != nil {
		return nil, err
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Workouts[we.WorkoutID]; !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	if _, ok := s.Exercises[we.ExerciseID]; !ok {
		return nil, domain.ErrExerciseNotFound
	}

	var position int32
	for _, existing := range s.WorkoutExercises {
		if existing.SamePayload(we) {
			return nil, &domain.ConstraintViolation{
				Constraint: "uq_we_payload",
				Fields:     []string{"reps", "sets", "duration_seconds"},
				Message:    "this exercise is already recorded in the workout with the same payload",
			}
		}
		if existing.WorkoutID == we.WorkoutID && existing.Position > position {
			position = existing.Position
		}
	}

	created := *we
	created.ID = s.NextEntryID
	created.Position = position + 1
	s.NextEntryID++
	s.WorkoutExercises = append(s.WorkoutExercises, &created)
	c := created
	return &c, nil
}

// ListByWorkout returns the workout's rows joined with their exercises, in position order
func (m *MockWorkoutExerciseRepository) ListByWorkout(ctx context.Context, workoutID int32) ([]*domain.WorkoutEntry, error) {
	if m.ListByWorkoutFn != nil {
		return m.ListByWorkoutFn(ctx, workoutID)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := entriesOf(s, workoutID)
	result := make([]*domain.WorkoutEntry, 0, len(rows))
	for _, we := range rows {
		entry := &domain.WorkoutEntry{WorkoutExercise: *we}
		if e, ok := s.Exercises[we.ExerciseID]; ok {
			entry.Exercise = *e
		}
		result = append(result, entry)
	}
	return result, nil
}

// CountByWorkout counts the rows owned by a workout
func (m *MockWorkoutExerciseRepository) CountByWorkout(ctx context.Context, workoutID int32) (int64, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(entriesOf(s, workoutID))), nil
}

// CountByExercise counts the rows referencing an exercise
func (m *MockWorkoutExerciseRepository) CountByExercise(ctx context.Context, exerciseID int32) (int64, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, we := range s.WorkoutExercises {
		if we.ExerciseID == exerciseID {
			count++
		}
	}
	return count, nil
}

// entriesOf returns the workout's rows in position order; callers hold s.mu
func entriesOf(s *MemoryStore, workoutID int32) []*domain.WorkoutExercise {
	rows := make([]*domain.WorkoutExercise, 0)
	for _, we := range s.WorkoutExercises {
		if we.WorkoutID == workoutID {
			rows = append(rows, we)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	return rows
}

func sortWorkouts(list []*domain.Workout) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
}

// PublishedEvent records one event handed to MockEventPublisher
type PublishedEvent struct {
	Event websocket.Event
}

// MockEventPublisher captures published events for assertions
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{Event: event})
}

// Types returns the type of every published event in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Event.Type
	}
	return types
}

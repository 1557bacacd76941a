package animals

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"animals-safety/internal/messages"
	"animals-safety/internal/ports/notify"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	items     []Animal
	appendErr error
}

func (r *testRepo) Append(ctx context.Context, a Animal) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.items = append(r.items, a)
	return nil
}

func (r *testRepo) All(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Animal{}, ErrNotFound
}

func (r *testRepo) Len(ctx context.Context) (int, error) { return len(r.items), nil }

type recordingNotifier struct {
	got []notify.Notification
}

func (n *recordingNotifier) Notify(ctx context.Context, msg notify.Notification) {
	n.got = append(n.got, msg)
}

type recordingObserver struct {
	created  []int
	rejected []FailureKind
}

func (o *recordingObserver) AnimalCreated(total int)         { o.created = append(o.created, total) }
func (o *recordingObserver) AnimalRejected(kind FailureKind) { o.rejected = append(o.rejected, kind) }

func valid() CreateInput {
	return CreateInput{Name: "Milou", Breed: BreedDog, Age: "6", Weight: "23.2", Height: "42.4"}
}

// -------------------------
// Tests
// -------------------------

func TestTryCreate_Success_Milou(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	a, err := svc.TryCreate(context.Background(), valid())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.items) != 1 {
		t.Fatalf("expected 1 record, got %d", len(repo.items))
	}
	got := repo.items[0]
	if got.ID == "" || got.ID != a.ID {
		t.Fatalf("expected returned record to be stored, got %+v vs %+v", got, a)
	}
	if got.Name != "Milou" || got.Breed != BreedDog || got.Age != 6 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Weight != float32(23.2) || got.Height != float32(42.4) {
		t.Fatalf("unexpected measures: %+v", got)
	}
}

func TestTryCreate_ValidationOrder(t *testing.T) {
	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"empty name", CreateInput{Name: "", Age: "6", Weight: "1", Height: "1"}, ErrEmptyName},
		{"blank name", CreateInput{Name: " \t\n", Age: "6", Weight: "1", Height: "1"}, ErrEmptyName},
		{"empty name wins over bad age", CreateInput{Name: "", Age: "six", Weight: "x", Height: "x"}, ErrEmptyName},
		{"age word", CreateInput{Name: "Rex", Age: "six", Weight: "1", Height: "1"}, ErrInvalidAge},
		{"age decimal", CreateInput{Name: "Rex", Age: "3.5", Weight: "1", Height: "1"}, ErrInvalidAge},
		{"age empty", CreateInput{Name: "Rex", Age: "", Weight: "1", Height: "1"}, ErrInvalidAge},
		{"age with spaces", CreateInput{Name: "Rex", Age: " 3", Weight: "1", Height: "1"}, ErrInvalidAge},
		{"age overflow", CreateInput{Name: "Rex", Age: "3000000000", Weight: "1", Height: "1"}, ErrInvalidAge},
		{"bad age wins over bad weight", CreateInput{Name: "Rex", Age: "abc", Weight: "x", Height: "x"}, ErrInvalidAge},
		{"weight word", CreateInput{Name: "Rex", Age: "3", Weight: "heavy", Height: "1"}, ErrInvalidWeight},
		{"weight empty", CreateInput{Name: "Rex", Age: "3", Weight: "", Height: "1"}, ErrInvalidWeight},
		{"weight NaN", CreateInput{Name: "Rex", Age: "3", Weight: "NaN", Height: "1"}, ErrInvalidWeight},
		{"bad weight wins over bad height", CreateInput{Name: "Rex", Age: "3", Weight: "x", Height: "x"}, ErrInvalidWeight},
		{"height word", CreateInput{Name: "Rex", Age: "3", Weight: "1", Height: "tall"}, ErrInvalidHeight},
		{"height inf", CreateInput{Name: "Rex", Age: "3", Weight: "1", Height: "Inf"}, ErrInvalidHeight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &testRepo{}
			svc := NewService(repo)

			_, err := svc.TryCreate(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.items) != 0 {
				t.Fatalf("store must be untouched, got %d items", len(repo.items))
			}
		})
	}
}

func TestTryCreate_NoRangeChecks(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	a, err := svc.TryCreate(context.Background(), CreateInput{Name: "Odd", Breed: BreedCat, Age: "-2", Weight: "-1.5", Height: "0"})
	if err != nil {
		t.Fatalf("negative values are not rejected, got %v", err)
	}
	if a.Age != -2 || a.Weight != -1.5 || a.Height != 0 {
		t.Fatalf("unexpected record %+v", a)
	}
}

func TestTryCreate_MeasuresAllowSurroundingSpaces(t *testing.T) {
	svc := NewService(&testRepo{})

	a, err := svc.TryCreate(context.Background(), CreateInput{Name: "Rex", Age: "+4", Weight: " 12.5 ", Height: "30\n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Age != 4 || a.Weight != 12.5 || a.Height != 30 {
		t.Fatalf("unexpected record %+v", a)
	}
}

func TestTryCreate_MeasuresAcceptFloatSuffix(t *testing.T) {
	svc := NewService(&testRepo{})

	a, err := svc.TryCreate(context.Background(), CreateInput{Name: "Rex", Age: "4", Weight: "1.5f", Height: "30D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Weight != 1.5 || a.Height != 30 {
		t.Fatalf("unexpected record %+v", a)
	}

	for _, h := range []string{"f", "1.5ff", "Inff", "NaNd"} {
		if _, err := svc.TryCreate(context.Background(), CreateInput{Name: "Rex", Age: "4", Weight: "1", Height: h}); !errors.Is(err, ErrInvalidHeight) {
			t.Fatalf("height %q: expected ErrInvalidHeight, got %v", h, err)
		}
	}
}

func TestTryCreate_KeepsNameAsSubmitted(t *testing.T) {
	svc := NewService(&testRepo{})

	a, err := svc.TryCreate(context.Background(), CreateInput{Name: "  Milou ", Age: "1", Weight: "1", Height: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "  Milou " {
		t.Fatalf("expected name untouched, got %q", a.Name)
	}
}

func TestTryCreate_NotDeduplicated(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	a1, err := svc.TryCreate(context.Background(), valid())
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	a2, err := svc.TryCreate(context.Background(), valid())
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if a1.ID == a2.ID {
		t.Fatalf("expected distinct ids, got %s twice", a1.ID)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(repo.items))
	}
}

func TestTryCreate_IDsAreUniqueAcrossStore(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		a, err := svc.TryCreate(context.Background(), CreateInput{Name: fmt.Sprintf("a%d", i), Age: "1", Weight: "1", Height: "1"})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if _, dup := seen[a.ID]; dup {
			t.Fatalf("duplicate id %s", a.ID)
		}
		seen[a.ID] = struct{}{}
	}
}

func TestTryCreate_DefaultAndUnknownBreed(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	a, err := svc.TryCreate(context.Background(), CreateInput{Name: "Rex", Age: "1", Weight: "1", Height: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Breed != DefaultBreed() {
		t.Fatalf("expected default breed, got %s", a.Breed)
	}

	_, err = svc.TryCreate(context.Background(), CreateInput{Name: "Rex", Breed: "dragon", Age: "1", Weight: "1", Height: "1"})
	if !errors.Is(err, ErrUnknownBreed) {
		t.Fatalf("expected ErrUnknownBreed, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("unknown breed must not touch the store")
	}
}

func TestTryCreate_NotifiesFailureMessage(t *testing.T) {
	n := &recordingNotifier{}
	o := &recordingObserver{}
	svc := NewService(&testRepo{}, WithNotifier(n), WithObserver(o))

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := messages.WithLocale(context.Background(), "fr")
	_, _ = svc.TryCreate(ctx, CreateInput{Name: "Rex", Age: "six", Weight: "1", Height: "1"})

	if len(n.got) != 1 {
		t.Fatalf("expected one notification, got %d", len(n.got))
	}
	got := n.got[0]
	if got.Kind != string(KindInvalidAge) || !got.At.Equal(now) {
		t.Fatalf("unexpected notification %+v", got)
	}
	if got.Message != messages.ForLocale("fr").Lookup(messages.IssueInvalidAge) {
		t.Fatalf("expected french message, got %q", got.Message)
	}
	if len(o.rejected) != 1 || o.rejected[0] != KindInvalidAge {
		t.Fatalf("unexpected observer calls %+v", o.rejected)
	}
}

func TestTryCreate_SuccessDoesNotNotify(t *testing.T) {
	n := &recordingNotifier{}
	o := &recordingObserver{}
	svc := NewService(&testRepo{}, WithNotifier(n), WithObserver(o))

	if _, err := svc.TryCreate(context.Background(), valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.got) != 0 {
		t.Fatalf("success must not notify")
	}
	if len(o.created) != 1 || o.created[0] != 1 {
		t.Fatalf("unexpected observer calls %+v", o.created)
	}
}

func TestTryCreate_RepoErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&testRepo{appendErr: boom})

	_, err := svc.TryCreate(context.Background(), valid())
	if !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
	if IsValidationError(err) {
		t.Fatalf("repo error is not a validation error")
	}
}

func TestMessage_DefaultLocale(t *testing.T) {
	svc := NewService(&testRepo{}, WithDefaultLocale("fr"))

	got := svc.Message(context.Background(), ErrEmptyName)
	if got != "Le nom ne doit pas être vide" {
		t.Fatalf("unexpected message %q", got)
	}

	// Locale no soportado en el request => default del servicio.
	got = svc.Message(messages.WithLocale(context.Background(), "de"), ErrInvalidHeight)
	if got != messages.ForLocale("fr").Lookup(messages.IssueInvalidHeight) {
		t.Fatalf("unexpected message %q", got)
	}

	if got := svc.Message(context.Background(), ErrUnknownBreed); got != "unknown breed" {
		t.Fatalf("non validation errors use their text, got %q", got)
	}
}

func TestCatalog_FallsBackToServiceLocale(t *testing.T) {
	svc := NewService(&testRepo{}, WithDefaultLocale("fr"))

	if got := svc.Catalog(context.Background()).Lookup("breed_dog"); got != "Chien" {
		t.Fatalf("expected service locale, got %q", got)
	}
	ctx := messages.WithLocale(context.Background(), "en-GB")
	if got := svc.Catalog(ctx).Lookup("breed_dog"); got != "Dog" {
		t.Fatalf("expected request locale, got %q", got)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("form: %w", ErrInvalidWeight)
	if KindOf(wrapped) != KindInvalidWeight {
		t.Fatalf("expected invalid_weight, got %q", KindOf(wrapped))
	}
	if KindOf(errors.New("x")) != "" {
		t.Fatalf("expected empty kind")
	}
}

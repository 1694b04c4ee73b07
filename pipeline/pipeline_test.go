package pipeline

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func trimFilter() Filter[string, string] {
	return Transform(func(_ context.Context, s string) (string, error) {
		return strings.TrimSpace(s), nil
	})
}

func digitsFilter() Filter[string, string] {
	return Predicate(func(s string) bool {
		if s == "" {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

func atoiFilter() Filter[string, int] {
	return Transform(func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
}

func TestNew_EmptyPipelineIsIdentity(t *testing.T) {
	in := []string{"a", "b", "c"}
	p := New[string]()
	if p.Len() != 0 {
		t.Errorf("expected 0 filters, got %d", p.Len())
	}
	got, err := p.Execute(context.Background(), FromSlice(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("identity law violated (-want +got):\n%s", diff)
	}
}

func TestAttach_ReturnsReceiver(t *testing.T) {
	p := New[string]()
	if p.Attach(trimFilter()) != p {
		t.Error("Attach should return the receiver")
	}
	p.Attach(digitsFilter()).Attach(digitsFilter())
	if p.Len() != 3 {
		t.Errorf("expected 3 filters, got %d", p.Len())
	}
}

func TestAttach_OrderIsApplicationOrder(t *testing.T) {
	// digitsFilter before trimFilter drops everything still padded.
	p := New[string]().Attach(digitsFilter()).Attach(trimFilter())
	got, err := p.Execute(context.Background(), FromSlice([]string{" 12 ", "34"}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"34"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_MatchesDirectComposition(t *testing.T) {
	in := []string{" 12 ", " x ", "34"}

	p := New[string]().Attach(trimFilter()).Attach(digitsFilter())
	got, err := p.Execute(context.Background(), FromSlice(in))
	if err != nil {
		t.Fatal(err)
	}

	direct, err := Collect(context.Background(), digitsFilter()(trimFilter()(FromSlice(in))))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(direct, got); diff != "" {
		t.Errorf("composition law violated (-direct +pipeline):\n%s", diff)
	}
}

func TestAttach_CrossType(t *testing.T) {
	strs := New[string]().Attach(trimFilter()).Attach(digitsFilter())
	nums := Attach(strs, atoiFilter())
	if nums.Len() != 3 {
		t.Errorf("expected 3 filters, got %d", nums.Len())
	}

	got, err := nums.Execute(context.Background(), FromSlice([]string{" 12 ", "abc", " 34 "}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{12, 34}, got); diff != "" {
		t.Errorf("cross-type mismatch (-want +got):\n%s", diff)
	}
}

func TestAttach_DerivedPipelineUnaffectedByLaterAttach(t *testing.T) {
	base := New[string]().Attach(trimFilter())
	nums := Attach(base, atoiFilter())
	base.Attach(digitsFilter())

	if nums.Len() != 2 {
		t.Errorf("derived pipeline grew with its parent: got %d filters", nums.Len())
	}
	got, err := nums.Execute(context.Background(), FromSlice([]string{" 7 "}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("got %v, want [7]", got)
	}
}

func TestExecute_ReusableAcrossFreshInputs(t *testing.T) {
	p := New[string]().Attach(trimFilter())

	first, err := p.Execute(context.Background(), FromSlice([]string{" a "}))
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Execute(context.Background(), FromSlice([]string{" b ", " c "}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a"}, first); diff != "" {
		t.Errorf("first run (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "c"}, second); diff != "" {
		t.Errorf("second run (-want +got):\n%s", diff)
	}
}

func TestExecute_DrainedInputYieldsEmpty(t *testing.T) {
	p := New[string]().Attach(trimFilter())
	in := FromSlice([]string{" a ", " b "})

	first, err := p.Execute(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 2 {
		t.Fatalf("first run got %v", first)
	}

	second, err := p.Execute(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 0 {
		t.Errorf("drained input should yield empty result, got %v", second)
	}
}

func TestPredicate_Idempotent(t *testing.T) {
	gt10 := Predicate(func(n int) bool { return n > 10 })
	in := []int{5, 11, 20, 3, 42}

	once, err := Collect(context.Background(), gt10(FromSlice(in)))
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Collect(context.Background(), gt10(gt10(FromSlice(in))))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("predicate not idempotent (-once +twice):\n%s", diff)
	}
}

func TestExecute_ErrorPropagatesVerbatim(t *testing.T) {
	sentinel := errors.New("boom")
	failing := Transform(func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", sentinel
		}
		return s, nil
	})

	p := New[string]().Attach(failing)
	got, err := p.Execute(context.Background(), FromSlice([]string{"ok", "bad", "never"}))
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no partial result, got %v", got)
	}
}

// countingIter records how many elements have been pulled from it.
type countingIter[T any] struct {
	source Iterator[T]
	pulls  int
}

func (it *countingIter[T]) Next(ctx context.Context) (T, bool, error) {
	it.pulls++
	return it.source.Next(ctx)
}

func (it *countingIter[T]) Close() error { return it.source.Close() }

func TestProcess_Lazy(t *testing.T) {
	src := &countingIter[string]{source: FromSlice([]string{" a ", " b ", " c "})}
	p := New[string]().Attach(trimFilter()).Attach(trimFilter())

	out := p.Process(src)
	if src.pulls != 0 {
		t.Fatalf("Process pulled %d elements before the caller asked", src.pulls)
	}

	for want := 1; want <= 3; want++ {
		if _, ok, err := out.Next(context.Background()); err != nil || !ok {
			t.Fatalf("Next() failed on element %d: (%v, %v)", want, ok, err)
		}
		if src.pulls != want {
			t.Errorf("after %d downstream pulls the source saw %d, want %d", want, src.pulls, want)
		}
	}
}

func TestProcess_LazyWithPredicateSkips(t *testing.T) {
	// A predicate pulls upstream until a match, but never past one.
	src := &countingIter[int]{source: FromSlice([]int{1, 12, 2, 3, 20})}
	p := New[int]().Attach(Predicate(func(n int) bool { return n > 10 }))

	out := p.Process(src)
	if v, ok, _ := out.Next(context.Background()); !ok || v != 12 {
		t.Fatalf("got (%v, %v), want (12, true)", v, ok)
	}
	if src.pulls != 2 {
		t.Errorf("source saw %d pulls, want 2", src.pulls)
	}
	if v, ok, _ := out.Next(context.Background()); !ok || v != 20 {
		t.Fatalf("got (%v, %v), want (20, true)", v, ok)
	}
	if src.pulls != 5 {
		t.Errorf("source saw %d pulls, want 5", src.pulls)
	}
}

func TestNewWith(t *testing.T) {
	p := NewWith(trimFilter(), digitsFilter())
	if p.Len() != 2 {
		t.Errorf("expected 2 filters, got %d", p.Len())
	}
	got, err := p.Execute(context.Background(), FromSlice([]string{"  123  ", "  abc  ", "  456  "}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"123", "456"}, got); diff != "" {
		t.Errorf("NewWith mismatch (-want +got):\n%s", diff)
	}
}

func TestTap_SeesValuesInOrder(t *testing.T) {
	var seen []int
	tap := Tap(func(_ context.Context, n int) error {
		seen = append(seen, n)
		return nil
	})
	got, err := New[int]().Attach(tap).Execute(context.Background(), FromSlice([]int{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("Tap altered values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, seen); diff != "" {
		t.Errorf("Tap side-effect order (-want +got):\n%s", diff)
	}
}

func TestForEach(t *testing.T) {
	var sum int
	err := ForEach(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		sum += n
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestFromFunc(t *testing.T) {
	n := 0
	closed := false
	it := FromFunc(func(_ context.Context) (int, bool, error) {
		if n >= 3 {
			return 0, false, nil
		}
		n++
		return n, true, nil
	}, func() error {
		closed = true
		return nil
	})

	got, err := Collect(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("FromFunc mismatch (-want +got):\n%s", diff)
	}
	if !closed {
		t.Error("Collect should close the iterator")
	}
}

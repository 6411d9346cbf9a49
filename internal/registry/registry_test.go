package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type fixedSource struct {
	name string
	dir  snake.Direction
}

func (f fixedSource) Name() string { return f.name }

func (f fixedSource) Decide(snake.View) snake.Intent {
	return snake.MoveIntent(f.dir)
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-fixed", "always goes up", func(Env) (DecisionSource, error) {
		return fixedSource{name: "test-fixed", dir: snake.Up}, nil
	})

	if !Exists("test-fixed") {
		t.Fatal("registered policy not found")
	}

	src, err := Create("test-fixed", Env{Seed: 1})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if src.Name() != "test-fixed" {
		t.Errorf("Name() = %q", src.Name())
	}
	if in := src.Decide(snake.View{}); in != snake.MoveIntent(snake.Up) {
		t.Errorf("Decide() = %v", in)
	}

	found := false
	for _, info := range List() {
		if info.Name == "test-fixed" {
			found = true
			if info.Description != "always goes up" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered policy")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-policy", Env{})
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("Create(unknown) error = %v, want ErrUnknownPolicy", err)
	}
	if Exists("no-such-policy") {
		t.Error("Exists() true for unknown policy")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-broken", "fails to build", func(Env) (DecisionSource, error) {
		return nil, boom
	})

	if _, err := Create("test-broken", Env{}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, want wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "", func(Env) (DecisionSource, error) { return fixedSource{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "", func(Env) (DecisionSource, error) { return fixedSource{}, nil })
}

func TestListSorted(t *testing.T) {
	Register("test-b", "", func(Env) (DecisionSource, error) { return fixedSource{}, nil })
	Register("test-a", "", func(Env) (DecisionSource, error) { return fixedSource{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}

func TestEnvDefaults(t *testing.T) {
	var env Env
	if env.Log() == nil {
		t.Error("Log() must never be nil")
	}
	a, b := Env{Seed: 9}.Rand(), Env{Seed: 9}.Rand()
	if a.Int63() != b.Int63() {
		t.Error("same seed should give the same sequence")
	}
}

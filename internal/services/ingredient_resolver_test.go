package services

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type fakeFactRepo struct {
	facts []*types.IngredientFact

	getByNamesCalls int
	listAllCalls    int
}

func (f *fakeFactRepo) Upsert(dbc dbctx.Context, row *types.IngredientFact) error { return nil }

func (f *fakeFactRepo) ListAll(dbc dbctx.Context) ([]*types.IngredientFact, error) {
	f.listAllCalls++
	return f.facts, nil
}

func (f *fakeFactRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.IngredientFact, error) {
	f.getByNamesCalls++
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}
	out := []*types.IngredientFact{}
	for _, fact := range f.facts {
		if wanted[normalizeName(fact.Name)] {
			out = append(out, fact)
		}
	}
	return out, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	logg, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return logg
}

func catalogFixture() []*types.IngredientFact {
	return []*types.IngredientFact{
		{
			Name:    "Niacinamide",
			Aliases: datatypes.JSONSlice[string]{"Vitamin B3", "Nicotinamide"},
		},
		{
			Name:    "Retinol",
			Aliases: datatypes.JSONSlice[string]{"Vitamin A"},
		},
	}
}

func TestIngredientResolver_ExactMatchSkipsAliasScan(t *testing.T) {
	repo := &fakeFactRepo{facts: catalogFixture()}
	r := NewIngredientResolver(nil, testLogger(t), repo)

	got, err := r.Resolve(context.Background(), []string{"  NIACINAMIDE ", "retinol"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if got["niacinamide"] == nil || got["niacinamide"].Name != "Niacinamide" {
		t.Fatalf("niacinamide not resolved: %+v", got["niacinamide"])
	}
	if got["retinol"] == nil || got["retinol"].Name != "Retinol" {
		t.Fatalf("retinol not resolved: %+v", got["retinol"])
	}
	if repo.getByNamesCalls != 1 {
		t.Fatalf("getByNames calls = %d", repo.getByNamesCalls)
	}
	if repo.listAllCalls != 0 {
		t.Fatalf("alias scan ran despite full exact match: %d calls", repo.listAllCalls)
	}
}

func TestIngredientResolver_AliasFallback(t *testing.T) {
	repo := &fakeFactRepo{facts: catalogFixture()}
	r := NewIngredientResolver(nil, testLogger(t), repo)

	got, err := r.Resolve(context.Background(), []string{"Vitamin B3", "Retinol", "unicorn tears"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if got["vitamin b3"] == nil || got["vitamin b3"].Name != "Niacinamide" {
		t.Fatalf("alias not resolved: %+v", got["vitamin b3"])
	}
	if got["retinol"] == nil {
		t.Fatal("exact name lost in fallback")
	}
	if got["unicorn tears"] != nil {
		t.Fatalf("unknown name resolved: %+v", got["unicorn tears"])
	}
	if repo.listAllCalls != 1 {
		t.Fatalf("listAll calls = %d", repo.listAllCalls)
	}
}

func TestIngredientResolver_EmptyInput(t *testing.T) {
	repo := &fakeFactRepo{}
	r := NewIngredientResolver(nil, testLogger(t), repo)

	got, err := r.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries for empty input", len(got))
	}
	if repo.getByNamesCalls != 0 || repo.listAllCalls != 0 {
		t.Fatal("repo touched for empty input")
	}
}

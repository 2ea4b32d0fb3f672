package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/services"
)

type stubRecipeService struct {
	recipe *types.Recipe
	err    error
}

func (s *stubRecipeService) ListOriginals(ctx context.Context, search string) ([]*types.Recipe, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*types.Recipe{s.recipe}, nil
}

func (s *stubRecipeService) GetByID(ctx context.Context, id int) (*types.Recipe, error) {
	return s.recipe, s.err
}

type stubVariantService struct {
	recipe *types.Recipe
	err    error
	names  []string
}

func (s *stubVariantService) GetPreferredRecipe(ctx context.Context, recipeID int, preferenceNames []string) (*types.Recipe, error) {
	s.names = preferenceNames
	return s.recipe, s.err
}

func newTestRouter(svc services.RecipeService, variants services.RecipeVariantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRecipeHandler(svc, variants)
	r.GET("/api/recipes/:id", h.GetRecipe)
	r.POST("/api/recipes/:id/preferred", h.GetPreferredRecipe)
	return r
}

func TestGetPreferredRecipeOK(t *testing.T) {
	variants := &stubVariantService{recipe: &types.Recipe{ID: 10, Title: "Stew (vegan)"}}
	r := newTestRouter(&stubRecipeService{}, variants)

	body := strings.NewReader(`{"preferences": ["vegan"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/1/preferred", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(variants.names) != 1 || variants.names[0] != "vegan" {
		t.Fatalf("handler passed wrong preferences: %v", variants.names)
	}

	var payload struct {
		Recipe types.Recipe `json:"recipe"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Recipe.ID != 10 {
		t.Fatalf("unexpected recipe in response: %+v", payload.Recipe)
	}
}

func TestGetPreferredRecipeErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", services.ErrRecipeNotFound, http.StatusNotFound, "recipe_not_found"},
		{"generation failed", &services.GenerationError{Err: errors.New("bad model output")}, http.StatusBadGateway, "generation_failed"},
		{"persistence failed", &services.PersistenceError{Err: errors.New("tx aborted")}, http.StatusInternalServerError, "persistence_failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubRecipeService{}, &stubVariantService{err: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/recipes/1/preferred", strings.NewReader(`{"preferences": []}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.wantCode) {
				t.Fatalf("expected code %q in body: %s", tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestGetPreferredRecipeRejectsBadInput(t *testing.T) {
	r := newTestRouter(&stubRecipeService{}, &stubVariantService{})

	// Non-numeric id.
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/abc/preferred", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}

	// Malformed body.
	req = httptest.NewRequest(http.MethodPost, "/api/recipes/1/preferred", strings.NewReader(`{"preferences": "vegan"}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	svc := &stubRecipeService{err: services.ErrRecipeNotFound}
	r := newTestRouter(svc, &stubVariantService{})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

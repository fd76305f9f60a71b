package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/rental-system/internal/core/domain"
	"github.com/moviehub/rental-system/internal/core/ports"
)

type stubRentalService struct {
	addFn    func(ctx context.Context, caller ports.Caller, input ports.AddMovieInput) (*ports.MovieSummary, error)
	editFn   func(ctx context.Context, caller ports.Caller, input ports.EditMovieInput) (*ports.MovieSummary, error)
	removeFn func(ctx context.Context, caller ports.Caller, title string) error
	rentFn   func(ctx context.Context, caller ports.Caller, title string, days int) (*ports.RentalQuote, error)
	buyFn    func(ctx context.Context, caller ports.Caller, title string) (*ports.PurchaseResult, error)
	listFn   func(ctx context.Context, caller ports.Caller) ([]ports.MovieSummary, error)
}

func (s *stubRentalService) AddMovie(ctx context.Context, caller ports.Caller, input ports.AddMovieInput) (*ports.MovieSummary, error) {
	return s.addFn(ctx, caller, input)
}

func (s *stubRentalService) EditMovie(ctx context.Context, caller ports.Caller, input ports.EditMovieInput) (*ports.MovieSummary, error) {
	return s.editFn(ctx, caller, input)
}

func (s *stubRentalService) RemoveMovie(ctx context.Context, caller ports.Caller, title string) error {
	return s.removeFn(ctx, caller, title)
}

func (s *stubRentalService) RentMovie(ctx context.Context, caller ports.Caller, title string, days int) (*ports.RentalQuote, error) {
	return s.rentFn(ctx, caller, title, days)
}

func (s *stubRentalService) BuyMovie(ctx context.Context, caller ports.Caller, title string) (*ports.PurchaseResult, error) {
	return s.buyFn(ctx, caller, title)
}

func (s *stubRentalService) ListMovies(ctx context.Context, caller ports.Caller) ([]ports.MovieSummary, error) {
	return s.listFn(ctx, caller)
}

func asAdmin(c echo.Context) {
	c.Set("email", "root@admin.com")
	c.Set("role", domain.RoleAdmin)
}

func TestMovieHandler_Add_Success(t *testing.T) {
	stub := &stubRentalService{
		addFn: func(_ context.Context, caller ports.Caller, input ports.AddMovieInput) (*ports.MovieSummary, error) {
			if caller.Email != "root@admin.com" {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			if input.Title != "Inception" || input.Price != 5 || input.Rating != 9 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.MovieSummary{Title: input.Title, Price: input.Price, Rating: input.Rating}, nil
		},
	}
	handler := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/movies", `{"title":"Inception","price":5,"rating":9}`)
	asAdmin(c)

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "Inception" || resp["purchased"] != false {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMovieHandler_Add_DomainErrorsPassThrough(t *testing.T) {
	for _, want := range []error{domain.ErrDuplicateTitle, domain.ErrInvalidRating, domain.ErrAdminRequired} {
		stub := &stubRentalService{
			addFn: func(context.Context, ports.Caller, ports.AddMovieInput) (*ports.MovieSummary, error) {
				return nil, want
			},
		}
		handler := NewMovieHandler(stub)

		c, _ := newTestContext(t, http.MethodPost, "/v1/movies", `{"title":"Inception","price":5,"rating":9}`)
		asAdmin(c)

		if err := handler.Add(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestMovieHandler_Add_MissingClaims(t *testing.T) {
	stub := &stubRentalService{
		addFn: func(context.Context, ports.Caller, ports.AddMovieInput) (*ports.MovieSummary, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/movies", `{"title":"Inception","price":5,"rating":9}`)
	err := handler.Add(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMovieHandler_Rent_Success(t *testing.T) {
	stub := &stubRentalService{
		rentFn: func(_ context.Context, _ ports.Caller, title string, days int) (*ports.RentalQuote, error) {
			if title != "Inception" || days != 3 {
				t.Fatalf("unexpected args: %s %d", title, days)
			}
			return &ports.RentalQuote{Title: title, Days: days, TotalCost: 15}, nil
		},
	}
	handler := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/movies/Inception/rent", `{"days":3}`)
	c.SetParamNames("title")
	c.SetParamValues("Inception")
	asAdmin(c)

	if err := handler.Rent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_cost"] != float64(15) {
		t.Fatalf("expected total_cost 15, got %v", resp["total_cost"])
	}
}

func TestMovieHandler_Rent_InvalidDays(t *testing.T) {
	stub := &stubRentalService{
		rentFn: func(context.Context, ports.Caller, string, int) (*ports.RentalQuote, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/movies/Inception/rent", `{"days":0}`)
	c.SetParamNames("title")
	c.SetParamValues("Inception")
	asAdmin(c)

	err := handler.Rent(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMovieHandler_Buy_Success(t *testing.T) {
	stub := &stubRentalService{
		buyFn: func(_ context.Context, _ ports.Caller, title string) (*ports.PurchaseResult, error) {
			return &ports.PurchaseResult{Title: title, Price: 7}, nil
		},
	}
	handler := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/movies/Heat/buy", "")
	c.SetParamNames("title")
	c.SetParamValues("Heat")
	asAdmin(c)

	if err := handler.Buy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMovieHandler_Buy_AlreadyPurchased(t *testing.T) {
	stub := &stubRentalService{
		buyFn: func(context.Context, ports.Caller, string) (*ports.PurchaseResult, error) {
			return nil, domain.ErrAlreadyPurchased
		},
	}
	handler := NewMovieHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/movies/Heat/buy", "")
	c.SetParamNames("title")
	c.SetParamValues("Heat")
	asAdmin(c)

	if err := handler.Buy(c); !errors.Is(err, domain.ErrAlreadyPurchased) {
		t.Fatalf("expected ErrAlreadyPurchased, got %v", err)
	}
}

func TestMovieHandler_List_Empty(t *testing.T) {
	stub := &stubRentalService{
		listFn: func(context.Context, ports.Caller) ([]ports.MovieSummary, error) {
			return nil, domain.ErrNoMovies
		},
	}
	handler := NewMovieHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/movies", "")
	asAdmin(c)

	if err := handler.List(c); !errors.Is(err, domain.ErrNoMovies) {
		t.Fatalf("expected ErrNoMovies, got %v", err)
	}
}

func TestMovieHandler_Remove_Success(t *testing.T) {
	removed := ""
	stub := &stubRentalService{
		removeFn: func(_ context.Context, _ ports.Caller, title string) error {
			removed = title
			return nil
		},
	}
	handler := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/movies/Alien", "")
	c.SetParamNames("title")
	c.SetParamValues("Alien")
	asAdmin(c)

	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if removed != "Alien" {
		t.Fatalf("expected Alien removed, got %q", removed)
	}
}

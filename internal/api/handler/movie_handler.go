package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/rental-system/internal/api/metrics"
	"github.com/moviehub/rental-system/internal/core/ports"
)

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	service ports.RentalService
}

func NewMovieHandler(service ports.RentalService) *MovieHandler {
	return &MovieHandler{service: service}
}

// Add handles POST /v1/movies.
//
// @Summary      Add a movie to the catalog
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addMovieRequest  true  "Movie details"
// @Success      201   {object}  movieResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/movies [post]
func (h *MovieHandler) Add(c echo.Context) error {
	var req addMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	movie, err := h.service.AddMovie(c.Request().Context(), caller, ports.AddMovieInput{
		Title:  req.Title,
		Price:  req.Price,
		Rating: req.Rating,
	})
	if err != nil {
		return err
	}

	metrics.MoviesAddedTotal.Inc()
	return c.JSON(http.StatusCreated, toMovieResponse(*movie))
}

// List handles GET /v1/movies.
//
// @Summary      List the movie catalog
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listMoviesResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	movies, err := h.service.ListMovies(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	resp := listMoviesResponse{Movies: make([]movieResponse, 0, len(movies)), Total: len(movies)}
	for _, m := range movies {
		resp.Movies = append(resp.Movies, toMovieResponse(m))
	}
	return c.JSON(http.StatusOK, resp)
}

// Edit handles PUT /v1/movies/:title.
//
// @Summary      Edit a movie's price and rating
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string            true  "Movie title"
// @Param        body   body      editMovieRequest  true  "New price and rating"
// @Success      200    {object}  movieResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/movies/{title} [put]
func (h *MovieHandler) Edit(c echo.Context) error {
	var req editMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	movie, err := h.service.EditMovie(c.Request().Context(), caller, ports.EditMovieInput{
		Title:  c.Param("title"),
		Price:  req.Price,
		Rating: req.Rating,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMovieResponse(*movie))
}

// Remove handles DELETE /v1/movies/:title.
//
// @Summary      Remove a movie from the catalog
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string  true  "Movie title"
// @Success      200    {object}  removeMovieResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/movies/{title} [delete]
func (h *MovieHandler) Remove(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	title := c.Param("title")
	if err := h.service.RemoveMovie(c.Request().Context(), caller, title); err != nil {
		return err
	}

	metrics.MoviesRemovedTotal.Inc()
	return c.JSON(http.StatusOK, removeMovieResponse{
		Title:   title,
		Message: fmt.Sprintf("Movie %q removed successfully.", title),
	})
}

// Rent handles POST /v1/movies/:title/rent.
//
// @Summary      Rent a movie for a number of days
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string            true  "Movie title"
// @Param        body   body      rentMovieRequest  true  "Rental duration"
// @Success      200    {object}  rentMovieResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/movies/{title}/rent [post]
func (h *MovieHandler) Rent(c echo.Context) error {
	var req rentMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	quote, err := h.service.RentMovie(c.Request().Context(), caller, c.Param("title"), req.Days)
	if err != nil {
		return err
	}

	metrics.RentalsTotal.Inc()
	return c.JSON(http.StatusOK, rentMovieResponse{
		Title:     quote.Title,
		Days:      quote.Days,
		TotalCost: quote.TotalCost,
		Message: fmt.Sprintf("You have successfully rented %q for %d days. Total cost: $%d.",
			quote.Title, quote.Days, quote.TotalCost),
	})
}

// Buy handles POST /v1/movies/:title/buy.
//
// @Summary      Buy a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string  true  "Movie title"
// @Success      200    {object}  buyMovieResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      409    {object}  errorResponse
// @Router       /v1/movies/{title}/buy [post]
func (h *MovieHandler) Buy(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	result, err := h.service.BuyMovie(c.Request().Context(), caller, c.Param("title"))
	if err != nil {
		return err
	}

	metrics.PurchasesTotal.Inc()
	return c.JSON(http.StatusOK, buyMovieResponse{
		Title:   result.Title,
		Price:   result.Price,
		Message: fmt.Sprintf("You have successfully purchased %q for $%d.", result.Title, result.Price),
	})
}

func toMovieResponse(m ports.MovieSummary) movieResponse {
	return movieResponse{
		Title:     m.Title,
		Price:     m.Price,
		Rating:    m.Rating,
		Purchased: m.Purchased,
	}
}

package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviehub/rental-system/internal/core/domain"
)

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

type movieDoc struct {
	Title     string `bson:"_id"`
	Price     int64  `bson:"price"`
	Rating    int    `bson:"rating"`
	Purchased bool   `bson:"purchased"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

// Create inserts a new catalog entry. The title is the document key, so a
// duplicate insert surfaces as a duplicate key error.
func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, movieToDoc(movie)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc movieDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": title}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return docToMovie(doc), nil
}

// Update overwrites the mutable fields of an existing movie in place.
func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": movie.Title},
		bson.M{"$set": bson.M{
			"price":      movie.Price,
			"rating":     movie.Rating,
			"purchased":  movie.Purchased,
			"updated_at": movie.UpdatedAt.Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, title string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": title})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// List returns the whole catalog ordered by title.
func (r *MovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Movie
	for cur.Next(ctx) {
		var doc movieDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		out = append(out, docToMovie(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return out, nil
}

func movieToDoc(m *domain.Movie) movieDoc {
	return movieDoc{
		Title:     m.Title,
		Price:     m.Price,
		Rating:    m.Rating,
		Purchased: m.Purchased,
		CreatedAt: m.CreatedAt.Unix(),
		UpdatedAt: m.UpdatedAt.Unix(),
	}
}

func docToMovie(doc movieDoc) *domain.Movie {
	return &domain.Movie{
		Title:     doc.Title,
		Price:     doc.Price,
		Rating:    doc.Rating,
		Purchased: doc.Purchased,
		CreatedAt: unixToTime(doc.CreatedAt),
		UpdatedAt: unixToTime(doc.UpdatedAt),
	}
}

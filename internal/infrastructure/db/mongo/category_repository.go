package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

const categoryCollection = "categories"

type CategoryRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{db: db, coll: db.Collection(categoryCollection)}
}

type mongoCategory struct {
	ID   int    `bson:"_id"`
	Name string `bson:"name"`
	Slug string `bson:"slug"`
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	id, err := nextID(ctx, r.db, categoryCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoCategory{ID: id, Name: c.Name, Slug: c.Slug}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	return &domain.Category{ID: id, Name: c.Name, Slug: c.Slug}, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []domain.Category{}
	for cursor.Next(ctx) {
		var mc mongoCategory
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, domain.Category{ID: mc.ID, Name: mc.Name, Slug: mc.Slug})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("category")
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	return &domain.Category{ID: mc.ID, Name: mc.Name, Slug: mc.Slug}, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, mongoCategory{ID: c.ID, Name: c.Name, Slug: c.Slug})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.NotFound("category")
	}

	clone := *c
	return &clone, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("category")
	}
	return nil
}

package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

const productCollection = "products"

type ProductRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{db: db, coll: db.Collection(productCollection)}
}

type mongoProduct struct {
	ID         int    `bson:"_id"`
	Name       string `bson:"name"`
	ImageURL   string `bson:"image_url"`
	Price      int    `bson:"price"`
	Stock      int    `bson:"stock"`
	Slug       string `bson:"slug"`
	CategoryID int    `bson:"category_id"`
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	id, err := nextID(ctx, r.db, productCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoProduct(p)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	for cursor.Next(ctx) {
		var mp mongoProduct
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("product")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product := mp.toDomain()
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, toMongoProduct(p))
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.NotFound("product")
	}

	clone := *p
	return &clone, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("product")
	}
	return nil
}

func toMongoProduct(p *domain.Product) mongoProduct {
	return mongoProduct{
		ID:         p.ID,
		Name:       p.Name,
		ImageURL:   p.ImageURL,
		Price:      p.Price,
		Stock:      p.Stock,
		Slug:       p.Slug,
		CategoryID: p.CategoryID,
	}
}

func (m mongoProduct) toDomain() domain.Product {
	return domain.Product{
		ID:         m.ID,
		Name:       m.Name,
		ImageURL:   m.ImageURL,
		Price:      m.Price,
		Stock:      m.Stock,
		Slug:       m.Slug,
		CategoryID: m.CategoryID,
	}
}

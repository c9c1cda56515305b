package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

const galleryCollection = "gallery"

// GalleryRepository persists portfolio images.
type GalleryRepository struct {
	coll *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{coll: db.Collection(galleryCollection)}
}

func (r *GalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.GalleryItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode gallery: %w", err)
	}
	return items, nil
}

func (r *GalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("insert gallery item: %w", err)
	}
	return item, nil
}

func (r *GalleryRepository) Update(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":     item.Title,
		"image_url": item.ImageURL,
		"category":  item.Category,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": item.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update gallery item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGalleryItemNotFound
	}

	var updated domain.GalleryItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": item.ID}).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("find gallery item: %w", err)
	}
	return &updated, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGalleryItemNotFound
	}
	return nil
}

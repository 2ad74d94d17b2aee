package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yourplaces/places-api/internal/core/domain"
)

const collectionPlaces = "places"

type PlaceRepository struct {
	coll *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) *PlaceRepository {
	return &PlaceRepository{coll: db.Collection(collectionPlaces)}
}

type placeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Address     string             `bson:"address"`
	Location    domain.Location    `bson:"location"`
	Image       string             `bson:"image,omitempty"`
	Creator     primitive.ObjectID `bson:"creator"`
}

func (d placeDoc) toDomain() *domain.Place {
	return &domain.Place{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Address:     d.Address,
		Location:    d.Location,
		Image:       d.Image,
		OwnerID:     d.Creator.Hex(),
	}
}

func (r *PlaceRepository) Insert(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	owner, err := primitive.ObjectIDFromHex(place.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := placeDoc{
		Title:       place.Title,
		Description: place.Description,
		Address:     place.Address,
		Location:    place.Location,
		Image:       place.Image,
		Creator:     owner,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert place: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	var doc placeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PlaceRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		// A malformed id matches nothing; an empty list is not an error.
		return []domain.Place{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"creator": oid})
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer cursor.Close(ctx)

	places := []domain.Place{}
	for cursor.Next(ctx) {
		var doc placeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode place: %w", err)
		}
		places = append(places, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return places, nil
}

func (r *PlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	oid, err := primitive.ObjectIDFromHex(place.ID)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       place.Title,
		"description": place.Description,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by the list-by-user endpoint.
func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creator", Value: 1}},
	})
	return err
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cafe/internal/core/model"
)

type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	// Update applies the non-empty fields of update and returns the stored
	// item afterwards, or nil when id does not exist.
	Update(ctx context.Context, id primitive.ObjectID, update model.MenuUpdate) (*model.MenuItem, error)
	// Delete removes the item and returns what was removed, or nil when id
	// does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error)
	FindAll(ctx context.Context) ([]*model.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	// Replace drops every item and inserts items in their place.
	Replace(ctx context.Context, items []*model.MenuItem) error
}

type MongoMenuRepository struct {
	collection *mongo.Collection
}

func NewMongoMenuRepository(db *mongo.Database) *MongoMenuRepository {
	return &MongoMenuRepository{
		collection: db.Collection("menus"),
	}
}

func (r *MongoMenuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func menuUpdateDoc(update model.MenuUpdate) bson.D {
	set := bson.D{}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *update.Price})
	}
	if update.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *update.Category})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Image != "" {
		set = append(set, bson.E{Key: "image", Value: update.Image})
	}
	return set
}

func (r *MongoMenuRepository) Update(ctx context.Context, id primitive.ObjectID, update model.MenuUpdate) (*model.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var item model.MenuItem
	set := menuUpdateDoc(update)
	var err error
	if len(set) == 0 {
		err = r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&item)
	}
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoMenuRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var item model.MenuItem
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoMenuRepository) FindAll(ctx context.Context) ([]*model.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*model.MenuItem{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoMenuRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoMenuRepository) Replace(ctx context.Context, items []*model.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

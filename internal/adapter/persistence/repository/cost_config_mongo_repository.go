package repository

import (
	"context"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type costConfigDoc struct {
	ID               string    `bson:"_id"`
	Category         string    `bson:"category"`
	ItemType         string    `bson:"itemType"`
	BasePrice        float64   `bson:"basePrice"`
	Unit             string    `bson:"unit"`
	LaborCostPerUnit float64   `bson:"laborCostPerUnit"`
	IsActive         bool      `bson:"isActive"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

// CostConfigMongoRepository stores the pricing catalog; itemType carries a
// unique index.
type CostConfigMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.ICostConfigRepository = (*CostConfigMongoRepository)(nil)

func NewCostConfigMongoRepository(db *mongo.Database, collection string) *CostConfigMongoRepository {
	return &CostConfigMongoRepository{coll: db.Collection(collection)}
}

func (r *CostConfigMongoRepository) ListActive(ctx context.Context) ([]entities.CostConfig, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *CostConfigMongoRepository) ListAll(ctx context.Context) ([]entities.CostConfig, error) {
	return r.find(ctx, bson.M{})
}

func (r *CostConfigMongoRepository) Upsert(ctx context.Context, c entities.CostConfig) (entities.CostConfig, error) {
	update := bson.M{
		"$set": bson.M{
			"category":         c.Category,
			"basePrice":        c.BasePrice,
			"unit":             c.Unit,
			"laborCostPerUnit": c.LaborCostPerUnit,
			"isActive":         c.IsActive,
			"updatedAt":        c.UpdatedAt.UTC(),
		},
		"$setOnInsert": bson.M{"_id": c.ID},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc costConfigDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"itemType": c.ItemType}, update, opts).Decode(&doc); err != nil {
		return entities.CostConfig{}, err
	}
	return fromCostConfigDoc(doc), nil
}

func (r *CostConfigMongoRepository) InsertIfAbsent(ctx context.Context, c entities.CostConfig) (bool, error) {
	doc := toCostConfigDoc(c)
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"itemType": c.ItemType},
		bson.M{"$setOnInsert": doc},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *CostConfigMongoRepository) find(ctx context.Context, filter bson.M) ([]entities.CostConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "itemType", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []costConfigDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]entities.CostConfig, 0, len(docs))
	for _, d := range docs {
		res = append(res, fromCostConfigDoc(d))
	}
	return res, nil
}

func toCostConfigDoc(c entities.CostConfig) costConfigDoc {
	return costConfigDoc{
		ID:               c.ID,
		Category:         c.Category,
		ItemType:         c.ItemType,
		BasePrice:        c.BasePrice,
		Unit:             c.Unit,
		LaborCostPerUnit: c.LaborCostPerUnit,
		IsActive:         c.IsActive,
		UpdatedAt:        c.UpdatedAt.UTC(),
	}
}

func fromCostConfigDoc(d costConfigDoc) entities.CostConfig {
	return entities.CostConfig{
		ID:               d.ID,
		Category:         d.Category,
		ItemType:         d.ItemType,
		BasePrice:        d.BasePrice,
		Unit:             d.Unit,
		LaborCostPerUnit: d.LaborCostPerUnit,
		IsActive:         d.IsActive,
		UpdatedAt:        d.UpdatedAt.UTC(),
	}
}

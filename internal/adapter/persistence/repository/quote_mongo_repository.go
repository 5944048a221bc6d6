package repository

import (
	"context"
	"errors"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type quoteLineDoc struct {
	Name       string  `bson:"name"`
	Category   string  `bson:"category"`
	Quantity   float64 `bson:"quantity"`
	Unit       string  `bson:"unit,omitempty"`
	UnitPrice  float64 `bson:"unitPrice"`
	TotalPrice float64 `bson:"totalPrice"`
}

type quoteDoc struct {
	ID          string         `bson:"_id"`
	ProjectID   string         `bson:"projectId"`
	Items       []quoteLineDoc `bson:"items"`
	TotalAmount float64        `bson:"totalAmount"`
	Version     int            `bson:"version"`
	Status      string         `bson:"status"`
	ValidUntil  time.Time      `bson:"validUntil"`
	DocumentURL string         `bson:"documentUrl,omitempty"`
	Rationale   string         `bson:"rationale,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt"`
}

// QuoteMongoRepository persists Quote entities in a Mongo collection with a
// unique index on projectId.
type QuoteMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IQuoteRepository = (*QuoteMongoRepository)(nil)

func NewQuoteMongoRepository(db *mongo.Database, collection string) *QuoteMongoRepository {
	return &QuoteMongoRepository{coll: db.Collection(collection)}
}

func (r *QuoteMongoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if _, err := r.coll.InsertOne(ctx, toQuoteDoc(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteMongoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *QuoteMongoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	return r.findOne(ctx, bson.M{"projectId": projectID})
}

func (r *QuoteMongoRepository) Update(ctx context.Context, q entities.Quote, expectedVersion int) (entities.Quote, error) {
	filter := bson.M{"_id": q.ID}
	if expectedVersion > 0 {
		filter["version"] = expectedVersion
	}

	res, err := r.coll.ReplaceOne(ctx, filter, toQuoteDoc(q))
	if err != nil {
		return entities.Quote{}, err
	}
	if res.MatchedCount == 0 {
		if expectedVersion == 0 {
			return entities.Quote{}, nil
		}
		current, err := r.GetByID(ctx, q.ID)
		if err != nil {
			return entities.Quote{}, err
		}
		if current.ID == "" {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, interfaces.ErrVersionMismatch
	}
	return q, nil
}

func (r *QuoteMongoRepository) UpdateDocument(ctx context.Context, id string, documentURL string) (entities.Quote, error) {
	return r.set(ctx, id, bson.M{"documentUrl": documentURL})
}

func (r *QuoteMongoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.set(ctx, id, bson.M{"status": string(status), "updatedAt": time.Now().UTC()})
}

func (r *QuoteMongoRepository) set(ctx context.Context, id string, fields bson.M) (entities.Quote, error) {
	var doc quoteDoc
	found, err := findOneAndSet(ctx, r.coll, id, fields, &doc)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteDoc(doc), nil
}

func (r *QuoteMongoRepository) findOne(ctx context.Context, filter bson.M) (entities.Quote, error) {
	var doc quoteDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteDoc(doc), nil
}

func toQuoteDoc(q entities.Quote) quoteDoc {
	lines := make([]quoteLineDoc, len(q.Items))
	for i, it := range q.Items {
		lines[i] = quoteLineDoc(it)
	}
	return quoteDoc{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		Items:       lines,
		TotalAmount: q.TotalAmount,
		Version:     q.Version,
		Status:      string(q.Status),
		ValidUntil:  q.ValidUntil.UTC(),
		DocumentURL: q.DocumentURL,
		Rationale:   q.Rationale,
		CreatedAt:   q.CreatedAt.UTC(),
		UpdatedAt:   q.UpdatedAt.UTC(),
	}
}

func fromQuoteDoc(d quoteDoc) entities.Quote {
	items := make([]entities.QuoteItem, len(d.Items))
	for i, l := range d.Items {
		items[i] = entities.QuoteItem(l)
	}
	return entities.Quote{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Items:       items,
		TotalAmount: d.TotalAmount,
		Version:     d.Version,
		Status:      entities.QuoteStatus(d.Status),
		ValidUntil:  d.ValidUntil.UTC(),
		DocumentURL: d.DocumentURL,
		Rationale:   d.Rationale,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type projectDoc struct {
	ID              string                       `bson:"_id"`
	OwnerID         string                       `bson:"ownerId"`
	Title           string                       `bson:"title"`
	Client          entities.ClientContact       `bson:"client"`
	ProjectType     string                       `bson:"projectType"`
	SpaceType       string                       `bson:"spaceType"`
	AreaSqft        float64                      `bson:"areaSqft"`
	Style           entities.StylePreferences    `bson:"style"`
	Materials       entities.MaterialPreferences `bson:"materials"`
	Budget          entities.BudgetRange         `bson:"budget"`
	PhotoURLs       []string                     `bson:"photoUrls,omitempty"`
	PreviewImageURL string                       `bson:"previewImageUrl,omitempty"`
	Status          string                       `bson:"status"`
	CreatedAt       time.Time                    `bson:"createdAt"`
	UpdatedAt       time.Time                    `bson:"updatedAt"`
}

type ProjectMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IProjectRepository = (*ProjectMongoRepository)(nil)

func NewProjectMongoRepository(db *mongo.Database, collection string) *ProjectMongoRepository {
	return &ProjectMongoRepository{coll: db.Collection(collection)}
}

func (r *ProjectMongoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if _, err := r.coll.InsertOne(ctx, toProjectDoc(p)); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectMongoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var doc projectDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return fromProjectDoc(doc), nil
}

func (r *ProjectMongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	res := make([]entities.Project, 0)
	for cursor.Next(ctx) {
		var doc projectDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		res = append(res, fromProjectDoc(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ProjectMongoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, toProjectDoc(p))
	if err != nil {
		return entities.Project{}, err
	}
	if res.MatchedCount == 0 {
		return entities.Project{}, nil
	}
	return p, nil
}

func (r *ProjectMongoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	return r.set(ctx, id, bson.M{"status": string(status), "updatedAt": time.Now().UTC()})
}

func (r *ProjectMongoRepository) UpdatePreview(ctx context.Context, id string, previewURL string, status entities.ProjectStatus) (entities.Project, error) {
	return r.set(ctx, id, bson.M{"previewImageUrl": previewURL, "status": string(status), "updatedAt": time.Now().UTC()})
}

func (r *ProjectMongoRepository) set(ctx context.Context, id string, fields bson.M) (entities.Project, error) {
	var doc projectDoc
	found, err := findOneAndSet(ctx, r.coll, id, fields, &doc)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectDoc(doc), nil
}

func toProjectDoc(p entities.Project) projectDoc {
	return projectDoc{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Title:           p.Title,
		Client:          p.Client,
		ProjectType:     p.ProjectType,
		SpaceType:       p.SpaceType,
		AreaSqft:        p.AreaSqft,
		Style:           p.Style,
		Materials:       p.Materials,
		Budget:          p.Budget,
		PhotoURLs:       p.PhotoURLs,
		PreviewImageURL: p.PreviewImageURL,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt.UTC(),
		UpdatedAt:       p.UpdatedAt.UTC(),
	}
}

func fromProjectDoc(d projectDoc) entities.Project {
	return entities.Project{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		Title:           d.Title,
		Client:          d.Client,
		ProjectType:     d.ProjectType,
		SpaceType:       d.SpaceType,
		AreaSqft:        d.AreaSqft,
		Style:           d.Style,
		Materials:       d.Materials,
		Budget:          d.Budget,
		PhotoURLs:       d.PhotoURLs,
		PreviewImageURL: d.PreviewImageURL,
		Status:          entities.ProjectStatus(d.Status),
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
}

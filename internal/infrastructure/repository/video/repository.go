package video

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	domain "reel-server/reel-api/internal/domain/video"
	"reel-server/reel-api/internal/utils/platformerrors"
)

const collectionName = "videos"

// videoDocument is the persisted shape of a metadata record.
type videoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	VideoID     string             `bson:"videoId"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Format      []string           `bson:"format"`
	Resolutions []string           `bson:"resolutions"`
	UploadedAt  time.Time          `bson:"uploadedAt"`
	UserID      string             `bson:"userId"`
}

// Repository handles video metadata persistence.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(collectionName)}
}

func (r *Repository) Create(ctx context.Context, v *domain.Video) error {
	doc := videoDocument{
		VideoID:     v.VideoID,
		Title:       v.Title,
		Description: v.Description,
		Format:      v.Format,
		Resolutions: v.Resolutions,
		UploadedAt:  v.UploadedAt,
		UserID:      v.UserID,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create video metadata",
			err,
			"c5d6e7f8-9a0b-4c1d-8e2f-3a4b5c6d7e8f",
		)
	}
	return nil
}

func (r *Repository) GetByVideoID(ctx context.Context, videoID string) (*domain.Video, error) {
	var doc videoDocument
	err := r.collection.FindOne(ctx, bson.M{"videoId": videoID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"video not found",
				err,
				"e7f8a9b0-1c2d-4e3f-8a4b-5c6d7e8f9a0b",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get video by id",
			err,
			"f8a9b0c1-2d3e-4f4a-8b5c-6d7e8f9a0b1c",
		)
	}
	v := mapDocument(doc)
	return &v, nil
}

// List returns every metadata record, decoded fully into memory.
func (r *Repository) List(ctx context.Context) ([]*domain.Video, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list videos",
			err,
			"a9b0c1d2-3e4f-4a5b-8c6d-7e8f9a0b1c2d",
		)
	}
	defer cursor.Close(ctx)

	var docs []videoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to decode videos",
			err,
			"b0c1d2e3-4f5a-4b6c-8d7e-8f9a0b1c2d3e",
		)
	}

	videos := make([]*domain.Video, 0, len(docs))
	for _, doc := range docs {
		v := mapDocument(doc)
		videos = append(videos, &v)
	}
	return videos, nil
}

func mapDocument(doc videoDocument) domain.Video {
	return domain.Video{
		VideoID:     doc.VideoID,
		Title:       doc.Title,
		Description: doc.Description,
		Format:      doc.Format,
		Resolutions: doc.Resolutions,
		UploadedAt:  doc.UploadedAt,
		UserID:      doc.UserID,
	}
}

package mongodb

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const imagesBucketName = "images"

func (db *DB) imagesBucket() (*gridfs.Bucket, error) {
	return gridfs.NewBucket(db.Database(), options.GridFSBucket().SetName(imagesBucketName))
}

// StoreImage uploads an image blob to the GridFS images bucket under a
// collision-free path and returns the stored file id (hex).
func (db *DB) StoreImage(restaurantId, filename, contentType string, r io.Reader) (string, error) {
	bucket, err := db.imagesBucket()
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("images/%s/%s-%s", restaurantId, uuid.NewString(), filename)
	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"restaurantId": restaurantId,
		"contentType":  contentType,
	})

	fileId, err := bucket.UploadFromStream(path, r, uploadOpts)
	if err != nil {
		return "", err
	}

	return fileId.Hex(), nil
}

// OpenImage streams a stored image blob into w and returns its content
// type. Returns ErrRecordNotFound for malformed or unknown file ids.
func (db *DB) OpenImage(fileId string, w io.Writer) (string, error) {
	oid, err := primitive.ObjectIDFromHex(fileId)
	if err != nil {
		return "", ErrRecordNotFound
	}

	bucket, err := db.imagesBucket()
	if err != nil {
		return "", err
	}

	stream, err := bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return "", ErrRecordNotFound
		}
		return "", err
	}
	defer stream.Close()

	var meta struct {
		ContentType string `bson:"contentType"`
	}
	if raw := stream.GetFile().Metadata; raw != nil {
		_ = bson.Unmarshal(raw, &meta)
	}

	if _, err := io.Copy(w, stream); err != nil {
		return "", err
	}

	return meta.ContentType, nil
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"event_admin/internal/models"
	"event_admin/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectStore is the media bucket. The S3 implementation is swapped for a
// stub in tests.
type ObjectStore interface {
	Put(key string, body []byte, contentType string) error
	PresignURL(key string) (string, error)
	Delete(key string) error
}

type MediaService interface {
	Upload(fileHeader *multipart.FileHeader, category string, uploadedBy uint) (*models.MediaItem, error)
	Get(id uint) (*models.MediaItem, error)
	GetByCategory(category string) ([]models.MediaItem, error)
	PresignURL(key string) (string, error)
	Delete(id uint) error
}

type mediaService struct {
	mediaRepo repository.MediaRepository
	store     ObjectStore
}

func NewMediaService(mediaRepo repository.MediaRepository, store ObjectStore) MediaService {
	return &mediaService{mediaRepo: mediaRepo, store: store}
}

func (s *mediaService) Upload(fileHeader *multipart.FileHeader, category string, uploadedBy uint) (*models.MediaItem, error) {
	if fileHeader == nil {
		return nil, validation("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("uploads/%s_%s", uuid.NewString(), filepath.Base(fileHeader.Filename))
	if err := s.store.Put(key, content, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", ErrRemote)
	}

	item := &models.MediaItem{
		Key:         key,
		ContentType: contentType,
		Category:    category,
		UploadedBy:  uploadedBy,
	}
	if err := s.mediaRepo.Create(item); err != nil {
		return nil, err
	}

	if url, err := s.store.PresignURL(key); err == nil {
		item.URL = url
	}
	return item, nil
}

func (s *mediaService) Get(id uint) (*models.MediaItem, error) {
	item, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "media item")
	}
	if url, err := s.store.PresignURL(item.Key); err == nil {
		item.URL = url
	}
	return item, nil
}

func (s *mediaService) GetByCategory(category string) ([]models.MediaItem, error) {
	items, err := s.mediaRepo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if url, err := s.store.PresignURL(items[i].Key); err == nil {
			items[i].URL = url
		}
	}
	return items, nil
}

func (s *mediaService) PresignURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}
	return s.store.PresignURL(key)
}

func (s *mediaService) Delete(id uint) error {
	item, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return notFound(err, "media item")
	}
	if err := s.store.Delete(item.Key); err != nil {
		return fmt.Errorf("failed to delete media object: %w", ErrRemote)
	}
	return s.mediaRepo.Delete(id)
}

// s3Store implements ObjectStore against the media bucket.
type s3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(region, accessKeyID, secretAccessKey, bucket string) (ObjectStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (s *s3Store) Put(key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// PresignURL generates a presigned URL valid for one hour.
func (s *s3Store) PresignURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return request.URL, nil
}

func (s *s3Store) Delete(key string) error {
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

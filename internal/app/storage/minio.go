package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient connects to MinIO and makes sure the bucket exists and is
// publicly readable, so stored photo URLs never expire.
func NewMinIOClient(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	if err := client.SetBucketPolicy(ctx, bucketName, publicReadPolicy(bucketName)); err != nil {
		return nil, fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func publicReadPolicy(bucketName string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucketName)
}

// Put stores data under objectPath. The content type is sniffed from the data.
func (m *MinIOClient) Put(ctx context.Context, objectPath string, data []byte) error {
	contentType := mimetype.Detect(data).String()

	_, err := m.client.PutObject(ctx, m.bucketName, objectPath, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.WithFields(logrus.Fields{"object": objectPath, "content_type": contentType}).Info("file uploaded")
	return nil
}

// PublicURL is the permanent URL of an object in the public bucket.
func (m *MinIOClient) PublicURL(objectPath string) string {
	return publicURL(m.client.EndpointURL(), m.bucketName, objectPath)
}

func publicURL(endpoint *url.URL, bucketName, objectPath string) string {
	u := *endpoint
	u.Path = path.Join("/", u.Path, bucketName, objectPath)
	return u.String()
}

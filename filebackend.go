package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/textproto"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const MaxImageSize = 10 << 20

type FileInfo struct {
	FileName string
	MIMEInfo map[string][]string
	Size     int64
	Created  time.Time
	Creator  int32
}

func (fi FileInfo) MIMEContentType() string {
	return textproto.MIMEHeader(fi.MIMEInfo).Get("Content-Type")
}

// FileBackend stores animal photos. Each stored photo is addressed by a UUID
// and carries a metadata record next to the data.
type FileBackend interface {
	// Upload a new photo, returning its unique ID
	Upload(ctx context.Context, data io.Reader, fileInfo FileInfo) (string, error)
	// Delete a photo and its metadata
	Delete(ctx context.Context, id string) error
	// ReadInfo returns the stored metadata
	ReadInfo(ctx context.Context, id string) (FileInfo, error)
	// Open the photo data for reading
	Open(ctx context.Context, id string, fileInfo FileInfo) (io.ReadCloser, error)
}

// LOCAL FILE API

type LocalFileStorage struct {
	MainDirectory string
}

func NewLocalFileStorage(ctx context.Context, mainDir string) *LocalFileStorage {
	if err := os.MkdirAll(mainDir, os.ModePerm); err != nil {
		panic(fmt.Errorf("creating mainDir='%s': %w", mainDir, err))
	}
	return &LocalFileStorage{
		MainDirectory: mainDir,
	}
}

func (lfs *LocalFileStorage) Upload(ctx context.Context, data io.Reader, fileInfo FileInfo) (outID string, outErr error) {
	id := uuid.New().String()

	dir, err := os.OpenRoot(lfs.MainDirectory)
	if err != nil {
		return "", err
	}
	defer dir.Close()

	if err := dir.Mkdir(id, os.ModePerm); err != nil {
		return "", fmt.Errorf("creating file directory: %w", err)
	}

	metaFile, err := dir.Create(id + "/metadata.json")
	if err != nil {
		return "", fmt.Errorf("creating metadata.json: %w", err)
	}
	defer func() {
		if err := metaFile.Close(); outErr == nil && err != nil {
			outErr = fmt.Errorf("closing metadata.json: %w", err)
			outID = ""
		}
	}()
	if err := json.NewEncoder(metaFile).Encode(fileInfo); err != nil {
		return "", fmt.Errorf("writing metadata.json: %w", err)
	}

	file, err := dir.Create(id + "/" + fileInfo.FileName)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", fileInfo.FileName, err)
	}
	defer func() {
		if err := file.Close(); outErr == nil && err != nil {
			outErr = fmt.Errorf("closing file: %w", err)
			outID = ""
		}
	}()

	if n, err := io.Copy(file, data); err != nil {
		return "", fmt.Errorf("writing file contents: %w", err)
	} else if n != fileInfo.Size {
		return "", fmt.Errorf("file size expected %d wrote %d", fileInfo.Size, n)
	}

	return id, nil
}

func (lfs *LocalFileStorage) Delete(ctx context.Context, id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("'%s' is not a valid UUID: %w", id, err)
	}

	dir, err := os.OpenRoot(lfs.MainDirectory)
	if err != nil {
		return err
	}
	defer dir.Close()

	return dir.RemoveAll(id)
}

func (lfs *LocalFileStorage) ReadInfo(ctx context.Context, id string) (FileInfo, error) {
	dir, err := os.OpenRoot(lfs.MainDirectory)
	if err != nil {
		return FileInfo{}, err
	}
	defer dir.Close()

	metaFile, err := dir.Open(id + "/metadata.json")
	if err != nil {
		return FileInfo{}, err
	}
	var info FileInfo
	if err := json.NewDecoder(metaFile).Decode(&info); err != nil {
		metaFile.Close()
		return FileInfo{}, err
	}
	metaFile.Close()

	return info, nil
}

func (lfs *LocalFileStorage) Open(ctx context.Context, id string, info FileInfo) (io.ReadCloser, error) {
	dir, err := os.OpenRoot(lfs.MainDirectory)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	file, err := dir.Open(id + "/" + info.FileName)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// S3 API

type S3FileStorage struct {
	Client *s3.Client
	Bucket string
}

func NewS3FileStorage(ctx context.Context, bucket, region string) (*S3FileStorage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &S3FileStorage{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
	}, nil
}

func (s3s *S3FileStorage) Upload(ctx context.Context, data io.Reader, fileInfo FileInfo) (string, error) {
	id := uuid.New().String()

	meta, err := json.Marshal(fileInfo)
	if err != nil {
		return "", fmt.Errorf("marshalling metadata: %w", err)
	}

	if _, err := s3s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s3s.Bucket),
		Key:    aws.String(id + "/metadata.json"),
		Body:   bytes.NewReader(meta),
	}); err != nil {
		return "", fmt.Errorf("uploading metadata: %w", err)
	}

	if _, err := s3s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s3s.Bucket),
		Key:           aws.String(id + "/" + fileInfo.FileName),
		Body:          data,
		ContentLength: aws.Int64(fileInfo.Size),
		ContentType:   aws.String(fileInfo.MIMEContentType()),
	}); err != nil {
		return "", fmt.Errorf("uploading file contents: %w", err)
	}

	return id, nil
}

func (s3s *S3FileStorage) Delete(ctx context.Context, id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("'%s' is not a valid UUID: %w", id, err)
	}

	info, err := s3s.ReadInfo(ctx, id)
	if err != nil {
		return err
	}

	for _, key := range []string{id + "/metadata.json", id + "/" + info.FileName} {
		if _, err := s3s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s3s.Bucket),
			Key:    aws.String(key),
		}); err != nil {
			return fmt.Errorf("deleting '%s': %w", key, err)
		}
	}
	return nil
}

func (s3s *S3FileStorage) ReadInfo(ctx context.Context, id string) (FileInfo, error) {
	out, err := s3s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s3s.Bucket),
		Key:    aws.String(id + "/metadata.json"),
	})
	if err != nil {
		return FileInfo{}, err
	}
	defer out.Body.Close()

	var info FileInfo
	if err := json.NewDecoder(out.Body).Decode(&info); err != nil {
		return FileInfo{}, err
	}
	return info, nil
}

func (s3s *S3FileStorage) Open(ctx context.Context, id string, info FileInfo) (io.ReadCloser, error) {
	out, err := s3s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s3s.Bucket),
		Key:    aws.String(id + "/" + info.FileName),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func newFileBackend(ctx context.Context, cfg StorageConfig) (FileBackend, error) {
	switch cfg.Backend {
	case "s3":
		return NewS3FileStorage(ctx, cfg.S3Bucket, cfg.S3Region)
	case "local", "":
		dir := cfg.LocalDir
		if dir == "" {
			dir = "file"
		}
		return NewLocalFileStorage(ctx, dir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend '%s'", cfg.Backend)
	}
}

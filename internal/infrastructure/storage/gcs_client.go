package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient mirrors catalog cover art into a bucket so the app does
// not hotlink the upstream image CDN.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	httpClient *http.Client
}

func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// MirrorCover downloads the cover image at srcURL, uploads it under covers/
// and returns the public URL of the copy.
func (c *CloudStorageClient) MirrorCover(ctx context.Context, srcURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid cover url: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download cover: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cover download returned status %d", resp.StatusCode)
	}

	ext := path.Ext(srcURL)
	if idx := strings.Index(ext, "?"); idx >= 0 {
		ext = ext[:idx]
	}
	if ext == "" {
		ext = ".jpg"
	}

	objectName := fmt.Sprintf("covers/%s%s", uuid.New().String(), ext)

	writer := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		writer.ContentType = ct
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to upload cover: %v", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize cover upload: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const keyCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type UploadResult struct {
	URL    string
	Width  int
	Height int
}

// Upload stores the media under a random key inside folder and returns
// the public URL together with the image dimensions. Dimensions are 0
// when the payload isn't a decodable image, that's not an error
func (r *R2Client) Upload(ctx context.Context, body io.Reader, filename, folder string) (*UploadResult, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body, %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty upload body")
	}

	var width, height int
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width = cfg.Width
		height = cfg.Height
	}

	id, err := gonanoid.Generate(keyCharset, 16)
	if err != nil {
		return nil, err
	}

	key := strings.Trim(folder, "/") + "/" + id + strings.ToLower(path.Ext(filename))

	_, err = r.C.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       r.Bucket,
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(http.DetectContentType(data)),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media, %w", err)
	}

	return &UploadResult{
		URL:    strings.TrimSuffix(r.PublicURL, "/") + "/" + key,
		Width:  width,
		Height: height,
	}, nil
}

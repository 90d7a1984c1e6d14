package storage

import (
	"context"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gustavoSo3/adogtame-back/config"
)

type Cloudinary struct {
	CLD    *cloudinary.Cloudinary
	Folder string
}

func NewCloudinary(cfg *config.Config) *Cloudinary {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	return &Cloudinary{CLD: cld, Folder: cfg.ImageFolder}
}

// UploadImage stores the image under the configured folder and the
// given key, returning the key the client uses to fetch it back.
func (c *Cloudinary) UploadImage(ctx context.Context, file io.Reader, key string) (string, error) {
	_, err := c.CLD.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   c.Folder,
		PublicID: key,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// ImageURL resolves the delivery URL for a stored image key.
func (c *Cloudinary) ImageURL(key string) (string, error) {
	img, err := c.CLD.Image(c.Folder + "/" + key)
	if err != nil {
		return "", err
	}
	return img.String()
}

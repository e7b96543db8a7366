package utils

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// IsCloudinaryConfigured reports whether upload credentials are present.
func IsCloudinaryConfigured() bool {
	return os.Getenv("CLOUDINARY_CLOUD_NAME") != "" && os.Getenv("CLOUDINARY_API_KEY") != ""
}

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// UploadCoverImage uploads a blog cover image and returns the secure URL.
func UploadCoverImage(file interface{}, publicID string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "blog-covers",
		Transformation: "c_fill,w_1200,h_630",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

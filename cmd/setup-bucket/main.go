package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// One-off tool: ตรวจสอบและสร้าง S3 bucket สำหรับเก็บ media ก่อน start server ครั้งแรก
func main() {
	godotenv.Load()

	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	useSSL := os.Getenv("S3_USE_SSL") == "true"
	region := os.Getenv("S3_REGION")

	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("  Media Bucket Setup")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("\nEndpoint: %s\n", endpoint)
	fmt.Printf("Bucket: %s\n", bucket)
	fmt.Printf("Region: %s\n", region)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}

	if exists {
		fmt.Printf("\nBucket '%s' already exists\n", bucket)
		return
	}

	err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region})
	if err != nil {
		log.Fatalf("Failed to create bucket: %v", err)
	}

	fmt.Printf("\nBucket '%s' created\n", bucket)
}

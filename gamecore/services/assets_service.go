package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

// AssetsService serves collectible card artwork from an S3-compatible bucket.
// Cards are keyed <root>/<country>/<card id>.jpg so the art team can manage
// one folder per country.
type AssetsService struct {
	client   *s3.Client
	bucket   string
	region   string
	CardRoot string
}

func NewAssetsService(key, secret, region, bucket, cardRoot string) (*AssetsService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset storage config: %w", err)
	}

	return &AssetsService{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
		CardRoot: strings.TrimPrefix(cardRoot, "/"),
	}, nil
}

func (s *AssetsService) cardKey(card catalog.Card) string {
	return fmt.Sprintf("%s/%s/%s.jpg", s.CardRoot, card.Country, card.ID)
}

// CardImageURL returns the public URL of a card's artwork.
func (s *AssetsService) CardImageURL(card catalog.Card) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, s.cardKey(card))
}

// CardImageExists checks whether artwork has been uploaded for a card.
func (s *AssetsService) CardImageExists(ctx context.Context, card catalog.Card) (bool, error) {
	key := s.cardKey(card)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, fmt.Errorf("failed to check card image: %w", err)
	}
	return true, nil
}

// MissingCardImages lists catalog cards without uploaded artwork, for the
// content pipeline's pre-release check.
func (s *AssetsService) MissingCardImages(ctx context.Context, cat *catalog.Catalog) ([]string, error) {
	var missing []string
	for _, card := range cat.Cards {
		exists, err := s.CardImageExists(ctx, card)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, card.ID)
		}
	}
	return missing, nil
}

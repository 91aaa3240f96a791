// Package vision はGoogle Cloud Vision APIを使用した画像スクリーニングクライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/recipes/usecase"
)

// SafeSearchScreener はGoogle Cloud Vision APIのセーフサーチ判定で
// レシピ画像をスクリーニングします。
type SafeSearchScreener struct {
	client *gvision.ImageAnnotatorClient
}

// SafeSearchScreenerがImageScreenerを実装していることをコンパイル時に検証します。
var _ usecase.ImageScreener = (*SafeSearchScreener)(nil)

// NewSafeSearchScreener はADCを使用してSafeSearchScreenerの新しいインスタンスを生成します。
func NewSafeSearchScreener(ctx context.Context) (*SafeSearchScreener, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &SafeSearchScreener{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (s *SafeSearchScreener) Close() error {
	return s.client.Close()
}

// ScreenImage は画像URLに対してセーフサーチ判定を実行します。
// 画像の取得はVision API側で行われるため、URLは公開アクセス可能である必要があります。
func (s *SafeSearchScreener) ScreenImage(ctx context.Context, imageURL string) (*entity.ScreenVerdict, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{
					Source: &visionpb.ImageSource{ImageUri: imageURL},
				},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
				},
			},
		},
	}

	resp, err := s.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil, fmt.Errorf("vision API returned no responses")
	}
	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	annotation := resp.Responses[0].SafeSearchAnnotation
	if annotation == nil {
		return nil, fmt.Errorf("vision API returned no safe-search annotation")
	}

	return &entity.ScreenVerdict{
		Adult:    annotation.Adult.String(),
		Violence: annotation.Violence.String(),
		Racy:     annotation.Racy.String(),
		Flagged: flagged(annotation.Adult) ||
			flagged(annotation.Violence) ||
			flagged(annotation.Racy),
	}, nil
}

// flagged はLIKELY以上の可能性を不適切と判定します。
func flagged(l visionpb.Likelihood) bool {
	return l >= visionpb.Likelihood_LIKELY
}

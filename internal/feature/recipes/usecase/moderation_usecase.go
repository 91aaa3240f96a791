package usecase

import (
	"context"
	"fmt"

	"letscook_backend/internal/feature/recipes/domain/entity"
)

// ImageScreener は画像URLに対するセーフサーチ判定を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ImageScreener interface {
	// ScreenImage は画像URLを解析し、セーフサーチ判定を返します。
	ScreenImage(ctx context.Context, imageURL string) (*entity.ScreenVerdict, error)
}

// ModerationUsecase はレシピ審査（pending→approved/rejected）のビジネスロジックを提供します。
type ModerationUsecase struct {
	repo     RecipeRepository
	screener ImageScreener
}

// NewModerationUsecase はModerationUsecaseの新しいインスタンスを生成します。
// screenerはnil可で、その場合ScreenImageはErrScreeningUnavailableを返します。
func NewModerationUsecase(r RecipeRepository, screener ImageScreener) *ModerationUsecase {
	return &ModerationUsecase{repo: r, screener: screener}
}

// ListPending は審査待ちのレシピをストレージ順で全件返します。
func (u *ModerationUsecase) ListPending(ctx context.Context) ([]entity.Recipe, error) {
	return u.repo.FindByStatus(ctx, entity.StatusPending)
}

// SetStatus はレシピのステータスを更新し、更新後のレシピを返します。
// statusはapprovedまたはrejectedのみ許可されます。それ以外はErrInvalidStatusを返します。
// 更新は無条件で、同一レシピへの再審査は後勝ちになります。
func (u *ModerationUsecase) SetStatus(ctx context.Context, id uint, status entity.Status) (*entity.Recipe, error) {
	if status != entity.StatusApproved && status != entity.StatusRejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return u.repo.UpdateStatus(ctx, id, status)
}

// ScreenImage はレシピ画像のセーフサーチ判定を返します。審査ダッシュボード用の補助機能です。
// スクリーニングバックエンドが未設定の場合、ErrScreeningUnavailableを返します。
func (u *ModerationUsecase) ScreenImage(ctx context.Context, id uint) (*entity.ScreenVerdict, error) {
	if u.screener == nil {
		return nil, ErrScreeningUnavailable
	}
	recipe, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.RecipeImg == "" {
		return nil, ErrNoImage
	}
	verdict, err := u.screener.ScreenImage(ctx, recipe.RecipeImg)
	if err != nil {
		return nil, fmt.Errorf("image screening failed for recipe %d: %w", id, err)
	}
	return verdict, nil
}

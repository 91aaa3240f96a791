// Package usecase はrecipesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"letscook_backend/internal/feature/recipes/domain/entity"
)

// RecipeRepository はレシピエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RecipeRepository interface {
	// Create は新しいレシピをストレージに永続化します。
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID は指定されたIDに一致するレシピを取得します。
	// レシピが存在しない場合、ErrRecipeNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)

	// FindByStatus は指定されたステータスのレシピをストレージ順で全件返します。
	FindByStatus(ctx context.Context, status entity.Status) ([]entity.Recipe, error)

	// FindByOwner は指定されたユーザーが所有するレシピをステータスに関係なく全件返します。
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Recipe, error)

	// Search は名前または説明に部分一致（大文字小文字を区別しない）するレシピを返します。
	Search(ctx context.Context, query string) ([]entity.Recipe, error)

	// Update は指定されたフィールドのみを更新し、更新後のレシピを返します。
	// レシピが存在しない場合、ErrRecipeNotFoundを返します。
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.Recipe, error)

	// UpdateStatus はステータスを無条件に更新し、更新後のレシピを返します。
	// レシピが存在しない場合、ErrRecipeNotFoundを返します。
	UpdateStatus(ctx context.Context, id uint, status entity.Status) (*entity.Recipe, error)

	// Delete はレシピを削除します。レシピが存在しない場合、ErrRecipeNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// RecipeUsecase はレシピのCRUDと公開リストのビジネスロジックを提供します。
type RecipeUsecase struct {
	repo RecipeRepository
}

// NewRecipeUsecase はRecipeUsecaseの新しいインスタンスを生成します。
func NewRecipeUsecase(r RecipeRepository) *RecipeUsecase {
	return &RecipeUsecase{repo: r}
}

// Create は新しいレシピをpendingステータスで作成します。
// クライアントが指定したステータスは無視され、常にpendingで永続化されます。
func (u *RecipeUsecase) Create(ctx context.Context, recipe *entity.Recipe) (*entity.Recipe, error) {
	recipe.ID = 0
	recipe.Status = entity.StatusPending
	if err := u.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListVisible は公開可能なレシピ（approvedのみ）を返します。
// pending・rejectedのレシピは決して含まれません。
func (u *RecipeUsecase) ListVisible(ctx context.Context) ([]entity.Recipe, error) {
	return u.repo.FindByStatus(ctx, entity.StatusApproved)
}

// ListByOwner は指定されたユーザーのレシピをステータスに関係なく返します。
// 所有者は自分のpending・rejectedのレシピも常に確認できます。
func (u *RecipeUsecase) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Recipe, error) {
	return u.repo.FindByOwner(ctx, ownerID)
}

// GetByID はIDでレシピを1件取得します。
func (u *RecipeUsecase) GetByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return u.repo.FindByID(ctx, id)
}

// Search は名前または説明でレシピを検索します。
// クエリが空の場合、ErrEmptyQueryを返します。
func (u *RecipeUsecase) Search(ctx context.Context, query string) ([]entity.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return u.repo.Search(ctx, query)
}

// Update は指定されたフィールドのみを部分更新します。
// 所有者・ステータスは更新対象外です。fieldsが空の場合は現状のレシピを返します。
func (u *RecipeUsecase) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Recipe, error) {
	// 所有者とステータスはこの経路では変更できない
	delete(fields, "user_owner")
	delete(fields, "status")
	if len(fields) == 0 {
		return u.repo.FindByID(ctx, id)
	}
	return u.repo.Update(ctx, id, fields)
}

// Delete はレシピをIDで削除します。
// 保存コレクション側の参照は削除されません（参照切れは仕様上許容されます）。
func (u *RecipeUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

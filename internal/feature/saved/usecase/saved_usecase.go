// Package usecase はsavedフィーチャー（保存コレクション）のビジネスロジックを実装します。
package usecase

import (
	"context"

	recipeentity "letscook_backend/internal/feature/recipes/domain/entity"
)

// SavedRepository は保存コレクションの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type SavedRepository interface {
	// UserExists は指定されたIDのユーザーが存在するかを返します。
	UserExists(ctx context.Context, userID uint) (bool, error)

	// RecipeExists は指定されたIDのレシピが存在するかを返します。
	RecipeExists(ctx context.Context, recipeID uint) (bool, error)

	// Append は保存行を1件追加します。重複チェックは行いません。
	Append(ctx context.Context, userID, recipeID uint) error

	// ListIDs はユーザーの保存レシピIDを保存順（行ID順）で返します。
	// 同じIDが複数回含まれることがあります。
	ListIDs(ctx context.Context, userID uint) ([]uint, error)

	// FindRecipes は指定されたID集合に含まれるレシピを返します。
	// 集合クエリであり、保存順は保証されません。存在しないIDは黙って無視されます。
	FindRecipes(ctx context.Context, ids []uint) ([]recipeentity.Recipe, error)

	// DeleteAll は指定されたユーザー・レシピの組の保存行をすべて削除します。
	DeleteAll(ctx context.Context, userID, recipeID uint) error
}

// SavedUsecase はユーザーとレシピのブックマーク関係を管理します。
type SavedUsecase struct {
	repo SavedRepository
}

// NewSavedUsecase はSavedUsecaseの新しいインスタンスを生成します。
func NewSavedUsecase(r SavedRepository) *SavedUsecase {
	return &SavedUsecase{repo: r}
}

// Save はレシピをユーザーの保存コレクションに追加し、更新後のID列を返します。
// ユーザーまたはレシピが存在しない場合、対応するNotFoundエラーを返します。
// 既に保存済みかどうかはチェックしません。同じ組を2回保存すると2件になります。
func (u *SavedUsecase) Save(ctx context.Context, userID, recipeID uint) ([]uint, error) {
	ok, err := u.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	ok, err = u.repo.RecipeExists(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRecipeNotFound
	}

	if err := u.repo.Append(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return u.repo.ListIDs(ctx, userID)
}

// ListSavedIDs はユーザーの保存レシピIDを保存順で返します。
// ユーザーが存在しない場合、ErrUserNotFoundを返します。
func (u *SavedUsecase) ListSavedIDs(ctx context.Context, userID uint) ([]uint, error) {
	ok, err := u.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.repo.ListIDs(ctx, userID)
}

// ListSavedRecipes は保存レシピIDをレシピストアで解決し、レシピ本体を返します。
// 削除済みレシピへの参照は結果から黙って落ちます（参照切れは仕様上許容されます）。
func (u *SavedUsecase) ListSavedRecipes(ctx context.Context, userID uint) ([]recipeentity.Recipe, error) {
	ids, err := u.ListSavedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.repo.FindRecipes(ctx, ids)
}

// Remove は指定されたレシピIDの保存行をすべて削除し、更新後のID列を返します。
// 重複保存されていた場合も1回の呼び出しで全件削除されます。
// 保存されていないIDの削除は何もしない成功です。
// ユーザーが存在しない場合のみErrUserNotFoundを返します。
func (u *SavedUsecase) Remove(ctx context.Context, userID, recipeID uint) ([]uint, error) {
	ok, err := u.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	if err := u.repo.DeleteAll(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return u.repo.ListIDs(ctx, userID)
}

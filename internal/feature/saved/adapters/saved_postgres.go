// Package adapters はsavedフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	authentity "letscook_backend/internal/feature/auth/domain/entity"
	recipeentity "letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/saved/domain/entity"
	"letscook_backend/internal/feature/saved/usecase"
)

// savedPostgres はSavedRepositoryインターフェースのPostgreSQL実装です。
// 保存コレクションはsaved_recipes結合テーブルの行として永続化されます。
type savedPostgres struct {
	db *gorm.DB
}

// savedPostgresがSavedRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SavedRepository = (*savedPostgres)(nil)

// NewSavedPostgres は指定されたgorm.DB接続でsavedPostgresの新しいインスタンスを生成します。
func NewSavedPostgres(db *gorm.DB) *savedPostgres {
	return &savedPostgres{db: db}
}

// UserExists はユーザーの存在を主キーのカウントで確認します。
func (r *savedPostgres) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecipeExists はレシピの存在を主キーのカウントで確認します。
func (r *savedPostgres) RecipeExists(ctx context.Context, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&recipeentity.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Append は保存行を1件追加します。一意制約はなく、重複行が許容されます。
func (r *savedPostgres) Append(ctx context.Context, userID, recipeID uint) error {
	row := &entity.SavedRecipe{UserID: userID, RecipeID: recipeID}
	return r.db.WithContext(ctx).Create(row).Error
}

// ListIDs はユーザーの保存レシピIDを行ID順（= 保存順）で返します。
func (r *savedPostgres) ListIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	if err := r.db.WithContext(ctx).
		Model(&entity.SavedRecipe{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// FindRecipes はID集合に含まれるレシピを返します。
// IN句による集合クエリのため、重複IDは1件に畳まれ、保存順は保証されません。
func (r *savedPostgres) FindRecipes(ctx context.Context, ids []uint) ([]recipeentity.Recipe, error) {
	if len(ids) == 0 {
		return []recipeentity.Recipe{}, nil
	}
	var recipes []recipeentity.Recipe
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteAll は指定された組の保存行をすべて削除します。対象0件でもエラーにはなりません。
func (r *savedPostgres) DeleteAll(ctx context.Context, userID, recipeID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entity.SavedRecipe{}).Error
}

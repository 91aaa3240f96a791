// Package adapters はrecipesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/recipes/usecase"
)

// recipePostgres はRecipeRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type recipePostgres struct {
	db *gorm.DB
}

// recipePostgresがRecipeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecipeRepository = (*recipePostgres)(nil)

// NewRecipePostgres は指定されたgorm.DB接続でrecipePostgresの新しいインスタンスを生成します。
func NewRecipePostgres(db *gorm.DB) *recipePostgres {
	return &recipePostgres{db: db}
}

// Create はレシピをデータベースに追加します。
func (r *recipePostgres) Create(ctx context.Context, recipe *entity.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return err
	}
	return nil
}

// FindByID はIDでレシピを取得します。
// レシピが存在しない場合、usecase.ErrRecipeNotFoundを返します。
func (r *recipePostgres) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// FindByStatus は指定されたステータスのレシピを主キー順で全件返します。
func (r *recipePostgres) FindByStatus(ctx context.Context, status entity.Status) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByOwner は指定された所有者のレシピをステータスに関係なく主キー順で返します。
func (r *recipePostgres) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_owner = ?", ownerID).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Search は名前または説明に部分一致するレシピを返します。
// lower(...) LIKE による比較でPostgreSQLとSQLite双方で大文字小文字を区別しません。
func (r *recipePostgres) Search(ctx context.Context, query string) ([]entity.Recipe, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var recipes []entity.Recipe
	if err := r.db.WithContext(ctx).
		Where("lower(name) LIKE ? OR lower(description) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update は指定されたカラムのみを更新し、更新後のレシピを返します。
// マップベースのUpdatesはserializer:jsonタグを適用しないため、
// ingredientsは事前にJSON文字列へ変換してからUPDATEします。
// 対象行が存在しない場合、usecase.ErrRecipeNotFoundを返します。
func (r *recipePostgres) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Recipe, error) {
	if list, ok := fields["ingredients"].([]string); ok {
		encoded, err := json.Marshal(list)
		if err != nil {
			return nil, err
		}
		fields["ingredients"] = string(encoded)
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Recipe{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrRecipeNotFound
	}
	return r.FindByID(ctx, id)
}

// UpdateStatus はステータスカラムを無条件に更新し、更新後のレシピを返します。
// 単一行のUPDATEであり、同時更新は後勝ちになります。
func (r *recipePostgres) UpdateStatus(ctx context.Context, id uint, status entity.Status) (*entity.Recipe, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Recipe{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrRecipeNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete はレシピを削除します。対象行が存在しない場合、usecase.ErrRecipeNotFoundを返します。
func (r *recipePostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}

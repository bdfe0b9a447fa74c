package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindVisible retrieves every product with the visibility flag set.
func (repo *productRepository) FindVisible(ctx context.Context) ([]*entity.Product, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("is_visible = ?", true).
		Order("id").
		Find(&productModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find visible products")
		}

		return nil, errors.Wrap(err, "failed to find visible products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find product by ID")
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves products for a set of IDs in one query.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	ctx, cancel := statementContext(ctx)
	defer cancel()

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find products by IDs")
		}

		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByName retrieves a product by its unique name.
func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find product by name")
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "create product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":           product.Name,
			"description":    product.Description,
			"category":       product.Category,
			"brand":          product.Brand,
			"dimensions":     product.Dimensions,
			"price":          product.Price,
			"stock_quantity": product.StockQuantity,
			"is_visible":     product.IsVisible,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProductAlreadyExists
		}
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "update product")
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "delete product")
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetFeatured toggles the featured flag on a product.
func (repo *productRepository) SetFeatured(ctx context.Context, id int64, featured bool) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_featured", featured)

	if result.Error != nil {
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "set product featured flag")
		}

		return errors.Wrap(result.Error, "failed to set product featured flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Brand:         data.Brand,
		Dimensions:    data.Dimensions,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		IsVisible:     data.IsVisible,
		IsFeatured:    data.IsFeatured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Brand:         data.Brand,
		Dimensions:    data.Dimensions,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		IsVisible:     data.IsVisible,
		IsFeatured:    data.IsFeatured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

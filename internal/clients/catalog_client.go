package clients

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/spacesedan/sentiview/internal/models"
)

const (
	CATALOG_CACHE_TTL     = 5 * time.Minute
	CATALOG_CACHE_SWEEP   = 10 * time.Minute
	cacheKeyCategories    = "categorias"
	cacheKeyProductPrefix = "productos:"
)

var (
	catalogInstance *CatalogClient
	catalogOnce     sync.Once
)

// CatalogClient reads the category/product catalog used by the tagging
// wizard. Read paths are cached so back-navigation between wizard steps
// does not refetch; creating a product invalidates its category's list.
type CatalogClient struct {
	api   *APIClient
	cache *gocache.Cache
}

func GetCatalogClient() *CatalogClient {
	catalogOnce.Do(func() {
		catalogInstance = NewCatalogClient(GetAPIClient())
	})
	return catalogInstance
}

func NewCatalogClient(api *APIClient) *CatalogClient {
	return &CatalogClient{
		api:   api,
		cache: gocache.New(CATALOG_CACHE_TTL, CATALOG_CACHE_SWEEP),
	}
}

func (c *CatalogClient) GetCategories(token string) ([]models.Category, error) {
	if cached, found := c.cache.Get(cacheKeyCategories); found {
		return cached.([]models.Category), nil
	}

	var categories []models.Category
	if err := c.api.getJSON(c.api.Endpoints.Categories, token, &categories, MSG_CATEGORIES_LOAD); err != nil {
		return nil, err
	}

	slog.Info("[CatalogClient] Loaded categories", slog.Int("count", len(categories)))
	c.cache.Set(cacheKeyCategories, categories, gocache.DefaultExpiration)
	return categories, nil
}

func (c *CatalogClient) GetProductsByCategory(token string, categoryID int64) ([]models.Product, error) {
	key := productCacheKey(categoryID)
	if cached, found := c.cache.Get(key); found {
		return cached.([]models.Product), nil
	}

	var products []models.Product
	endpoint := c.api.Endpoints.ProductsByCategory(categoryID)
	if err := c.api.getJSON(endpoint, token, &products, MSG_PRODUCTS_LOAD); err != nil {
		return nil, err
	}

	slog.Info("[CatalogClient] Loaded products",
		slog.Int64("categoria_id", categoryID),
		slog.Int("count", len(products)))
	c.cache.Set(key, products, gocache.DefaultExpiration)
	return products, nil
}

func (c *CatalogClient) CreateProduct(token, name string, categoryID int64) (models.Product, error) {
	req := models.CreateProductRequest{
		NombreProducto: name,
		CategoriaID:    categoryID,
	}

	var product models.Product
	if err := c.api.postJSON(c.api.Endpoints.Products, token, req, &product, MSG_PRODUCT_CREATE); err != nil {
		return models.Product{}, err
	}

	slog.Info("[CatalogClient] Created product",
		slog.Int64("producto_id", product.ProductoID),
		slog.Int64("categoria_id", categoryID))

	c.cache.Delete(productCacheKey(categoryID))
	c.cache.Delete(cacheKeyCategories)
	return product, nil
}

func productCacheKey(categoryID int64) string {
	return cacheKeyProductPrefix + strconv.FormatInt(categoryID, 10)
}

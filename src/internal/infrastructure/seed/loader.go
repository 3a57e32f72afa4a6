package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/jackyeh168/product_store/src/internal/domain/product"
	"github.com/jackyeh168/product_store/src/internal/domain/promotion"
	"github.com/jackyeh168/product_store/src/internal/domain/store"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// 種子檔錯誤（Build 以 %w 包裝，附上出錯的促銷 ID 或商品名稱）
var (
	ErrUnknownProductKind = errors.New("unknown product kind")
	ErrUnknownPromotion   = errors.New("unknown promotion reference")
	ErrDuplicatePromotion = errors.New("duplicate promotion id")
	ErrMissingPercent     = errors.New("percent_discount requires percent")
	ErrUnsupportedField   = errors.New("field not supported for this kind")
)

// LoadFile 讀取並解析種子檔
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}

	return Parse(data)
}

// Parse 解析 YAML 種子並套用預設值（未指定 kind 視為 regular）
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// Default 內嵌的示範目錄
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

func applyDefaults(c *Catalog) {
	for i := range c.Products {
		if c.Products[i].Kind == "" {
			c.Products[i].Kind = string(product.KindRegular)
		}
	}
}

// Build 依種子建立目錄
//
// 同一促銷 ID 只建立一個實例，所有參照它的商品共用。
// 不適用於該種類的欄位（如 unlimited 的 quantity）視為錯誤，不會被靜默忽略
func (c *Catalog) Build() (*store.Store, error) {
	promos := make(map[string]promotion.Promotion, len(c.Promotions))
	for _, spec := range c.Promotions {
		if _, exists := promos[spec.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePromotion, spec.ID)
		}
		promo, err := buildPromotion(spec)
		if err != nil {
			return nil, fmt.Errorf("promotion %q: %w", spec.ID, err)
		}
		promos[spec.ID] = promo
	}

	products := make([]*product.Product, 0, len(c.Products))
	for _, spec := range c.Products {
		p, err := buildProduct(spec)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", spec.Name, err)
		}

		if spec.Promotion != "" {
			promo, ok := promos[spec.Promotion]
			if !ok {
				return nil, fmt.Errorf("product %q: %w: %q", spec.Name, ErrUnknownPromotion, spec.Promotion)
			}
			p.SetPromotion(promo)
		}
		products = append(products, p)
	}

	return store.New(products...), nil
}

func buildPromotion(spec PromotionSpec) (promotion.Promotion, error) {
	kind := promotion.Kind(spec.Kind)
	percent := decimal.Zero
	switch {
	case kind == promotion.KindPercentDiscount && spec.Percent == nil:
		return nil, ErrMissingPercent
	case kind == promotion.KindPercentDiscount:
		percent = spec.Percent.Decimal
	case spec.Percent != nil:
		return nil, fmt.Errorf("%w: percent on %s", ErrUnsupportedField, spec.Kind)
	}
	return promotion.FromKind(kind, spec.Name, percent)
}

func buildProduct(spec ProductSpec) (*product.Product, error) {
	kind := product.Kind(spec.Kind)
	if spec.OrderMax != 0 && kind != product.KindCapped {
		return nil, fmt.Errorf("%w: order_max on %s", ErrUnsupportedField, spec.Kind)
	}

	switch kind {
	case product.KindRegular:
		return product.New(spec.Name, spec.Price.Decimal, spec.Quantity)
	case product.KindUnlimited:
		if spec.Quantity != 0 {
			return nil, fmt.Errorf("%w: quantity on %s", ErrUnsupportedField, spec.Kind)
		}
		return product.NewUnlimited(spec.Name, spec.Price.Decimal)
	case product.KindCapped:
		return product.NewCapped(spec.Name, spec.Price.Decimal, spec.Quantity, spec.OrderMax)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProductKind, spec.Kind)
	}
}

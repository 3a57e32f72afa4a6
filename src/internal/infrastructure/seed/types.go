package seed

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Catalog 目錄種子檔的頂層結構
type Catalog struct {
	Promotions []PromotionSpec `yaml:"promotions"`
	Products   []ProductSpec   `yaml:"products"`
}

// PromotionSpec 一個促銷定義；商品以 ID 參照，同一 ID 共用同一個實例
//
// Percent 只用於 percent_discount，且此時必填
type PromotionSpec struct {
	ID      string  `yaml:"id"`
	Kind    string  `yaml:"kind"`
	Name    string  `yaml:"name"`
	Percent *Amount `yaml:"percent,omitempty"`
}

// ProductSpec 一個商品定義
//
// Kind: regular（預設）/ unlimited / capped
// Quantity 不適用於 unlimited；OrderMax 只適用於 capped
type ProductSpec struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind,omitempty"`
	Price     Amount `yaml:"price"`
	Quantity  int    `yaml:"quantity,omitempty"`
	OrderMax  int    `yaml:"order_max,omitempty"`
	Promotion string `yaml:"promotion,omitempty"`
}

// Amount 以 decimal 解析的 YAML 數值（接受 1450、12.5、"12.50"）
type Amount struct {
	decimal.Decimal
}

// UnmarshalYAML 實現 yaml.Unmarshaler（只接受純量節點）
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got %s", node.Line, nodeKind(node))
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q: %w", node.Line, node.Value, err)
	}
	a.Decimal = d
	return nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

package dictionary

import "strings"

// Category is one of the five fixed disposal categories a record can
// carry after normalization.
type Category string

const (
	CategoryBurnable    Category = "燃やすごみ"
	CategoryNonBurnable Category = "燃やせないごみ"
	CategoryRecyclable  Category = "リサイクル"
	CategoryOversized   Category = "粗大ごみ"
	CategoryOther       Category = "その他"
)

// synonyms maps alternate municipal spellings onto canonical categories.
// Exact match only: the vocabulary is a closed set of waste terms, so
// fuzzy or partial matching would only invite misclassification.
var synonyms = map[string]Category{
	"燃えるごみ": CategoryBurnable,
	"可燃ごみ":  CategoryBurnable,
	"もやすごみ": CategoryBurnable,

	"燃やさないごみ": CategoryNonBurnable,
	"不燃ごみ":    CategoryNonBurnable,

	"資源ごみ":        CategoryRecyclable,
	"資源ゴミ":        CategoryRecyclable,
	"資源":          CategoryRecyclable,
	"びん":          CategoryRecyclable,
	"ビン":          CategoryRecyclable,
	"缶":           CategoryRecyclable,
	"カン":          CategoryRecyclable,
	"ペットボトル":      CategoryRecyclable,
	"プラスチック製容器包装": CategoryRecyclable,
}

// Normalize maps a raw category string onto the canonical five-value
// set. Total and deterministic: anything not in the synonym table and
// not already canonical comes back as CategoryOther.
func Normalize(raw string) Category {
	s := strings.TrimSpace(raw)
	if c, ok := synonyms[s]; ok {
		return c
	}
	switch Category(s) {
	case CategoryBurnable, CategoryNonBurnable, CategoryRecyclable, CategoryOversized:
		return Category(s)
	}
	return CategoryOther
}

package domain

import "fmt"

// Category - основной раздел каталога, определяет сегмент URL бэкенда
type Category string

const (
	CategoryDrink  Category = "drink"
	CategoryEat    Category = "eat"
	CategoryFun    Category = "fun"
	CategoryNearby Category = "filter-nearby"

	DefaultCategory = CategoryDrink
)

// MainCategories - разделы, доступные в панели категорий
var MainCategories = []Category{CategoryDrink, CategoryEat, CategoryFun}

// PlaceCategory - метка категории, под которой бэкенд хранит место
type PlaceCategory string

const (
	PlaceCategoryDrink PlaceCategory = "prendre_un_verre"
	PlaceCategoryEat   PlaceCategory = "manger_ensemble"
	PlaceCategoryFun   PlaceCategory = "partager_une_activité"
)

// IsMain сообщает, является ли категория одной из drink/eat/fun
func (c Category) IsMain() bool {
	switch c {
	case CategoryDrink, CategoryEat, CategoryFun:
		return true
	}
	return false
}

// Label возвращает подпись раздела для панели категорий
func (c Category) Label() string {
	switch c {
	case CategoryDrink:
		return "Prendre un verre"
	case CategoryEat:
		return "Manger ensemble"
	case CategoryFun:
		return "Partager une activité"
	case CategoryNearby:
		return "À proximité"
	}
	return string(c)
}

// PlaceCategory maps a browse category to the stored label. Anything that is
// not a main category maps to the empty label.
func (c Category) PlaceCategory() PlaceCategory {
	switch c {
	case CategoryDrink:
		return PlaceCategoryDrink
	case CategoryEat:
		return PlaceCategoryEat
	case CategoryFun:
		return PlaceCategoryFun
	}
	return ""
}

// ParseMainCategory разбирает категорию из запроса; filter-nearby выбрать напрямую нельзя
func ParseMainCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsMain() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether p is one of the stored labels.
func (p PlaceCategory) Valid() bool {
	switch p {
	case PlaceCategoryDrink, PlaceCategoryEat, PlaceCategoryFun:
		return true
	}
	return false
}

package domain

// QuickFilter - кнопка быстрого фильтра раздела с одной парой key:value
type QuickFilter struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Key      string   `json:"filterCategorieKey"`
	Value    string   `json:"filterCategorieValue"`
	Category Category `json:"categorie"`
}

// Filter возвращает пару key:value кнопки
func (q QuickFilter) Filter() Filter {
	return Filter{Key: q.Key, Value: q.Value}
}

var drinkQuickFilters = []QuickFilter{
	{ID: 1, Name: "Bar d'hôtel", Key: "Type de lieu", Value: "Bar d'hôtel", Category: CategoryDrink},
	{ID: 2, Name: "Branché", Key: "Ambiance", Value: "Branchée", Category: CategoryDrink},
	{ID: 3, Name: "Instagrammable", Key: "Décoration", Value: "Instagrammable", Category: CategoryDrink},
	{ID: 4, Name: "Insolite", Key: "Décoration", Value: "Insolite", Category: CategoryDrink},
	{ID: 5, Name: "Lieu caché", Key: "Type de lieu", Value: "Bar clandestin (speakeasy)", Category: CategoryDrink},
	{ID: 7, Name: "Cocktails artisanaux", Key: "Type de lieu", Value: "Bar d'hôtel", Category: CategoryDrink},
	{ID: 8, Name: "Ambiance bohème", Key: "Ambiance", Value: "bohème", Category: CategoryDrink},
}

var eatQuickFilters = []QuickFilter{
	{ID: 1, Name: "Brunchs", Key: "Options alimentaires", Value: "Brunchs", Category: CategoryEat},
	{ID: 2, Name: "Cuisine française", Key: "Options alimentaires", Value: "Cuisine française", Category: CategoryEat},
	{ID: 3, Name: "Instagrammable", Key: "Décoration", Value: "Instagrammable", Category: CategoryEat},
	{ID: 4, Name: "Thématique", Key: "Décoration", Value: "Thématique", Category: CategoryEat},
}

var funQuickFilters = []QuickFilter{
	{ID: 1, Name: "Art", Key: "Type d'activité", Value: "Art", Category: CategoryFun},
	{ID: 2, Name: "Spectacle", Key: "Activité", Value: "Spectacles en direct", Category: CategoryFun},
}

// QuickFilters returns the button list of a category. filter-nearby has none.
func QuickFilters(c Category) []QuickFilter {
	switch c {
	case CategoryDrink:
		return drinkQuickFilters
	case CategoryEat:
		return eatQuickFilters
	case CategoryFun:
		return funQuickFilters
	}
	return nil
}

// FindQuickFilter ищет кнопку по id внутри списка категории
func FindQuickFilter(c Category, id int) (QuickFilter, bool) {
	for _, q := range QuickFilters(c) {
		if q.ID == id {
			return q, true
		}
	}
	return QuickFilter{}, false
}

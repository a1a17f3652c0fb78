package domain

// FilterGroup - группа значений фильтра для формы и модалки администратора
type FilterGroup struct {
	Key     string   `json:"key"`
	Options []string `json:"options"`
}

// FilterCatalog - полный справочник фильтров в порядке отображения
var FilterCatalog = []FilterGroup{
	{Key: "Type de lieu", Options: []string{
		"Restaurant", "Bar", "Café", "Parc", "Rooftop", "Musée",
		"Bar clandestin (speakeasy)", "Lieu éphémère", "Petite capacité (ambiance intime)", "Bar d'hôtel",
	}},
	{Key: "Ambiance", Options: []string{
		"Romantique", "Détendue", "Branchée", "Intime", "Animée", "Vue panoramique", "Musique live",
	}},
	{Key: "Options alimentaires", Options: []string{
		"Menu végétarien", "Menu végan", "Options sans gluten", "Plats halal", "Cuisine italienne",
		"Cuisine japonaise", "Cuisine française", "Cuisine mexicaine", "Brunch", "Cuisine indienne",
		"Cuisine thaïlandaise", "Cuisine méditerranéenne", "Cuisine libanaise", "Cuisine africaine",
		"Cuisine coréenne", "Cuisine fusion", "Street food", "Menu gastronomique", "Snacks et tapas",
		"Bar à salade",
	}},
	{Key: "Spécificités des boissons", Options: []string{
		"Cocktails artisanaux", "Large choix de vins", "Bières artisanales",
		"Thés et infusions spécialisés", "Café de spécialité", "Mocktails (sans alcool)",
	}},
	{Key: "Préférences musicales", Options: []string{
		"Musique classique", "Jazz", "Rock", "Electro", "Hip-hop/Rap", "Pop", "Pas de musique",
	}},
	{Key: "Services", Options: []string{
		"Privatisation possible", "Lieu ouvert tard", "Serveurs multilingues", "Service en continu",
		"Espaces privés (alcôves, séparés...)", "Tables partagées", "Animaux acceptés",
	}},
	{Key: "Budget", Options: []string{"€ (économique)", "€€ (modéré)", "€€€ (cher)"}},
	{Key: "Activité", Options: []string{
		"Jeux (Billard, Baby-foot, Fléchettes, Jeux de société...)", "Karaoké", "Spectacles en direct",
	}},
	{Key: "Décoration", Options: []string{
		"Moderne", "Vintage", "Cosy", "Luxueuse", "Insolite", "Thématique", "Instagrammable",
	}},
	{Key: "Niveau de bruit", Options: []string{"Calme", "Modéré", "Bruyant"}},
	{Key: "Type d'espace", Options: []string{"Intérieur", "Extérieur", "Terrasse chauffée"}},
	{Key: "Préférences saisonnières", Options: []string{"Adapté à l'hiver", "Idéal pour l'été"}},
	{Key: "Popularité", Options: []string{
		"4+ étoiles", "3+ étoiles", "Lieux tendance", "Nouveautés", "Recommandés",
	}},
}

// PriceRanges - допустимые значения ценового диапазона
var PriceRanges = []string{"7€", "10€", "15€", "20€", "25€", "35€ et +"}

// Form slot counts.
const (
	TipSlots       = 4
	MediaLinkSlots = 8
	PhotoSlots     = 4
)

// IsPriceRange проверяет значение по справочнику
func IsPriceRange(s string) bool {
	for _, p := range PriceRanges {
		if p == s {
			return true
		}
	}
	return false
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTips_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Tips
	}{
		{name: "array", raw: `["Réserver","Venir tôt"]`, expected: Tips{"Réserver", "Venir tôt"}},
		{name: "json string", raw: `"[\"Réserver\",\"\"]"`, expected: Tips{"Réserver", ""}},
		{name: "empty string", raw: `""`, expected: nil},
		{name: "null", raw: `null`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Tips Tips `json:"tips"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"tips":`+tt.raw+`}`), &v))
			assert.Equal(t, tt.expected, v.Tips)
		})
	}
}

func TestVenue_Decode(t *testing.T) {
	raw := `{
		"_id": "65a1",
		"locationName": "Le Syndicat",
		"locationAddress": "51 rue du Faubourg Saint-Denis",
		"postalCode": "75010",
		"locationDescription": "Bar à cocktails. Spiritueux français uniquement.",
		"tips": "[\"Venir tôt\"]",
		"priceRange": "15€",
		"placeCategory": "prendre_un_verre",
		"photos": ["https://img/1.jpg"],
		"keywords": ["cocktail"],
		"filters": ["Ambiance:Branchée", "broken"]
	}`

	var v Venue
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	assert.Equal(t, "65a1", v.ID)
	assert.Equal(t, Tips{"Venir tôt"}, v.Tips)
	assert.Equal(t, "51 rue du Faubourg Saint-Denis 75010", v.FullAddress())
	assert.Equal(t, []string{"https://img/1.jpg", "", "", ""}, v.PhotoSlots())

	parsed, malformed := v.ParsedFilters()
	assert.Equal(t, []Filter{{Key: "Ambiance", Value: "Branchée"}}, parsed)
	assert.Equal(t, []string{"broken"}, malformed)
}

func TestVenue_Fragments(t *testing.T) {
	v := Venue{ID: "1", Address: "old", PostalCode: "75001", Photos: []string{"a"}, Keywords: []string{"k"}}

	updated := v.WithAddress(AddressFragment{Address: "new", PostalCode: "75002"})
	assert.Equal(t, "new", updated.Address)
	assert.Equal(t, "75002", updated.PostalCode)
	assert.Equal(t, "old", v.Address)

	assert.Equal(t, []string{"a"}, v.WithPhotos(PhotosFragment{}).Photos)
	assert.Empty(t, v.WithPhotos(PhotosFragment{Photos: []string{}}).Photos)
	assert.Equal(t, []string{"k", "k"}, v.WithKeywords(KeywordsFragment{Keywords: []string{"k", "k"}}).Keywords)
}

func TestFirstSentence(t *testing.T) {
	assert.Equal(t, "Bar à cocktails....", FirstSentence("Bar à cocktails. Spiritueux français."))
	assert.Equal(t, "Quoi de neuf ?...", FirstSentence("  Quoi de neuf ? Rien."))
	assert.Equal(t, "Sans ponctuation...", FirstSentence("Sans ponctuation "))
}

func TestSubmission_Validate(t *testing.T) {
	valid := Submission{Name: "n", Address: "a", Description: "d", PriceRange: "10€"}
	assert.NoError(t, valid.Validate())

	for _, mutate := range []func(*Submission){
		func(s *Submission) { s.Name = "" },
		func(s *Submission) { s.Address = "" },
		func(s *Submission) { s.Description = "" },
		func(s *Submission) { s.PriceRange = "" },
		func(s *Submission) { s.Filters = []string{"nocolon"} },
		func(s *Submission) { s.PlaceCategory = "bars" },
	} {
		s := valid
		mutate(&s)
		var verr *ValidationError
		assert.ErrorAs(t, s.Validate(), &verr)
	}
}

func TestQuickFilters(t *testing.T) {
	assert.Len(t, QuickFilters(CategoryDrink), 7)
	assert.Len(t, QuickFilters(CategoryEat), 4)
	assert.Len(t, QuickFilters(CategoryFun), 2)
	assert.Empty(t, QuickFilters(CategoryNearby))

	_, ok := FindQuickFilter(CategoryDrink, 6)
	assert.False(t, ok)

	q, ok := FindQuickFilter(CategoryFun, 2)
	require.True(t, ok)
	assert.Equal(t, "Activité:Spectacles en direct", q.Filter().String())
}

func TestCategory_PlaceCategory(t *testing.T) {
	assert.Equal(t, PlaceCategoryDrink, CategoryDrink.PlaceCategory())
	assert.Equal(t, PlaceCategoryEat, CategoryEat.PlaceCategory())
	assert.Equal(t, PlaceCategoryFun, CategoryFun.PlaceCategory())
	assert.Equal(t, PlaceCategory(""), CategoryNearby.PlaceCategory())

	_, err := ParseMainCategory("filter-nearby")
	assert.Error(t, err)
}

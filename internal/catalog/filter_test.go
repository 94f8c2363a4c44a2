package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackstone_back_end/internal/models"
)

func fl(v float64) *float64 { return &v }

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "Classic Leather Wallet", Category: "Accessories", SubCategory: "Wallets", Price: 1250},
		{Name: "Steel Chronograph Watch", Category: "Watches", SubCategory: "Chronograph", Price: 4500, OriginalPrice: fl(5200)},
		{Name: "Canvas Belt", Category: "Accessories", SubCategory: "Belts", Price: 650},
		{Name: "Minimal Quartz Watch", Category: "Watches", SubCategory: "Quartz", Price: 1800},
		{Name: "Travel Duffel Bag", Category: "Bags", Price: 3200, OriginalPrice: fl(3200)},
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	products := sampleProducts()
	got := Filter(products, Criteria{})
	assert.Equal(t, names(products), names(got))
}

func TestFilterIsOrderPreservingSubset(t *testing.T) {
	products := sampleProducts()

	cases := []Criteria{
		{Query: "watch"},
		{Category: "Accessories"},
		{HotOnly: true},
		{MinPrice: fl(1000), MaxPrice: fl(4000)},
		{Query: "a", Category: "Accessories", MaxPrice: fl(1300)},
	}

	for _, crit := range cases {
		got := Filter(products, crit)
		// sous-séquence : chaque élément retrouvé dans l'ordre d'origine
		idx := 0
		for _, p := range got {
			found := false
			for ; idx < len(products); idx++ {
				if products[idx].Name == p.Name {
					found = true
					idx++
					break
				}
			}
			require.True(t, found, "résultat hors ordre pour %+v", crit)
		}
	}
}

func TestFilterQueryMatchesNameAndCategory(t *testing.T) {
	products := sampleProducts()

	got := Filter(products, Criteria{Query: "WATCH"})
	assert.Equal(t, []string{"Steel Chronograph Watch", "Minimal Quartz Watch"}, names(got))

	// correspond aussi sur la catégorie
	got = Filter(products, Criteria{Query: "bags"})
	assert.Equal(t, []string{"Travel Duffel Bag"}, names(got))
}

func TestFilterCategorySentinel(t *testing.T) {
	products := sampleProducts()

	all := Filter(products, Criteria{Category: All})
	none := Filter(products, Criteria{})
	assert.Equal(t, names(none), names(all), "la sentinelle All doit équivaloir à l'absence de filtre")

	sub := Filter(products, Criteria{Category: "Watches", SubCategory: All})
	assert.Equal(t, []string{"Steel Chronograph Watch", "Minimal Quartz Watch"}, names(sub))
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{Category: "Accessories", SubCategory: "Belts"})
	assert.Equal(t, []string{"Canvas Belt"}, names(got))
}

func TestHotProducts(t *testing.T) {
	got := HotProducts(sampleProducts())
	// Travel Duffel Bag a un prix barré égal, pas strictement supérieur → exclu
	assert.Equal(t, []string{"Steel Chronograph Watch"}, names(got))
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{MinPrice: fl(650), MaxPrice: fl(1800)})
	assert.Equal(t, []string{"Classic Leather Wallet", "Canvas Belt", "Minimal Quartz Watch"}, names(got))
}

func TestFilterEmptyResultIsNotNil(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{Query: "inexistant"})
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestFilterConjunction(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{Category: "Watches", HotOnly: true})
	assert.Equal(t, []string{"Steel Chronograph Watch"}, names(got))

	got = Filter(sampleProducts(), Criteria{Category: "Watches", HotOnly: true, MaxPrice: fl(4000)})
	assert.Len(t, got, 0)
}

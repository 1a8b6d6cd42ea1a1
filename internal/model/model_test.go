package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeContent(t *testing.T) {
	defaults := DefaultSiteContent()

	merged := MergeContent(defaults, []ContentEntry{
		{ContentKey: "site_title", ContentValue: "Crumbs & Co"},
		{ContentKey: "tagline", ContentValue: ""},
		{ContentKey: "not_a_key", ContentValue: "ignored"},
	})

	assert.Equal(t, "Crumbs & Co", merged.SiteTitle)
	assert.Equal(t, defaults.Tagline, merged.Tagline, "empty stored values fall back to the default")
	assert.Equal(t, defaults.WhatsAppNumber, merged.WhatsAppNumber)
}

func TestSiteContentKeys(t *testing.T) {
	var c SiteContent
	for _, key := range ContentKeys {
		require.True(t, IsContentKey(key), key)
		require.True(t, c.Set(key, "v-"+key))
		assert.Equal(t, "v-"+key, c.Get(key))
	}
	assert.False(t, c.Set("unknown", "x"))
	assert.Equal(t, "", c.Get("unknown"))
}

func TestProductPatch(t *testing.T) {
	name := "Ghost Brownies"
	label := "   "
	stock := 0
	patch := ProductPatch{Name: &name, PriceLabel: &label, Stock: &stock}

	cols := patch.Columns()
	assert.Len(t, cols, 3)
	assert.Equal(t, "Ghost Brownies", cols["name"])
	assert.Nil(t, cols["price_label"])
	assert.Equal(t, 0, cols["stock"])

	old := "$18 pan"
	p := Product{Name: "Brownies", PriceLabel: &old, Stock: 4, Price: 18}
	patch.Apply(&p)
	assert.Equal(t, "Ghost Brownies", p.Name)
	assert.Nil(t, p.PriceLabel)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, 18.0, p.Price)
}

func TestSummarizeProducts(t *testing.T) {
	products := []Product{
		{Stock: 5, IsAvailable: true},
		{Stock: 0, IsAvailable: true},
		{Stock: 3, IsAvailable: false},
		{Stock: 1, IsAvailable: true},
	}

	s := SummarizeProducts(products, 2)
	assert.Equal(t, Stats{PendingOrders: 2, TotalProducts: 4, AvailableProducts: 2, SoldOutProducts: 2}, s)
}

func TestStatusAndContactValidation(t *testing.T) {
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.True(t, ContactWhatsApp.Valid())
	assert.False(t, ContactChannel("pigeon").Valid())
}

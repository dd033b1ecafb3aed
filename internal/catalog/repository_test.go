package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository_SeedLoads(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 7)

	p, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Quantum X-9000", p.Name)
	assert.True(t, p.IsNew)
	assert.Equal(t, MediaModel, p.Media[0].Kind)
}

func TestNewRepository_GetByIDNotFound(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestNewRepository_RejectsMalformedEntries(t *testing.T) {
	cases := map[string]string{
		"negative price": `[{"id":"x","name":"Bad","price":-1,"category":"Running","color":"Black",
			"sizes":["9"],"gender":"Men","rating":4,"review_count":1,"description":"d",
			"media":[{"kind":"image","src":"/x.png"}]}]`,
		"missing sizes": `[{"id":"x","name":"Bad","price":10,"category":"Running","color":"Black",
			"sizes":[],"gender":"Men","rating":4,"review_count":1,"description":"d",
			"media":[{"kind":"image","src":"/x.png"}]}]`,
		"rating out of range": `[{"id":"x","name":"Bad","price":10,"category":"Running","color":"Black",
			"sizes":["9"],"gender":"Men","rating":5.5,"review_count":1,"description":"d",
			"media":[{"kind":"image","src":"/x.png"}]}]`,
		"unknown gender": `[{"id":"x","name":"Bad","price":10,"category":"Running","color":"Black",
			"sizes":["9"],"gender":"Kids","rating":4,"review_count":1,"description":"d",
			"media":[{"kind":"image","src":"/x.png"}]}]`,
		"unknown media kind": `[{"id":"x","name":"Bad","price":10,"category":"Running","color":"Black",
			"sizes":["9"],"gender":"Men","rating":4,"review_count":1,"description":"d",
			"media":[{"kind":"video","src":"/x.mp4"}]}]`,
		"no media": `[{"id":"x","name":"Bad","price":10,"category":"Running","color":"Black",
			"sizes":["9"],"gender":"Men","rating":4,"review_count":1,"description":"d","media":[]}]`,
		"duplicate id": `[
			{"id":"x","name":"A","price":10,"category":"Running","color":"Black","sizes":["9"],
			 "gender":"Men","rating":4,"review_count":1,"description":"d",
			 "media":[{"kind":"image","src":"/x.png"}]},
			{"id":"x","name":"B","price":10,"category":"Running","color":"Black","sizes":["9"],
			 "gender":"Men","rating":4,"review_count":1,"description":"d",
			 "media":[{"kind":"image","src":"/x.png"}]}]`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newRepositoryFrom([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestFacets_DerivedFromCatalog(t *testing.T) {
	products := testCatalog(t)

	opts := Facets(products)

	assert.Equal(t, []string{"Running", "Casual", "Athletic", "Limited"}, opts.Categories)
	assert.Equal(t, []string{"Black", "Brown", "Blue", "Green", "Red", "White"}, opts.Colors)
	assert.Equal(t, []string{"6", "7", "8", "9", "10", "11", "12"}, opts.Sizes)
	assert.Equal(t, []string{"Men", "Women", "Unisex"}, opts.Genders)
}

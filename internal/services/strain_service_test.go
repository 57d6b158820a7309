package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
	"leafmarket/internal/services"
)

func seedCatalog(t *testing.T, repo *repositories.MockStrainRepository) {
	t.Helper()
	strains := []models.Strain{
		{Name: "Sour Diesel", Category: models.CategorySativa, Price: 45, Description: "Energizing diesel aroma", SellerID: 1, Active: true},
		{Name: "Granddaddy Purple", Category: models.CategoryIndica, Price: 55, Description: "Deep grape and berry notes", SellerID: 1, Active: true},
		{Name: "Blue Dream", Category: models.CategoryHybrid, Price: 40, Description: "Balanced relaxation", SellerID: 2, Active: true},
		{Name: "Zkittlez Runtz", Category: models.CategoryExotic, Price: 85, Description: "Candy-sweet exotic cross", SellerID: 2, Active: false},
	}
	for i := range strains {
		assert.NoError(t, repo.Create(&strains[i]))
	}
}

func TestStrainService_GetActiveStrains(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	strains, err := service.GetActiveStrains()
	assert.NoError(t, err)
	assert.Len(t, strains, 3)
	for _, s := range strains {
		assert.True(t, s.Active)
	}
}

func TestStrainService_OwnershipIsolation(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	// Seller 2's list includes their inactive listing and nothing of
	// seller 1's.
	strains, err := service.GetSellerStrains(2)
	assert.NoError(t, err)
	assert.Len(t, strains, 2)
	for _, s := range strains {
		assert.Equal(t, 2, s.SellerID)
	}

	strains, err = service.GetSellerStrains(1)
	assert.NoError(t, err)
	assert.Len(t, strains, 2)
	for _, s := range strains {
		assert.Equal(t, 1, s.SellerID)
		assert.True(t, s.Active)
	}
}

func TestStrainService_FilterByCategoryAndPriceBand(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	// The sativa at price 45 lands in the 0-50 band...
	strains, err := service.FilterStrains(services.StrainFilter{Category: "sativa", PriceRange: "0-50"})
	assert.NoError(t, err)
	assert.Len(t, strains, 1)
	assert.Equal(t, "Sour Diesel", strains[0].Name)

	// ...but not in 50-100.
	strains, err = service.FilterStrains(services.StrainFilter{Category: "sativa", PriceRange: "50-100"})
	assert.NoError(t, err)
	assert.Empty(t, strains)

	// "50+" means an unbounded upper band. The 85-price listing is
	// inactive, so only the indica at 55 matches.
	strains, err = service.FilterStrains(services.StrainFilter{PriceRange: "50+"})
	assert.NoError(t, err)
	assert.Len(t, strains, 1)
	assert.Equal(t, "Granddaddy Purple", strains[0].Name)
}

func TestStrainService_FilterByTerm(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	// Term matches name or description, case-insensitively.
	strains, err := service.FilterStrains(services.StrainFilter{Term: "DIESEL"})
	assert.NoError(t, err)
	assert.Len(t, strains, 1)

	strains, err = service.FilterStrains(services.StrainFilter{Term: "grape"})
	assert.NoError(t, err)
	assert.Len(t, strains, 1)
	assert.Equal(t, "Granddaddy Purple", strains[0].Name)

	// Category "all" is no filter.
	strains, err = service.FilterStrains(services.StrainFilter{Category: "all"})
	assert.NoError(t, err)
	assert.Len(t, strains, 3)
}

func TestStrainService_FilterMalformedPriceRange(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	_, err := service.FilterStrains(services.StrainFilter{PriceRange: "cheap"})
	assert.ErrorIs(t, err, models.ErrIncompleteForm)
}

func TestStrainService_DeactivateHidesFromBrowseOnly(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	inactive := false
	updated, err := service.UpdateStrain(1, models.StrainUpdate{Active: &inactive})
	assert.NoError(t, err)
	assert.False(t, updated.Active)

	strains, err := service.GetActiveStrains()
	assert.NoError(t, err)
	assert.Len(t, strains, 2)

	// Still visible on the owner's dashboard.
	strains, err = service.GetSellerStrains(1)
	assert.NoError(t, err)
	assert.Len(t, strains, 2)
}

func TestStrainService_CreateAssignsNextID(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	strain := &models.Strain{
		Name: "Northern Lights", Category: models.CategoryIndica,
		Price: 50, SellerID: 1, Active: true,
	}
	assert.NoError(t, service.CreateStrain(strain))
	assert.Equal(t, 5, strain.ID)
	assert.WithinDuration(t, time.Now(), strain.CreatedAt, time.Minute)
	assert.Equal(t, strain.CreatedAt, strain.UpdatedAt)
}

func TestStrainService_UpdatePreservesIdentityAndStampsTime(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)
	seedCatalog(t, repo)

	before, err := service.GetStrainByID(2)
	assert.NoError(t, err)

	price := 60.0
	updated, err := service.UpdateStrain(2, models.StrainUpdate{Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, before.SellerID, updated.SellerID)
	assert.Equal(t, 60.0, updated.Price)
	assert.Equal(t, before.Name, updated.Name)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestStrainService_NotFound(t *testing.T) {
	repo := repositories.NewMockStrainRepository()
	service := services.NewStrainService(repo, nil)

	_, err := service.GetStrainByID(99)
	assert.ErrorIs(t, err, models.ErrStrainNotFound)

	_, err = service.UpdateStrain(99, models.StrainUpdate{})
	assert.ErrorIs(t, err, models.ErrStrainNotFound)

	err = service.DeleteStrain(99)
	assert.ErrorIs(t, err, models.ErrStrainNotFound)
}

func TestStrain_DisplayClampIsDisplayOnly(t *testing.T) {
	strain := models.Strain{THCLevel: 130, CBDLevel: -2}

	// Stored values keep their raw magnitude; only the display helpers clamp.
	assert.Equal(t, 100.0, strain.DisplayTHC())
	assert.Equal(t, 0.0, strain.DisplayCBD())
	assert.Equal(t, 130.0, strain.THCLevel)
	assert.Equal(t, -2.0, strain.CBDLevel)
}

func TestBadgeVariant_UnknownCategoryFallsBack(t *testing.T) {
	assert.Equal(t, "sativa", models.BadgeVariant("sativa"))
	assert.Equal(t, "default", models.BadgeVariant("moonrock"))
	assert.Equal(t, "default", models.BadgeVariant(""))
}

package ranking_test

import (
	"strompris/internal/models"
	"strompris/internal/ranking"
	"strompris/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopDeals_SortedAscendingAndLimited(t *testing.T) {
	catalog := []models.Contract{
		testutil.SpotContract("Expensive Spot", 0.10, 0.02, 99),
		testutil.SpotContract("Cheap Spot", 0.01, 0.01, 0),
		testutil.SpotContract("Rebate Spot", -0.02, 0, 19),
		testutil.SpotContract("Mid Spot", 0.05, 0.01, 39),
	}

	deals := ranking.TopDeals(catalog, "NO1", "", 3, 16000, 0.80, time.January)

	require.Len(t, deals, 3)
	for i := 1; i < len(deals); i++ {
		assert.LessOrEqual(t, deals[i-1].Cost.TotalMonthly, deals[i].Cost.TotalMonthly)
	}
	assert.Equal(t, "Rebate Spot", deals[0].Contract.Name)
}

func TestTopDeals_FiltersByArea(t *testing.T) {
	everywhere := testutil.SpotContract("Everywhere", 0.05, 0, 0)
	northOnly := testutil.SpotContract("North Only", 0.01, 0, 0)
	northOnly.SalesNetworks = []models.SalesNetwork{{AreaCode: "NO4"}}
	wholeCountry := testutil.SpotContract("Whole Country", 0.03, 0, 0)
	wholeCountry.SalesNetworks = []models.SalesNetwork{{AreaCode: models.WholeCountryCode}}

	deals := ranking.TopDeals([]models.Contract{everywhere, northOnly, wholeCountry},
		"NO1", "", 10, 16000, 0.80, time.January)

	require.Len(t, deals, 2)
	names := []string{deals[0].Contract.Name, deals[1].Contract.Name}
	assert.NotContains(t, names, "North Only")
}

func TestTopDeals_FiltersByCustomerType(t *testing.T) {
	open := testutil.SpotContract("Open", 0.05, 0, 0)
	private := testutil.SpotContract("Private Only", 0.01, 0, 0)
	private.CustomerType = models.CustomerTypePrivate
	business := testutil.SpotContract("Business Only", 0.02, 0, 0)
	business.CustomerType = models.CustomerTypeBusiness

	deals := ranking.TopDeals([]models.Contract{open, private, business},
		"NO1", models.CustomerTypeBusiness, 10, 16000, 0.80, time.January)

	require.Len(t, deals, 2)
	for _, deal := range deals {
		assert.NotEqual(t, "Private Only", deal.Contract.Name)
	}
}

func TestTopDeals_TiesKeepCatalogOrder(t *testing.T) {
	first := testutil.SpotContract("First", 0.05, 0, 0)
	second := testutil.SpotContract("Second", 0.05, 0, 0)
	third := testutil.SpotContract("Third", 0.05, 0, 0)

	deals := ranking.TopDeals([]models.Contract{first, second, third},
		"NO1", "", 10, 16000, 0.80, time.January)

	require.Len(t, deals, 3)
	assert.Equal(t, "First", deals[0].Contract.Name)
	assert.Equal(t, "Second", deals[1].Contract.Name)
	assert.Equal(t, "Third", deals[2].Contract.Name)
}

func TestTopDeals_MixedContractTypes(t *testing.T) {
	spot := testutil.SpotContract("Spot", 0.03, 0.01, 39)
	fixed := testutil.FixedContract("Fixed", 0.75, 39)

	deals := ranking.TopDeals([]models.Contract{spot, fixed},
		"NO1", "", 10, 16000, 0.80, time.January)

	require.Len(t, deals, 2)
	// Fixed at 0.75 beats spot at 0.84 for the same fees
	assert.Equal(t, "Fixed", deals[0].Contract.Name)
	assert.Equal(t, "Spot", deals[1].Contract.Name)
}

func TestTopDeals_EmptyResultIsNotAnError(t *testing.T) {
	restricted := testutil.SpotContract("North Only", 0.01, 0, 0)
	restricted.SalesNetworks = []models.SalesNetwork{{AreaCode: "NO4"}}

	deals := ranking.TopDeals([]models.Contract{restricted}, "NO1", "", 10, 16000, 0.80, time.January)
	assert.Empty(t, deals)

	deals = ranking.TopDeals(nil, "NO1", "", 10, 16000, 0.80, time.January)
	assert.Empty(t, deals)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strompris/internal/aggregator"
	"strompris/internal/cache"
	"strompris/internal/deals"
	"strompris/internal/models"
	"strompris/internal/prices"
	"strompris/internal/testutil"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dealsNow = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func dealsClock() time.Time { return dealsNow }

func newDealsRouter(source *testutil.StubPriceSource, catalog ...models.Contract) *gin.Engine {
	contracts := testutil.NewStubContractRepository(catalog...)
	cacheSvc := cache.NewService(cache.NewMemoryStore()).WithClock(dealsClock)
	priceSvc := prices.New(aggregator.New(source).WithClock(dealsClock), cacheSvc, 24*time.Hour, 1).WithClock(dealsClock)
	svc := deals.New(contracts, priceSvc, cacheSvc, 16*time.Hour).WithClock(dealsClock)

	router := gin.New()
	router.GET("/deals", NewDealsHandler(svc).GetRankedDeals)
	return router
}

func TestGetRankedDeals(t *testing.T) {
	source := testutil.NewStubPriceSource()
	source.AddDay("NO1", dealsNow, 0.80)
	router := newDealsRouter(source,
		testutil.SpotContract("Cheap", 0.01, 0, 0),
		testutil.SpotContract("Pricey", 0.10, 0.02, 49),
	)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/deals?area=NO1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.RankedDealsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NO1", resp.AreaCode)
	assert.InDelta(t, 16000, resp.AnnualConsumption, 1e-9)
	assert.InDelta(t, 0.80, resp.ReferencePrice, 1e-9)
	require.Len(t, resp.Deals, 2)
	assert.Equal(t, "Cheap", resp.Deals[0].Contract.Name)
	assert.LessOrEqual(t, resp.Deals[0].Cost.TotalMonthly, resp.Deals[1].Cost.TotalMonthly)
}

func TestGetRankedDeals_DefaultLimitApplied(t *testing.T) {
	source := testutil.NewStubPriceSource()
	source.AddDay("NO1", dealsNow, 0.80)
	catalog := make([]models.Contract, 0, 8)
	for i := 0; i < 8; i++ {
		catalog = append(catalog, testutil.SpotContract("Contract", float64(i)*0.01, 0, 0))
	}
	router := newDealsRouter(source, catalog...)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/deals?area=NO1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.RankedDealsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Deals, 5)
}

func TestGetRankedDeals_InvalidParameters(t *testing.T) {
	router := newDealsRouter(testutil.NewStubPriceSource())

	tests := []struct {
		name  string
		query string
	}{
		{"missing area", ""},
		{"unknown area", "area=SE1"},
		{"invalid customer type", "area=NO1&customer_type=municipal"},
		{"limit above maximum", "area=NO1&limit=51"},
		{"negative limit", "area=NO1&limit=-1"},
		{"negative consumption", "area=NO1&annual_consumption=-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/deals?"+tt.query, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetRankedDeals_CustomerTypeFilter(t *testing.T) {
	source := testutil.NewStubPriceSource()
	source.AddDay("NO1", dealsNow, 0.80)
	business := testutil.SpotContract("Business Only", 0.01, 0, 0)
	business.CustomerType = models.CustomerTypeBusiness
	router := newDealsRouter(source,
		testutil.SpotContract("Open", 0.05, 0, 0),
		business,
	)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/deals?area=NO1&customer_type=private", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.RankedDealsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Deals, 1)
	assert.Equal(t, "Open", resp.Deals[0].Contract.Name)
}

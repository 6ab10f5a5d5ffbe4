package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"gamestore/src/app/http/dto"
	"gamestore/src/core/domain"
)

func validGame() dto.CreateGameRequest {
	return dto.CreateGameRequest{Name: "Hades", CategoryID: 1, Price: 24.99, ReleaseDate: "2020-09-17"}
}

func TestValidateGameBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateGameRequest)
		field  string
	}{
		{"valid", func(*dto.CreateGameRequest) {}, ""},
		{"price zero", func(r *dto.CreateGameRequest) { r.Price = 0 }, "price"},
		{"price below one", func(r *dto.CreateGameRequest) { r.Price = 0.99 }, "price"},
		{"price one", func(r *dto.CreateGameRequest) { r.Price = 1 }, ""},
		{"price hundred", func(r *dto.CreateGameRequest) { r.Price = 100 }, ""},
		{"price over hundred", func(r *dto.CreateGameRequest) { r.Price = 100.01 }, "price"},
		{"price with cents", func(r *dto.CreateGameRequest) { r.Price = 99.99 }, ""},
		{"price with three decimals", func(r *dto.CreateGameRequest) { r.Price = 24.999 }, "price"},
		{"empty name", func(r *dto.CreateGameRequest) { r.Name = "" }, "name"},
		{"name of 50", func(r *dto.CreateGameRequest) { r.Name = strings.Repeat("a", 50) }, ""},
		{"name of 51", func(r *dto.CreateGameRequest) { r.Name = strings.Repeat("a", 51) }, "name"},
		{"missing category", func(r *dto.CreateGameRequest) { r.CategoryID = 0 }, "categoryId"},
		{"missing date", func(r *dto.CreateGameRequest) { r.ReleaseDate = "" }, "releaseDate"},
		{"bad date", func(r *dto.CreateGameRequest) { r.ReleaseDate = "17/09/2020" }, "releaseDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validGame()
			tc.mutate(&req)

			err := Validate(&req)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, domain.IsValidationError(err), "%v", err)
			assert.Equal(t, tc.field, domain.FieldOf(err))
		})
	}
}

func TestValidateReportsFirstFieldDeterministically(t *testing.T) {
	req := dto.CreateGameRequest{Price: 500}
	for i := 0; i < 5; i++ {
		assert.Equal(t, "name", domain.FieldOf(Validate(&req)))
	}
}

func TestValidateCouponDecimalPlaces(t *testing.T) {
	ok := dto.CouponRequest{CouponCode: "SPRING5", DiscountAmount: 5.25}
	assert.NoError(t, Validate(&ok))

	tooPrecise := dto.CouponRequest{CouponCode: "SPRING5", DiscountAmount: 5.255}
	err := Validate(&tooPrecise)
	assert.Equal(t, "discountAmount", domain.FieldOf(err))
	assert.Contains(t, err.Error(), "at most 2 decimal places")
}

func bindBody(body string) error {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.CreateGameRequest
	return BindJSON(c, &req)
}

func TestBindJSONTranslatesDecodeErrors(t *testing.T) {
	err := bindBody(`{"name":"Hades","categoryId":1,"price":"cheap","releaseDate":"2020-09-17"}`)
	assert.Equal(t, "price", domain.FieldOf(err))

	err = bindBody(`{"name":`)
	assert.Equal(t, "body", domain.FieldOf(err))

	err = bindBody(``)
	assert.Equal(t, "body", domain.FieldOf(err))

	assert.NoError(t, bindBody(`{"name":"Hades","categoryId":1,"price":24.99,"releaseDate":"2020-09-17"}`))
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrUnauthorized, http.StatusUnauthorized},
		{services.ErrInactiveAccount, http.StatusBadRequest},
		{services.ErrEmailTaken, http.StatusBadRequest},
		{fmt.Errorf("%w: too short", services.ErrInvalidPhone), http.StatusBadRequest},
		{services.ErrInvitationNotFound, http.StatusNotFound},
		{services.ErrChildNotFound, http.StatusNotFound},
		{services.ErrProductNotFound, http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		app := fiber.New()
		err := tc.err
		app.Get("/", func(c *fiber.Ctx) error { return respondError(c, err, "Something failed") })

		resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, reqErr)
		assert.Equal(t, tc.code, resp.StatusCode, tc.err.Error())
		if tc.code == http.StatusUnauthorized {
			assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
		}
	}
}

func TestParseAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var req dto.ChildRequest
		if ok, err := parseAndValidate(c, &req); !ok {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	post := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusNoContent, post(`{"full_name":"Luz","birth_date":"2020-02-02","country":"CO"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"full_name":""}`))
	assert.Equal(t, http.StatusBadRequest, post(`{not json`))
}

package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fijnedagvan/dagvan/internal/constants"
)

const testBase = "https://feed.test/jsonscript.php"

func newMockedClient(key string) *Client {
	hc := &http.Client{}
	httpmock.ActivateNonDefault(hc)
	return NewClient(testBase, key, WithHTTPClient(hc))
}

func TestFetchDateSendsAPIKey(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	c := newMockedClient("geheim")

	var gotKey string
	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-01"}},
		func(req *http.Request) (*http.Response, error) {
			gotKey = req.Header.Get(constants.APIKeyHeader)
			return httpmock.NewStringResponse(http.StatusOK, `[{"dag_id":"7"}]`), nil
		})

	body, err := c.FetchDate(context.Background(), "2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, `[{"dag_id":"7"}]`, string(body))
	assert.Equal(t, "geheim", gotKey)
}

func TestFetchOmitsHeaderWithoutKey(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	c := newMockedClient("")

	var gotKey string
	httpmock.RegisterResponder(http.MethodGet, testBase,
		func(req *http.Request) (*http.Response, error) {
			gotKey = req.Header.Get(constants.APIKeyHeader)
			return httpmock.NewStringResponse(http.StatusOK, "[]"), nil
		})

	_, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotKey, "API key header must be omitted when no key is configured")
}

func TestFetchYearAndFunFactsParams(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	c := newMockedClient("")

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"year": {"2026"}},
		httpmock.NewStringResponder(http.StatusOK, "year-body"))
	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"funfacts": {"1"}},
		httpmock.NewStringResponder(http.StatusOK, "facts-body"))

	body, err := c.FetchYear(context.Background(), "2026")
	require.NoError(t, err)
	assert.Equal(t, "year-body", string(body))

	body, err = c.FetchFunFacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "facts-body", string(body))
}

func TestFetchNonSuccessStatus(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	c := newMockedClient("")

	httpmock.RegisterResponder(http.MethodGet, testBase,
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	_, err := c.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchImage(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	c := newMockedClient("")

	imageURL := constants.ImageBaseURL + "7.jpg"
	httpmock.RegisterResponder(http.MethodGet, imageURL,
		httpmock.NewBytesResponder(http.StatusOK, []byte{0xff, 0xd8}))

	img, err := c.FetchImage(context.Background(), imageURL)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, img)

	_, err = c.FetchImage(context.Background(), "")
	assert.Error(t, err, "empty image URL must be rejected")

	httpmock.RegisterResponder(http.MethodGet, imageURL,
		httpmock.NewStringResponder(http.StatusNotFound, ""))
	_, err = c.FetchImage(context.Background(), imageURL)
	assert.Error(t, err)
}

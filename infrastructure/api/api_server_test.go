package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen"
	"github.com/adgenhq/adgen/infrastructure/api/v1/dto"
)

func newTestServer(t *testing.T) (*httptest.Server, *adgen.Client) {
	t.Helper()

	client, err := adgen.New(
		adgen.WithDataDir(t.TempDir()),
		adgen.WithDatabaseURL("sqlite:///:memory:"),
		adgen.WithLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))),
		adgen.WithWorkerPollPeriod(time.Hour),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	server := httptest.NewServer(NewAPIServer(client).Handler())
	t.Cleanup(server.Close)
	return server, client
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestHealthEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{"/", "/health", "/healthz"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "ok", body["status"])
	}
}

func TestBrandEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/brands", dto.BrandCreateRequest{
		Name:            "Acme",
		PrimaryColorHex: "#FF8800",
		ToneOfVoice:     "bold",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.BrandResponse
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.Data.ID)
	assert.Equal(t, "Acme", created.Data.Name)

	resp, err := http.Get(server.URL + "/api/v1/brands")
	require.NoError(t, err)
	var list dto.BrandListResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Data, 1)

	// Invalid color is a validation error.
	resp = postJSON(t, server.URL+"/api/v1/brands", dto.BrandCreateRequest{
		Name:            "Bad",
		PrimaryColorHex: "orange",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/brands/999")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/brands/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	server, client := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/brands", dto.BrandCreateRequest{
		Name:            "Acme",
		PrimaryColorHex: "#FF8800",
	})
	var brandResp dto.BrandResponse
	decodeBody(t, resp, &brandResp)

	resp = postJSON(t, server.URL+"/api/v1/campaigns", dto.CampaignCreateRequest{
		BrandID:        brandResp.Data.ID,
		Name:           "Summer Launch",
		TargetRegion:   "US",
		TargetAudience: "runners",
		Message:        "Run the city",
		Products: []dto.ProductCreateRequest{
			{Name: "Trail Shoe", Description: "lightweight"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var campaignResp dto.CampaignResponse
	decodeBody(t, resp, &campaignResp)
	campaignID := campaignResp.Data.ID
	assert.Equal(t, "draft", campaignResp.Data.Status)

	// A campaign for a brand that does not exist is rejected.
	resp = postJSON(t, server.URL+"/api/v1/campaigns", dto.CampaignCreateRequest{
		BrandID:      999,
		Name:         "Orphan",
		TargetRegion: "US",
		Message:      "nope",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Downloading before any assets exist is a 404.
	dlResp, err := http.Get(server.URL + "/api/v1/campaigns/" + itoa(campaignID) + "/download")
	require.NoError(t, err)
	defer dlResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, dlResp.StatusCode)

	// Trigger generation: accepted immediately, processed in background.
	genResp, err := http.Post(server.URL+"/api/v1/campaigns/"+itoa(campaignID)+"/generate", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, genResp.StatusCode)

	var gen dto.GenerateResponse
	decodeBody(t, genResp, &gen)
	assert.NotZero(t, gen.WorkflowID)

	require.NoError(t, client.ProcessPending(t.Context()))

	wfResp, err := http.Get(server.URL + "/api/v1/workflows/" + itoa(gen.WorkflowID))
	require.NoError(t, err)
	var wf dto.WorkflowResponse
	decodeBody(t, wfResp, &wf)
	assert.Equal(t, "complete", wf.Data.Status)

	detailResp, err := http.Get(server.URL + "/api/v1/campaigns/" + itoa(campaignID))
	require.NoError(t, err)
	var detail dto.CampaignDetailResponse
	decodeBody(t, detailResp, &detail)
	assert.Equal(t, "generated", detail.Data.Status)
	require.Len(t, detail.Products, 1)
	assert.Len(t, detail.Assets, 3)

	// Now the bundle download succeeds as a zip attachment.
	dlResp, err = http.Get(server.URL + "/api/v1/campaigns/" + itoa(campaignID) + "/download")
	require.NoError(t, err)
	defer dlResp.Body.Close()
	require.Equal(t, http.StatusOK, dlResp.StatusCode)
	assert.Equal(t, "application/zip", dlResp.Header.Get("Content-Type"))
	assert.Contains(t, dlResp.Header.Get("Content-Disposition"), "attachment")

	data, err := io.ReadAll(dlResp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestAssetUploadOverHTTP(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/assets", dto.AssetUploadRequest{
		CampaignID:  1,
		ProductID:   2,
		AspectRatio: "1:1",
		ImageBase64: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes")),
		ContentType: "image/png",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploaded dto.AssetResponse
	decodeBody(t, resp, &uploaded)
	assert.Equal(t, "creative", uploaded.Data.Type)
	assert.Equal(t, "uploaded", uploaded.Data.Source)
	assert.Equal(t, "1:1", uploaded.Data.AspectRatio)
	assert.NotEmpty(t, uploaded.Data.URL)

	// Malformed base64 is rejected before anything is stored.
	resp = postJSON(t, server.URL+"/api/v1/assets", dto.AssetUploadRequest{
		CampaignID:  1,
		ProductID:   2,
		AspectRatio: "1:1",
		ImageBase64: "!!!",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

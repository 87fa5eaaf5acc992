package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

const (
	usernameHeader  = "X-Username"
	timestampHeader = "X-Timestamp"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient

	// uploadClient has no overall timeout: blobs may take longer than any
	// sensible API call.
	uploadClient *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP/REST implementation of
// [VaultAdapter]. It normalises and validates the base URL from cfg.Address
// and applies cfg.RequestTimeout to every call except uploads.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid URL.
func NewHTTPVaultAdapter(cfg config.ClientConfig, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid vault address: %w", err)
	}

	return &httpVaultAdapter{
		client:       utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		uploadClient: utils.NewHTTPClient(baseURL, 0),
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	r := h.uploadClient.R().
		SetContext(ctx).
		SetQueryParam("uid", req.UID).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(req.Body)
	if req.Username != "" {
		r.SetHeader(usernameHeader, req.Username)
	}
	if req.Timestamp != "" {
		r.SetHeader(timestampHeader, req.Timestamp)
	}

	resp, err := r.Post("/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var out models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) Download(ctx context.Context, uid, name string, w io.Writer) (int64, error) {
	resp, err := h.uploadClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetPathParams(map[string]string{"uid": uid, "name": name}).
		Get("/uploads/{uid}/{name}")
	if err != nil {
		return 0, fmt.Errorf("download request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		raw, _ := io.ReadAll(io.LimitReader(body, 4<<10))
		return 0, mapStatus(resp.StatusCode(), raw)
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("download body: %w", err)
	}

	return n, nil
}

func (h *httpVaultAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) GetManifest(ctx context.Context, uid string) (models.Manifest, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("uid", uid).
		Get("/api/manifest")
	if err != nil {
		return models.Manifest{}, fmt.Errorf("manifest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Manifest{}, err
	}

	var out models.ManifestResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Manifest{}, fmt.Errorf("decode manifest response: %w", err)
	}

	return out.Manifest, nil
}

func (h *httpVaultAdapter) SetWipe(ctx context.Context, uid string, status bool) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.WipeRequest{UID: uid, Status: models.Truthy(status)}).
		Post("/api/wipe")
	if err != nil {
		return false, fmt.Errorf("wipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var out models.WipeResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return false, fmt.Errorf("decode wipe response: %w", err)
	}

	return out.RemoteWipeStatus, nil
}

func (h *httpVaultAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse
	if err := h.getJSON(ctx, "/api/health", &out); err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse
	if err := h.getJSON(ctx, "/api/version", &out); err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return json.Unmarshal(resp.Body(), out)
}

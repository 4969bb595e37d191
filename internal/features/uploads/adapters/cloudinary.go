package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"storefront-client/internal/core/config"
	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/uploads/ports"
)

// uploadEndpoint is the Cloudinary unsigned-upload URL template, keyed by
// cloud name.
const uploadEndpoint = "https://api.cloudinary.com/v1_1/%s/image/upload"

// CloudinaryUploader implements ports.Uploader against the Cloudinary
// unsigned upload API. Unsigned uploads carry no API secret: the preset,
// configured server-side at Cloudinary, constrains what may be uploaded.
type CloudinaryUploader struct {
	endpoint string
	preset   string
	http     *http.Client
}

// NewCloudinaryUploader creates a CloudinaryUploader. It fails when the
// cloud name or preset is missing so that a misconfigured admin surface is
// caught at startup rather than mid-form.
func NewCloudinaryUploader(cfg config.CloudinaryConfig, client *http.Client) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.UploadPreset == "" {
		return nil, httpclient.ConfigError("cloudinary cloud name and upload preset must be configured")
	}

	return &CloudinaryUploader{
		endpoint: fmt.Sprintf(uploadEndpoint, cfg.CloudName),
		preset:   cfg.UploadPreset,
		http:     client,
	}, nil
}

// uploadResponse is the subset of Cloudinary's response the pipeline needs.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// cloudinaryError is Cloudinary's error envelope.
type cloudinaryError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload pushes one asset and returns its HTTPS delivery URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, asset ports.Asset) (string, error) {
	op := "POST " + u.endpoint

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", asset.Filename)
	if err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, Message: "failed to build upload form", Err: err}
	}
	if _, err := part.Write(asset.Content); err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, Message: "failed to build upload form", Err: err}
	}
	if err := form.WriteField("upload_preset", u.preset); err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, Message: "failed to build upload form", Err: err}
	}
	if err := form.Close(); err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, Message: "failed to build upload form", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &buf)
	if err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, Message: "upload could not complete", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, StatusCode: resp.StatusCode, Message: "failed to read upload response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("media host returned status: %d", resp.StatusCode)
		var envelope cloudinaryError
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
			message = envelope.Error.Message
		}
		return "", &httpclient.Error{Kind: httpclient.KindApplication, Op: op, StatusCode: resp.StatusCode, Message: message}
	}

	var result uploadResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &httpclient.Error{Kind: httpclient.KindTransport, Op: op, StatusCode: resp.StatusCode, Message: "failed to decode upload response", Err: err}
	}
	if result.SecureURL == "" {
		return "", &httpclient.Error{Kind: httpclient.KindApplication, Op: op, StatusCode: resp.StatusCode, Message: "upload response carried no delivery URL"}
	}

	return result.SecureURL, nil
}

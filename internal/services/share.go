package services

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	defaultShareBaseURL   = "https://aimodelgenerator.app"
	defaultQRCodeEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	defaultQRCodeSize     = 200
)

// ShareConfig controls how share links are built.
type ShareConfig struct {
	BaseURL        string
	QRCodeEndpoint string
	QRCodeSize     int
}

// ShareLink is a public model URL and a QR image request encoding it.
// Nothing is sent anywhere when a link is built.
type ShareLink struct {
	ModelID   string `json:"model_id"`
	URL       string `json:"url"`
	QRCodeURL string `json:"qr_code_url"`
}

// Link builds the share link for a model id.
func (c ShareConfig) Link(modelID string) ShareLink {
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = defaultShareBaseURL
	}
	endpoint := c.QRCodeEndpoint
	if endpoint == "" {
		endpoint = defaultQRCodeEndpoint
	}
	size := c.QRCodeSize
	if size <= 0 {
		size = defaultQRCodeSize
	}

	shareURL := base + "/model/" + url.PathEscape(modelID)

	query := url.Values{}
	query.Set("size", fmt.Sprintf("%dx%d", size, size))
	query.Set("data", shareURL)

	return ShareLink{
		ModelID:   modelID,
		URL:       shareURL,
		QRCodeURL: endpoint + "?" + query.Encode(),
	}
}

// Package images looks up stock photos for menu sections. Enrichment is
// best-effort: a failed lookup leaves the section without an image and is
// never surfaced to the user.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/foodhubapp/foodhub-client/internal/logging"
	"github.com/foodhubapp/foodhub-client/internal/models"
)

const defaultBaseURL = "https://api.pexels.com"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPexels(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// WithBaseURL points the client at a different host, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// SectionImage returns one photo URL for the section name, or "" when the
// search has no match.
func (c *Client) SectionImage(ctx context.Context, section string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/search?query=%s&per_page=1", c.baseURL, url.QueryEscape(section))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search failed with status: %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Photos) == 0 {
		return "", nil
	}
	return result.Photos[0].Src.Medium, nil
}

// CatalogWriter saves a discovered section image back to the catalog.
type CatalogWriter interface {
	SetSectionImage(ctx context.Context, section, imageURL string) error
}

// EnrichSections collects the section images the catalog already carries
// and fills the gaps from the photo search. Discovered images are written
// back through w when it is non-nil. Lookup and write-back failures are
// logged and skipped.
func (c *Client) EnrichSections(ctx context.Context, restaurants []models.Restaurant, w CatalogWriter) map[string]string {
	images := make(map[string]string)
	var missing []string

	for _, r := range restaurants {
		for _, sec := range r.Menu {
			if sec.Section == "" {
				continue
			}
			if sec.SectionImg != "" {
				images[sec.Section] = sec.SectionImg
			} else if _, seen := images[sec.Section]; !seen {
				missing = append(missing, sec.Section)
			}
		}
	}

	l := logging.FromContext(ctx)
	for _, section := range missing {
		if _, ok := images[section]; ok {
			continue
		}
		imgURL, err := c.SectionImage(ctx, section)
		if err != nil {
			l.Debug("section_image_lookup_failed", "section", section, "error", err)
			continue
		}
		if imgURL == "" {
			continue
		}
		images[section] = imgURL
		if w != nil {
			if err := w.SetSectionImage(ctx, section, imgURL); err != nil {
				l.Debug("section_image_writeback_failed", "section", section, "error", err)
			}
		}
	}
	return images
}

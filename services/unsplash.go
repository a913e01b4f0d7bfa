package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/goccy/go-json"
)

type UnsplashPhoto struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

type UnsplashSearchResponse struct {
	Results []UnsplashPhoto `json:"results"`
}

func GetCoverURLFromResponse(body io.Reader) (string, error) {
	var response UnsplashSearchResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Results) == 0 || response.Results[0].URLs.Regular == "" {
		return "", errors.New("no results found")
	}

	return response.Results[0].URLs.Regular, nil
}

// FetchCoverImage queries Unsplash for a landscape cover photo of the place.
// Best-effort enrichment only; callers log and ignore failures.
func FetchCoverImage(placeName string) (string, error) {
	accessKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		return "", errors.New("UNSPLASH_ACCESS_KEY is not set")
	}

	query := url.QueryEscape(placeName + " India landmark")
	apiURL := fmt.Sprintf(
		"https://api.unsplash.com/search/photos?query=%s&per_page=1&orientation=landscape&content_filter=high",
		query,
	)

	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+accessKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return GetCoverURLFromResponse(resp.Body)
}

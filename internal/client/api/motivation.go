package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DailyMotivation fetches the daily motivational message.
//
// This call intentionally does not go through the gateway and sends no
// credential: the endpoint's auth contract is undocumented and the existing
// behavior is preserved rather than silently changed.
func DailyMotivation(ctx context.Context, baseURL string) (string, error) {
	u := strings.TrimRight(baseURL, "/") + apiPrefix + "/motivation/daily"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.Message, nil
}

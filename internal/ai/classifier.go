package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api-inference.huggingface.co"

// Classifier tags an item report by sending its name and description to a
// hosted zero-shot classification model with a fixed candidate label set.
type Classifier struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClassifier(apiKey, model string, httpClient *http.Client) *Classifier {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 20 * time.Second,
		}
	}
	if model == "" {
		model = "facebook/bart-large-mnli"
	}
	return &Classifier{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
	}
}

type classifyRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

// Classify returns the highest-scoring candidate label for the report text,
// lowercased. Callers treat any error as "use the fallback label".
func (c *Classifier) Classify(ctx context.Context, name, description string) (string, error) {
	if c == nil {
		return "", errors.New("classifier is nil")
	}
	if c.apiKey == "" {
		return "", errors.New("HF_API_KEY is not set")
	}

	text := strings.TrimSpace(name + " " + description)
	if text == "" {
		return "", errors.New("nothing to classify")
	}

	payload, _ := json.Marshal(classifyRequest{
		Inputs: text,
		Parameters: classifyParameters{
			CandidateLabels: Labels(),
			MultiLabel:      false,
		},
	})
	endpoint := fmt.Sprintf("%s/models/%s", c.baseURL, url.PathEscape(c.model))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	resBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("classifier status %d: %s", resp.StatusCode, truncate(string(resBody), 500))
	}

	label, err := topLabel(resBody)
	if err != nil {
		return "", err
	}
	return strings.ToLower(label), nil
}

// topLabel picks the label with the highest score from either response
// shape the inference API emits: an object with parallel labels/scores
// arrays, or a flat list of {label, score} pairs.
func topLabel(body []byte) (string, error) {
	var obj struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}
	if err := json.Unmarshal(body, &obj); err == nil && len(obj.Labels) > 0 {
		best := 0
		for i := range obj.Scores {
			if i < len(obj.Labels) && obj.Scores[i] > obj.Scores[best] {
				best = i
			}
		}
		return obj.Labels[best], nil
	}

	var list []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		best := 0
		for i := range list {
			if list[i].Score > list[best].Score {
				best = i
			}
		}
		return list[best].Label, nil
	}

	return "", fmt.Errorf("unexpected classifier response: %s", truncate(string(body), 200))
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

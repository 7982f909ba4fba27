package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClassifier(url string) *Classifier {
	c := NewClassifier("test-key", "facebook/bart-large-mnli", nil)
	c.baseURL = url
	return c
}

func TestClassifyObjectShape(t *testing.T) {
	var gotAuth string
	var gotReq classifyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"labels": []string{"personal items", "Electronics", "miscellaneous"},
			"scores": []float64{0.2, 0.7, 0.1},
		})
	}))
	defer srv.Close()

	c := newTestClassifier(srv.URL)
	label, err := c.Classify(context.Background(), "Blue Backpack", "navy backpack with laptop sleeve")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "electronics" {
		t.Fatalf("label=%q, want highest-scoring label lowercased", label)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header=%q", gotAuth)
	}
	if len(gotReq.Parameters.CandidateLabels) != len(candidateLabels) {
		t.Fatalf("sent %d candidate labels, want %d", len(gotReq.Parameters.CandidateLabels), len(candidateLabels))
	}
	if gotReq.Parameters.MultiLabel {
		t.Fatal("multi_label should be false")
	}
	if !strings.Contains(gotReq.Inputs, "Blue Backpack") {
		t.Fatalf("inputs=%q", gotReq.Inputs)
	}
}

func TestClassifyListShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"documents & books","score":0.4},{"label":"Identification","score":0.55}]`))
	}))
	defer srv.Close()

	c := newTestClassifier(srv.URL)
	label, err := c.Classify(context.Background(), "Student ID", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "identification" {
		t.Fatalf("label=%q", label)
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		reqName string
	}{
		{"server error", http.StatusServiceUnavailable, `{"error":"model loading"}`, "Backpack"},
		{"unexpected shape", http.StatusOK, `{"estimated_time":20}`, "Backpack"},
		{"garbage body", http.StatusOK, `not json`, "Backpack"},
		{"empty input", http.StatusOK, `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestClassifier(srv.URL)
			if _, err := c.Classify(context.Background(), tt.reqName, ""); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClassifyRequiresAPIKey(t *testing.T) {
	c := NewClassifier("", "", nil)
	if _, err := c.Classify(context.Background(), "Backpack", ""); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestTopLabel(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"object first wins", `{"labels":["a","b"],"scores":[0.9,0.1]}`, "a", false},
		{"object later wins", `{"labels":["a","b","c"],"scores":[0.1,0.2,0.7]}`, "c", false},
		{"list", `[{"label":"x","score":0.3},{"label":"y","score":0.6}]`, "y", false},
		{"empty object", `{}`, "", true},
		{"empty list", `[]`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := topLabel([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestLabelsContainsFallback(t *testing.T) {
	found := false
	for _, l := range Labels() {
		if l == FallbackLabel {
			found = true
		}
	}
	if !found {
		t.Fatalf("fallback %q missing from candidate labels", FallbackLabel)
	}
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/estateops/triage/internal/core/domain"
)

func scrape(t *testing.T, m *HTTPServerMetrics) string {
	t.Helper()
	res := httptest.NewRecorder()
	m.Handler().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("metrics endpoint status = %d", res.Code)
	}
	return res.Body.String()
}

func TestRecordTriageExportsCounters(t *testing.T) {
	m := NewHTTPServerMetrics("api")

	m.RecordTriage("api", domain.ProcessingResult{
		Status: domain.StatusSuccess,
		Classification: &domain.Classification{
			Category:        domain.CategoryDeathCertificate,
			MatchedKeywords: []string{"certificate of death", "date of death"},
		},
		Compliance:       &domain.Compliance{Compliant: true},
		ProcessingTimeMS: 1.5,
	})

	body := scrape(t, m)
	if !strings.Contains(body, `edt_triage_documents_total{category="death_certificate",service="api",status="success"} 1`) {
		t.Fatalf("triage counter missing:\n%s", body)
	}
	if !strings.Contains(body, `edt_triage_compliance_verdicts_total{category="death_certificate",service="api",verdict="compliant"} 1`) {
		t.Fatalf("compliance counter missing:\n%s", body)
	}
}

func TestRecordTriageFailureHasNoCategory(t *testing.T) {
	m := NewHTTPServerMetrics("api")

	m.RecordTriage("api", domain.ProcessingResult{Status: domain.StatusFailure})

	body := scrape(t, m)
	if !strings.Contains(body, `edt_triage_documents_total{category="none",service="api",status="failure"} 1`) {
		t.Fatalf("failure counter missing:\n%s", body)
	}
}

func TestMiddlewareCountsRequests(t *testing.T) {
	m := NewHTTPServerMetrics("api")
	handler := m.Middleware("api", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/documents/abc-123", nil))
	if res.Code != http.StatusNoContent {
		t.Fatalf("status = %d", res.Code)
	}

	body := scrape(t, m)
	if !strings.Contains(body, `path="/v1/documents/{document_id}"`) {
		t.Fatalf("path not normalized:\n%s", body)
	}
	if !strings.Contains(body, `status="204"`) {
		t.Fatalf("status label missing:\n%s", body)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("/v1/documents/1b2c"); got != "/v1/documents/{document_id}" {
		t.Fatalf("normalizePath = %q", got)
	}
	if got := normalizePath("/v1/triage"); got != "/v1/triage" {
		t.Fatalf("normalizePath = %q", got)
	}
}

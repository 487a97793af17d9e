package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

const scoreText = "Name   Score\nAlice   90\nBob     85\n"

// cannedAssistant returns fixed answers so handler wiring is observable.
type cannedAssistant struct{}

func (cannedAssistant) Summarize(ctx context.Context, text string) (string, error) {
	return "a summary", nil
}

func (cannedAssistant) Ask(ctx context.Context, question, document string) (string, error) {
	return "answer to " + question, nil
}

func (cannedAssistant) Compare(ctx context.Context, a, at, b, bt string) (string, error) {
	return a + " vs " + b, nil
}

func testServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.UploadDir = filepath.Join(dir, "uploads")
	cfg.ReportDir = filepath.Join(dir, "dashboards")
	return New(cfg, cannedAssistant{}, nil)
}

// upload posts content as a multipart file and returns the decoded document.
func upload(t *testing.T, ts *httptest.Server, filename, content string) Document {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	io.WriteString(fw, content)
	mw.Close()

	resp, err := http.Post(ts.URL+"/documents", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("Upload request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected 201, got %d: %s", resp.StatusCode, raw)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("Decoding upload response failed: %v", err)
	}
	return doc
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	resp, err := http.Post(url, "application/json", &body)
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func TestUploadAndList(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	doc := upload(t, ts, "scores.txt", scoreText)
	if doc.ID == "" {
		t.Error("Expected a document id")
	}
	if doc.Name != "scores.txt" {
		t.Errorf("Expected name scores.txt, got %q", doc.Name)
	}
	if doc.Chars != len(scoreText) {
		t.Errorf("Expected %d chars, got %d", len(scoreText), doc.Chars)
	}

	resp, err := http.Get(ts.URL + "/documents")
	if err != nil {
		t.Fatalf("List request failed: %v", err)
	}
	defer resp.Body.Close()
	var docs []Document
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		t.Fatalf("Decoding list failed: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != doc.ID {
		t.Errorf("Expected the uploaded document listed, got %+v", docs)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("file", "macro.xlsm")
	io.WriteString(fw, "data")
	mw.Close()

	resp, err := http.Post(ts.URL+"/documents", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("Upload request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Errorf("Expected 415, got %d", resp.StatusCode)
	}
}

func TestGenerateAndServeDashboard(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	doc := upload(t, ts, "scores.txt", scoreText)

	resp := postJSON(t, ts.URL+"/documents/"+doc.ID+"/dashboard", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var dash dashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&dash); err != nil {
		t.Fatalf("Decoding dashboard response failed: %v", err)
	}
	if !strings.HasSuffix(dash.URL, "/scores.html") {
		t.Errorf("Unexpected dashboard URL: %q", dash.URL)
	}

	served, err := http.Get(ts.URL + dash.URL)
	if err != nil {
		t.Fatalf("Fetching dashboard failed: %v", err)
	}
	defer served.Body.Close()
	if served.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 serving dashboard, got %d", served.StatusCode)
	}
	page, _ := io.ReadAll(served.Body)
	if !strings.Contains(string(page), "<table>") {
		t.Error("Served dashboard is missing its table")
	}
}

func TestGenerateDashboard_NoTabularData(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	doc := upload(t, ts, "prose.txt", "nothing tabular in here\njust words\n")

	resp := postJSON(t, ts.URL+"/documents/"+doc.ID+"/dashboard", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", resp.StatusCode)
	}
}

func TestGenerateDashboard_UnknownID(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/documents/nope/dashboard", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestServeDashboard_PathTraversalBlocked(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/dashboards/..%2f..%2fetc%2fpasswd")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Error("Expected traversal attempt to be rejected")
	}
}

func TestSummaryAndAsk(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	doc := upload(t, ts, "scores.txt", scoreText)

	resp := postJSON(t, ts.URL+"/documents/"+doc.ID+"/summary", nil)
	defer resp.Body.Close()
	var ans answerResponse
	json.NewDecoder(resp.Body).Decode(&ans)
	if ans.Answer != "a summary" {
		t.Errorf("Expected canned summary, got %q", ans.Answer)
	}

	resp2 := postJSON(t, ts.URL+"/documents/"+doc.ID+"/ask", questionRequest{Question: "who won?"})
	defer resp2.Body.Close()
	var ans2 answerResponse
	json.NewDecoder(resp2.Body).Decode(&ans2)
	if ans2.Answer != "answer to who won?" {
		t.Errorf("Expected canned answer, got %q", ans2.Answer)
	}
}

func TestAsk_RequiresQuestion(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	doc := upload(t, ts, "scores.txt", scoreText)

	resp := postJSON(t, ts.URL+"/documents/"+doc.ID+"/ask", questionRequest{Question: "  "})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestCompare(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	first := upload(t, ts, "a.txt", scoreText)
	second := upload(t, ts, "b.txt", "Name   Score\nAlice   91\nBob     84\n")

	resp := postJSON(t, ts.URL+"/compare", compareRequest{FirstID: first.ID, SecondID: second.ID})
	defer resp.Body.Close()
	var ans answerResponse
	json.NewDecoder(resp.Body).Decode(&ans)
	if ans.Answer != "a.txt vs b.txt" {
		t.Errorf("Expected canned comparison, got %q", ans.Answer)
	}

	missing := postJSON(t, ts.URL+"/compare", compareRequest{FirstID: first.ID, SecondID: "nope"})
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", missing.StatusCode)
	}
}

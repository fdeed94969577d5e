package resumes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/bootstrap"
	"resumeiq-backend/internal/parse"
	"resumeiq-backend/internal/shared/config"
)

type stubExtractor struct {
	outcome parse.Outcome
}

func (s stubExtractor) ExtractResume(ctx context.Context, fileName string, data []byte) (parse.Outcome, error) {
	return s.outcome, nil
}

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	record := parse.ResumeRecord{Summary: "Backend engineer with Go experience"}
	record.Contact.Name = "Jane Doe"
	app.ResumesService.Extractor = stubExtractor{outcome: parse.Outcome{
		Text:   "Jane Doe resume text",
		Record: &record,
	}}

	return app
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    "jane@example.com",
		"name":     "Jane Doe",
		"password": "supersecret",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	body, _ = json.Marshal(map[string]string{
		"email":    "jane@example.com",
		"password": "supersecret",
	})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var tokens struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if tokens.Access == "" {
		t.Fatalf("expected access token, got empty")
	}
	return tokens.Access
}

func uploadResumeForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="resume"; filename="resume.pdf"`)
	header.Set("Content-Type", "application/pdf")
	fileWriter, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create form part: %v", err)
	}
	if _, err := fileWriter.Write([]byte("%PDF-1.4 minimal")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestResumeUploadAndCurrent(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router
	token := registerAndLogin(t, router)

	body, contentType := uploadResumeForm(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("upload: expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var uploaded struct {
		Message  string          `json:"message"`
		ResumeID string          `json:"resumeId"`
		Data     json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if uploaded.Message != "Resume uploaded and parsed successfully" {
		t.Fatalf("unexpected message %q", uploaded.Message)
	}
	if uploaded.ResumeID == "" {
		t.Fatalf("expected resumeId, got empty")
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	reqGet.Header.Set("Authorization", "Bearer "+token)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("current: expected status 200, got %d: %s", respGet.Code, respGet.Body.String())
	}

	var current struct {
		ResumeID         string `json:"resumeId"`
		FileName         string `json:"fileName"`
		ExtractionFailed bool   `json:"extractionFailed"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&current); err != nil {
		t.Fatalf("decode current response: %v", err)
	}
	if current.ResumeID != uploaded.ResumeID {
		t.Fatalf("expected resumeId %s, got %s", uploaded.ResumeID, current.ResumeID)
	}
	if current.FileName != "resume.pdf" {
		t.Fatalf("expected fileName resume.pdf, got %s", current.FileName)
	}
	if current.ExtractionFailed {
		t.Fatalf("expected successful extraction")
	}
}

func TestResumeUploadRejectsNonPDF(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router
	token := registerAndLogin(t, router)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("resume", "resume.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte("not a pdf")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestHealthIsPublic(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

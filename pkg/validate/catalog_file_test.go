package validate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/storefront/pkg/validate"
)

const validProductJSON = `{"id":"prod1","name":"Banana","price":3.5,"description":"fresh","image_url":"https://img.example/banana.png"}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestValidateCatalogFile_JSON_Valid(t *testing.T) {
	path := writeTempFile(t, "product.json", validProductJSON)

	var out bytes.Buffer
	summary, err := validate.ValidateCatalogFile(context.Background(), validate.NewProductValidator(), path, validate.FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("wrong summary: %q", summary)
	}
	if !strings.Contains(out.String(), `"id":"prod1"`) {
		t.Fatalf("canonical output missing product: %q", out.String())
	}
}

func TestValidateCatalogFile_JSON_UnknownField(t *testing.T) {
	path := writeTempFile(t, "product.json", `{"id":"prod1","name":"Banana","price":1,"description":"d","image_url":"u","extra":true}`)

	var out bytes.Buffer
	if _, err := validate.ValidateCatalogFile(context.Background(), validate.NewProductValidator(), path, validate.FormatJSON, &out); err == nil {
		t.Fatalf("unknown field must fail validation")
	}
}

func TestValidateCatalogFile_JSONL_Mixed(t *testing.T) {
	content := validProductJSON + "\n" +
		"\n" + // пустая строка пропускается
		`{"id":"","name":"NoID","price":1,"description":"d","image_url":"u"}` + "\n" +
		`{"id":"prod2","name":"Apple","price":0,"description":"green","image_url":"u2"}` + "\n"
	path := writeTempFile(t, "catalog.jsonl", content)

	var out bytes.Buffer
	summary, err := validate.ValidateCatalogFile(context.Background(), validate.NewProductValidator(), path, validate.FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("wrong summary: %q", summary)
	}
	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Fatalf("want 2 output lines, got %d: %q", got, out.String())
	}
}

func TestValidateJSONLStream_TrailingDataLine(t *testing.T) {
	in := strings.NewReader(validProductJSON + " {}\n")
	var out bytes.Buffer

	res, err := validate.ValidateJSONLStream(context.Background(), validate.NewProductValidator(), in, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 0 || res.InvalidLinesCount != 1 {
		t.Fatalf("trailing data line must be invalid: %+v", res)
	}
}

func TestValidateCatalogFile_MissingFile(t *testing.T) {
	var out bytes.Buffer
	if _, err := validate.ValidateCatalogFile(context.Background(), validate.NewProductValidator(), "/no/such/file.json", validate.FormatAuto, &out); err == nil {
		t.Fatalf("missing file must return error")
	}
}

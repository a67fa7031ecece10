package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create docx entry: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + body + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write docx entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close docx: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytes_Docx(t *testing.T) {
	data := buildDocx(t, "Student: Maya Chen. Grade 6. Math: A.")

	got, err := TextFromBytes(context.Background(), data, mimeDOCX, "report-card.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(got, "Grade 6") {
		t.Fatalf("extracted text missing content: %q", got)
	}
}

func TestTextFromBytes_ZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t, "Reading level: above grade")

	if _, err := TextFromBytes(context.Background(), data, "application/zip", "report.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytes_PlainText(t *testing.T) {
	got, err := TextFromBytes(context.Background(), []byte("6th grade, loves science"), "text/plain; charset=utf-8", "notes.txt")
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	if got != "6th grade, loves science" {
		t.Fatalf("got %q", got)
	}
}

func TestTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

package checklist

import (
	"errors"
	"reflect"
	"testing"
)

func TestVerifyEmptyInput(t *testing.T) {
	v := &Verifier{}
	got := v.Verify(nil)
	want := Result{ProcessType: "Unknown", MissingDocuments: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Verify(nil) = %+v, want %+v", got, want)
	}
}

func TestVerifyCompleteIncorporation(t *testing.T) {
	uploaded := []UploadedDocument{
		{FileName: "Articles_of_Association.docx", DocumentType: "Articles of Association", TextContent: "the articles of association of the company"},
		{FileName: "Memorandum.docx", DocumentType: "Memorandum of Association", TextContent: "memorandum of association establishing the company"},
		{FileName: "Board Resolution.DOCX", DocumentType: "Board Resolution", TextContent: "board resolution authorizing incorporation"},
		{FileName: "shareholder-resolution.pdf", DocumentType: "Shareholder Resolution", TextContent: "shareholder resolution approving formation"},
		{FileName: "application.docx", DocumentType: "Incorporation Application", TextContent: "incorporation application for registration"},
		{FileName: "ubo.docx", DocumentType: "UBO Declaration", TextContent: "ubo declaration of the ultimate beneficial owner"},
		{FileName: "register.docx", DocumentType: "Register of Members and Directors", TextContent: "register of members and register of directors"},
	}

	v := &Verifier{}
	got := v.Verify(uploaded)

	if got.ProcessType != "Company Incorporation" {
		t.Fatalf("process = %q", got.ProcessType)
	}
	if got.DocumentsUploaded != 7 || got.RequiredDocuments != 7 {
		t.Errorf("uploaded/required = %d/%d, want 7/7", got.DocumentsUploaded, got.RequiredDocuments)
	}
	if len(got.MissingDocuments) != 0 {
		t.Errorf("missing = %v, want none", got.MissingDocuments)
	}
	if got.CompletenessPercentage != 100 {
		t.Errorf("completeness = %v, want 100", got.CompletenessPercentage)
	}
	if !got.IsComplete {
		t.Error("expected complete")
	}
}

func TestVerifyPartialIncorporation(t *testing.T) {
	uploaded := []UploadedDocument{
		{FileName: "Articles_of_Association.docx", DocumentType: "Articles of Association", TextContent: "the articles of association of the company"},
		{FileName: "Board Resolution.DOCX", DocumentType: "Board Resolution"},
	}

	v := &Verifier{}
	got := v.Verify(uploaded)

	if got.ProcessType != "Company Incorporation" {
		t.Fatalf("process = %q", got.ProcessType)
	}
	wantMissing := []string{
		"Memorandum of Association",
		"Shareholder Resolution",
		"Incorporation Application Form",
		"UBO Declaration Form",
		"Register of Members and Directors",
	}
	if !reflect.DeepEqual(got.MissingDocuments, wantMissing) {
		t.Errorf("missing = %v, want %v", got.MissingDocuments, wantMissing)
	}
	if got.CompletenessPercentage != 28.57 {
		t.Errorf("completeness = %v, want 28.57", got.CompletenessPercentage)
	}
	if got.IsComplete {
		t.Error("expected incomplete")
	}
}

func TestVerifyOneDocumentFillsOneSlot(t *testing.T) {
	// A document whose text matches several requirements marks only the first
	// slot in catalog order.
	uploaded := []UploadedDocument{
		{
			FileName:     "combined.docx",
			DocumentType: "Articles of Association",
			TextContent:  "articles of association and memorandum of association in one file",
		},
	}

	v := &Verifier{}
	got := v.Verify(uploaded)

	if got.ProcessType != "Company Incorporation" {
		t.Fatalf("process = %q", got.ProcessType)
	}
	for _, name := range got.MissingDocuments {
		if name == "Articles of Association" {
			t.Error("articles slot should be satisfied")
		}
	}
	found := false
	for _, name := range got.MissingDocuments {
		if name == "Memorandum of Association" {
			found = true
		}
	}
	if !found {
		t.Error("memorandum slot should remain missing; one upload marks one slot")
	}
}

func TestVerifyExtractFailureFallsBackToFilename(t *testing.T) {
	uploaded := []UploadedDocument{
		{FileName: "Articles_of_Association.docx", DocumentType: "Articles of Association"},
	}

	v := &Verifier{ExtractText: func(doc UploadedDocument) (string, error) {
		return "", errors.New("storage unavailable")
	}}
	got := v.Verify(uploaded)

	for _, name := range got.MissingDocuments {
		if name == "Articles of Association" {
			t.Error("filename fallback should satisfy the articles slot despite extraction failure")
		}
	}
}

func TestVerifySkipsUnnamedDocuments(t *testing.T) {
	uploaded := []UploadedDocument{
		{DocumentType: "Articles of Association", TextContent: "articles of association"},
	}

	v := &Verifier{}
	got := v.Verify(uploaded)

	if got.DocumentsUploaded != 1 {
		t.Errorf("uploaded = %d, want 1", got.DocumentsUploaded)
	}
	satisfied := true
	for _, name := range got.MissingDocuments {
		if name == "Articles of Association" {
			satisfied = false
		}
	}
	if satisfied {
		t.Error("a document without a file name must not mark any slot")
	}
}

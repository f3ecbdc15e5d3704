package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"airename/internal/naming"
	"airename/internal/renamer"
	"airename/internal/template"
)

func TestOllama_GenerateFileName(t *testing.T) {
	var gotReq ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q, want /api/chat", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaMessage{Role: "assistant", Content: `"Quarterly Report 2024"`},
		})
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "testmodel")
	got, err := o.GenerateFileName(context.Background(), renamer.GenerateRequest{
		Content:      "quarterly report content",
		OriginalName: "doc1.txt",
		Convention:   naming.KebabCase,
		Category:     template.General,
	})
	if err != nil {
		t.Fatalf("GenerateFileName() error = %v", err)
	}
	if got != "quarterly-report-2024" {
		t.Errorf("GenerateFileName() = %q, want quarterly-report-2024", got)
	}

	if gotReq.Model != "testmodel" {
		t.Errorf("request model = %q, want testmodel", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("request stream = true, want false")
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v, want system then user", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "quarterly report content") {
		t.Error("user message does not contain the document content")
	}
}

func TestOllama_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "missing")
	_, err := o.GenerateFileName(context.Background(), renamer.GenerateRequest{Content: "x", OriginalName: "x.txt"})
	if err == nil {
		t.Fatal("GenerateFileName() error = nil, want status error")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("error = %v, want status 404 mention", err)
	}
}

func TestOllama_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaChatResponse{})
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "m")
	_, err := o.GenerateFileName(context.Background(), renamer.GenerateRequest{Content: "x", OriginalName: "x.txt"})
	if err == nil {
		t.Fatal("GenerateFileName() error = nil, want empty response error")
	}
}

func TestOllama_ScannedContentFallsBack(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "m")
	got, err := o.GenerateFileName(context.Background(), renamer.GenerateRequest{
		Content:      renamer.EncodeScannedImage("image/png", "aGVsbG8="),
		OriginalName: "Vacation Photo.png",
	})
	if err != nil {
		t.Fatalf("GenerateFileName() error = %v", err)
	}
	if got != "vacation-photo" {
		t.Errorf("GenerateFileName() = %q, want vacation-photo", got)
	}
	if called {
		t.Error("server was called for scanned content")
	}
}

func TestOllama_ListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %q, want /api/tags", r.URL.Path)
		}
		w.Write([]byte(`{"models":[{"name":"llama3.1"},{"name":"mistral"}]}`))
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "")
	models, err := o.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if len(models) != 2 || models[0] != "llama3.1" || models[1] != "mistral" {
		t.Errorf("ListModels() = %v, want [llama3.1 mistral]", models)
	}
}

func TestNewOllama_Defaults(t *testing.T) {
	o := NewOllama("", "")
	if o.baseURL != ollamaDefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", o.baseURL, ollamaDefaultBaseURL)
	}
	if o.model != ollamaDefaultModel {
		t.Errorf("model = %q, want %q", o.model, ollamaDefaultModel)
	}
}

package generation

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestInvocationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantErr error
	}{
		{name: "empty", prompt: "", wantErr: ErrMissingPrompt},
		{name: "whitespace is kept", prompt: "  ", wantErr: nil},
		{name: "prompt", prompt: "Summarize: text", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InvocationRequest{Prompt: tt.prompt}.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultSampling(t *testing.T) {
	got := DefaultSampling()
	want := SamplingParameters{Temperature: 0.9, P: 0.75, K: 0, MaxTokens: 100}
	if got != want {
		t.Fatalf("DefaultSampling() = %#v, want %#v", got, want)
	}
}

func TestNewResponse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantBody string
	}{
		{name: "plain", text: "X", wantBody: `"X"`},
		{name: "empty", text: "", wantBody: `""`},
		{name: "quotes and newline", text: "a \"b\"\nc", wantBody: `"a \"b\"\nc"`},
		{name: "html kept", text: "<b>&</b>", wantBody: `"<b>&</b>"`},
		{name: "utf-8 kept", text: "é <b>", wantBody: `"é <b>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := NewResponse(tt.text)
			if err != nil {
				t.Fatalf("NewResponse() error = %v", err)
			}
			if resp.StatusCode != 200 {
				t.Fatalf("StatusCode = %d, want 200", resp.StatusCode)
			}
			if resp.Body != tt.wantBody {
				t.Fatalf("Body = %q, want %q", resp.Body, tt.wantBody)
			}

			var decoded string
			if err := json.Unmarshal([]byte(resp.Body), &decoded); err != nil {
				t.Fatalf("body is not a JSON string: %v", err)
			}
			if decoded != tt.text {
				t.Fatalf("decoded body = %q, want %q", decoded, tt.text)
			}
		})
	}
}

func TestResponse_JSONShape(t *testing.T) {
	resp, err := NewResponse("X")
	if err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"statusCode":200,"body":"\"X\""}` {
		t.Fatalf("envelope = %s", out)
	}
}

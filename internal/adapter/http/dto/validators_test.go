package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreatePaymentRequest{
		Amount:      "  25.50  ",
		Description: " Lunch ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "25.50", req.Amount)
	assert.Equal(t, "Lunch", req.Description)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := CreatePaymentRequest{
		Amount:      "25.50",
		Description: "lunch <script>alert('x')</script> special",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Description, "&lt;script&gt;")
	assert.NotContains(t, req.Description, "<script>")
}

func TestSanitizeStruct_ScanDataSurvivesEscaping(t *testing.T) {
	// Encoded envelopes use the URL-safe base64 alphabet, which escaping
	// must never alter.
	data := "QP1:eNqrVspLzE1VslIKcPRRqAUAJnoFLQ"
	req := ScanRequest{Data: data}
	SanitizeStruct(&req)

	assert.Equal(t, data, req.Data)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

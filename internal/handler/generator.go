package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/passmint/passmint-go/internal/generator"
	"github.com/passmint/passmint-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles GET and POST /api/v1/generate requests. Input
// arrives as query parameters, form fields or a JSON object of string
// values; all three flatten into the same string-to-string mapping
// before reaching the core. Validation failures are returned with
// status 200 and an error envelope — the result value carries the
// outcome, not the transport status.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(w, r)
	if err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Generate(opts)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusOK, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeOptions flattens the request parameters into RawOptions without
// interpreting them; absent keys stay absent so the core decides what
// is missing.
func decodeOptions(w http.ResponseWriter, r *http.Request) (generator.RawOptions, error) {
	if r.Method == http.MethodGet {
		return flattenValues(r.URL.Query()), nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var opts generator.RawOptions
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			return nil, err
		}
		return opts, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return flattenValues(r.Form), nil
}

func flattenValues(values url.Values) generator.RawOptions {
	opts := make(generator.RawOptions, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			opts[key] = vs[0]
		}
	}
	return opts
}

func isValidationError(err error) bool {
	return errors.Is(err, generator.ErrLengthMissing) ||
		errors.Is(err, generator.ErrLengthNotInteger) ||
		errors.Is(err, generator.ErrOptionNotBoolean) ||
		errors.Is(err, generator.ErrUnsupportedOption) ||
		errors.Is(err, generator.ErrLengthTooSmall)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

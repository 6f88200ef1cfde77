package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"scholarstream/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return common.NewError(common.CodeValidation, "request body is required", nil)
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return common.NewError(common.CodeValidation, "request body is required", err)
		}
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return common.NewError(common.CodeValidation, "request body too large", err)
		}
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// pathParam returns the single path segment following prefix, unescaped.
func pathParam(r *http.Request, prefix string) (string, error) {
	raw := strings.TrimPrefix(r.URL.EscapedPath(), prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return "", common.NewError(common.CodeNotFound, "not found", nil)
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", common.NewError(common.CodeValidation, "invalid path parameter", err)
	}
	return value, nil
}

func idFromPath(r *http.Request, prefix string) (common.ID, error) {
	value, err := pathParam(r, prefix)
	if err != nil {
		return common.ID{}, err
	}
	return common.ParseID(value)
}

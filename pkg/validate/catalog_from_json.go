package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ValidateProductFromJSON — строгий разбор и валидация товара из JSON.
func ValidateProductFromJSON(ctx context.Context, validator *ProductValidator, raw []byte) (*ProductDraft, error) {
	var draft ProductDraft
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.ValidateNew(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

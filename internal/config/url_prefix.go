package config

import (
	"fmt"
	"strings"
)

// URLPrefix - базовый адрес сервиса, из которого строятся короткие URL
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http") {
		return fmt.Errorf("invalid base URL format: %s", value)
	}

	// Хвостовой слэш убираем, чтобы код всегда приклеивался через "/"
	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

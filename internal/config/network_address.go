package config

import (
	"fmt"
	"strconv"
	"strings"
)

// NetworkAddress - адрес вида host:port, на котором слушает HTTP сервер
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetworkAddress) Set(value string) error {
	host, portStr, found := strings.Cut(value, ":")
	if !found {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

package domain

import "fmt"

type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

var SupportedPlatforms = []Platform{PlatformMeta, PlatformGoogle}

func (p Platform) IsValid() bool {
	return p == PlatformMeta || p == PlatformGoogle
}

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform converte o valor recebido na requisição para uma plataforma suportada
func ParsePlatform(value string) (Platform, error) {
	p := Platform(value)
	if !p.IsValid() {
		return "", fmt.Errorf("plataforma não suportada: %q", value)
	}

	return p, nil
}

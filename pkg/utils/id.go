package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSize     = 16
)

// GenerateID gera os identificadores das revisões e dos registros de lote
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idSize)
}

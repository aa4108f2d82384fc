package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateID gera o identificador curto de um relatório
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

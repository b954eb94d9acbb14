package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera os ids curtos das mensagens do chat
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	"strconv"
)

// GenerateID создает простой уникальный ID для сессий и подписчиков
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// StringToSeed превращает строку в сид.
// Числовые строки возвращаются как есть, чтобы "?seed=12345" давал тот же
// расклад, что и пресет с сидом 12345. Остальные строки хешируются (FNV-1a).
func StringToSeed(s string) int64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

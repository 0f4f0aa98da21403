package service

import (
	"math/rand"
	"sync"

	"github.com/Kranthi2741/tinylink/internal/model"
)

const (
	// CodeLength - длина генерируемого кода (в пределах допустимых 6-8)
	CodeLength = 6

	// AllowedChars - алфавит короткого кода
	AllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Generator определяет генератор случайных коротких кодов
type Generator interface {
	GenerateCode() model.Code
}

// CodeGenerator реализует генератор равномерно случайных кодов
type CodeGenerator struct {
	// rand.Rand не потокобезопасен, а генератор вызывается
	// из конкурентных запросов
	mutex  sync.Mutex
	random *rand.Rand
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		random: rand.New(rand.NewSource(rand.Int63())),
	}
}

// GenerateCode генерирует случайный код длиной CodeLength
func (g *CodeGenerator) GenerateCode() model.Code {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	result := make([]byte, CodeLength)
	for i := range result {
		result[i] = AllowedChars[g.random.Intn(len(AllowedChars))]
	}

	return model.Code(result)
}

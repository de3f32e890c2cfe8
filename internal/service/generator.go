package service

import (
	"github.com/passmint/passmint-go/internal/generator"
	"github.com/passmint/passmint-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate runs the raw options through the validation chain and wraps
// the generated password for the API boundary.
func (s *GeneratorService) Generate(opts generator.RawOptions) (model.GenerateResponse, error) {
	password, err := generator.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{Password: password}, nil
}

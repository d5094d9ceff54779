package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/binguliki/IntelliLearn/internal/model"
	pkgLog "github.com/binguliki/IntelliLearn/pkg/log"
)

// ErrEmptyDescription is returned when the model asked for an image without
// saying what to draw.
var ErrEmptyDescription = errors.New("description must not be empty")

// ImageSynthesizer generates an image from a text description.
type ImageSynthesizer interface {
	GenerateImage(ctx context.Context, description string) ([]byte, error)
}

// GenerateImageTool renders a described image via the image model.
type GenerateImageTool struct {
	l     pkgLog.Logger
	image ImageSynthesizer
}

// NewGenerateImageTool creates the image synthesis tool.
func NewGenerateImageTool(l pkgLog.Logger, image ImageSynthesizer) Tool {
	return &GenerateImageTool{l: l, image: image}
}

func (t *GenerateImageTool) Name() string {
	return "generate_image"
}

func (t *GenerateImageTool) Description() string {
	return "Generate an image based on a detailed text description. Use for diagrams, illustrations and visual aids."
}

func (t *GenerateImageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Description of the image to generate",
			},
		},
		"required": []string{"description"},
	}
}

func (t *GenerateImageTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
	description, _ := params["description"].(string)
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	t.l.Infof(ctx, "generate_image: user=%s description_length=%d", sc.UserID, len(description))

	img, err := t.image.GenerateImage(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	return img, nil
}
